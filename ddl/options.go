package ddl

import "strings"

// Option is one selectable choice of a select or radio field. Two
// options are the same choice when their Values are equal.
type Option struct {
	Label string
	Name  string
	Value string
}

// StringWithOptionsField is a selection field. The definition may
// declare multiple selection, but selection always behaves as
// single-select: at most one option is current at any time.
type StringWithOptionsField struct {
	baseField
	multiple   bool
	available  []Option
	current    []Option
	predefined []Option
}

func newStringWithOptionsField(base baseField, def Definition) *StringWithOptionsField {
	f := &StringWithOptionsField{
		baseField: base,
		multiple:  def.Multiple,
		available: make([]Option, len(def.Options)),
	}
	copy(f.available, def.Options)

	f.predefined = f.ConvertFromWireString(def.PredefinedValue)
	f.current = append([]Option(nil), f.predefined...)
	return f
}

// Multiple reports the declared multiplicity. Selection ignores it.
func (f *StringWithOptionsField) Multiple() bool { return f.multiple }

// AvailableOptions returns the options in definition order. Never nil.
func (f *StringWithOptionsField) AvailableOptions() []Option {
	return f.available
}

func (f *StringWithOptionsField) CurrentValue() []Option    { return f.current }
func (f *StringWithOptionsField) PredefinedValue() []Option { return f.predefined }

// SelectOption makes option the only selected one. Options not present
// in AvailableOptions are ignored.
func (f *StringWithOptionsField) SelectOption(option Option) {
	for _, o := range f.available {
		if o.Value == option.Value {
			f.current = []Option{o}
			return
		}
	}
}

// ClearOption removes option from the selection if it is selected.
func (f *StringWithOptionsField) ClearOption(option Option) {
	for i, o := range f.current {
		if o.Value == option.Value {
			f.current = append(f.current[:i], f.current[i+1:]...)
			return
		}
	}
}

// ConvertFromWireString parses the backend encoding of a selection: a
// bare token, a bracketed token, or a JSON-array-like list. All bracket
// and quote runes are stripped before matching, which keeps the parse
// permissive towards unbalanced input. Each token is matched against the
// available options by value first, then by label; unmatched tokens are
// dropped.
func (f *StringWithOptionsField) ConvertFromWireString(raw string) []Option {
	result := []Option{}
	if raw == "" {
		return result
	}

	stripped := strings.NewReplacer("[", "", "]", "", `"`, "").Replace(raw)
	for _, token := range strings.Split(stripped, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if o, ok := f.findOption(token); ok {
			result = append(result, o)
		}
	}
	return result
}

func (f *StringWithOptionsField) findOption(token string) (Option, bool) {
	for _, o := range f.available {
		if o.Value == token {
			return o, true
		}
	}
	for _, o := range f.available {
		if o.Label == token {
			return o, true
		}
	}
	return Option{}, false
}

// ConvertToWireString renders values as a JSON-array-like list of the
// option values, in input order. Empty input renders "[]".
func (f *StringWithOptionsField) ConvertToWireString(values []Option) string {
	if len(values) == 0 {
		return "[]"
	}
	quoted := make([]string, len(values))
	for i, o := range values {
		quoted[i] = `"` + o.Value + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// ConvertToDisplayString renders the labels of values, comma-joined.
func (f *StringWithOptionsField) ConvertToDisplayString(values []Option) string {
	labels := make([]string, len(values))
	for i, o := range values {
		labels[i] = o.Label
	}
	return strings.Join(labels, ", ")
}

func (f *StringWithOptionsField) SetWireValue(raw string) {
	f.current = f.ConvertFromWireString(raw)
}

func (f *StringWithOptionsField) WireValue() string {
	return f.ConvertToWireString(f.current)
}

func (f *StringWithOptionsField) DisplayValue() string {
	return f.ConvertToDisplayString(f.current)
}

func (f *StringWithOptionsField) Valid() bool {
	return f.validWhen(len(f.current) == 0)
}
