package ddl

import (
	"strconv"
	"strings"
)

// BooleanField is a checkbox field. The wire encoding is "true"/"false";
// anything unparsable counts as no value.
type BooleanField struct {
	baseField
	current    *bool
	predefined *bool
}

func newBooleanField(base baseField, def Definition) *BooleanField {
	f := &BooleanField{baseField: base}
	f.predefined = f.ConvertFromWireString(def.PredefinedValue)
	if f.predefined != nil {
		v := *f.predefined
		f.current = &v
	}
	return f
}

func (f *BooleanField) CurrentValue() *bool    { return f.current }
func (f *BooleanField) PredefinedValue() *bool { return f.predefined }

func (f *BooleanField) SetCurrentValue(value bool) { f.current = &value }

func (f *BooleanField) ConvertFromWireString(raw string) *bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func (f *BooleanField) ConvertToWireString(value *bool) string {
	if value == nil {
		return ""
	}
	return strconv.FormatBool(*value)
}

func (f *BooleanField) SetWireValue(raw string) { f.current = f.ConvertFromWireString(raw) }
func (f *BooleanField) WireValue() string       { return f.ConvertToWireString(f.current) }

func (f *BooleanField) DisplayValue() string {
	switch {
	case f.current == nil:
		return ""
	case *f.current:
		return "Yes"
	default:
		return "No"
	}
}

func (f *BooleanField) Valid() bool {
	return f.validWhen(f.current == nil)
}
