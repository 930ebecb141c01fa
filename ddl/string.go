package ddl

// StringField is a free-text field (text or textarea editors). Its wire
// and display encodings are the value itself.
type StringField struct {
	baseField
	current    string
	predefined string
}

func newStringField(base baseField, def Definition) *StringField {
	return &StringField{
		baseField:  base,
		current:    def.PredefinedValue,
		predefined: def.PredefinedValue,
	}
}

func (f *StringField) CurrentValue() string    { return f.current }
func (f *StringField) PredefinedValue() string { return f.predefined }

func (f *StringField) SetCurrentValue(value string) { f.current = value }

func (f *StringField) SetWireValue(raw string) { f.current = raw }
func (f *StringField) WireValue() string       { return f.current }
func (f *StringField) DisplayValue() string    { return f.current }

func (f *StringField) Valid() bool {
	return f.validWhen(f.current == "")
}
