package ddl

import (
	"strconv"
	"strings"
)

// NumberField holds an integer or decimal value. Integers are preferred
// on parse; a fractional wire value falls back to float64. The zero
// state is "no value", distinct from the number 0.
type NumberField struct {
	baseField
	current    *float64
	integer    bool
	predefined *float64
}

func newNumberField(base baseField, def Definition) *NumberField {
	f := &NumberField{baseField: base}
	f.predefined = f.ConvertFromWireString(def.PredefinedValue)
	if f.predefined != nil {
		v := *f.predefined
		f.current = &v
	}
	return f
}

func (f *NumberField) CurrentValue() *float64    { return f.current }
func (f *NumberField) PredefinedValue() *float64 { return f.predefined }

func (f *NumberField) SetCurrentValue(value float64) { f.current = &value }

// ConvertFromWireString parses raw as a number. Empty or unparsable
// input yields no value.
func (f *NumberField) ConvertFromWireString(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func (f *NumberField) ConvertToWireString(value *float64) string {
	if value == nil {
		return ""
	}
	if *value == float64(int64(*value)) && f.editorType != EditorDecimal {
		return strconv.FormatInt(int64(*value), 10)
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func (f *NumberField) SetWireValue(raw string) { f.current = f.ConvertFromWireString(raw) }
func (f *NumberField) WireValue() string       { return f.ConvertToWireString(f.current) }
func (f *NumberField) DisplayValue() string    { return f.ConvertToWireString(f.current) }

func (f *NumberField) Valid() bool {
	return f.validWhen(f.current == nil)
}
