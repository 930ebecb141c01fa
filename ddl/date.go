package ddl

import (
	"strconv"
	"strings"
	"time"
)

const dateWireFormat = "2006-01-02"

// DateField holds a calendar date. The wire encoding is yyyy-mm-dd;
// epoch milliseconds are also accepted on parse, matching what the
// backend historically emitted for record data.
type DateField struct {
	baseField
	current    *time.Time
	predefined *time.Time
}

func newDateField(base baseField, def Definition) *DateField {
	f := &DateField{baseField: base}
	f.predefined = f.ConvertFromWireString(def.PredefinedValue)
	if f.predefined != nil {
		v := *f.predefined
		f.current = &v
	}
	return f
}

func (f *DateField) CurrentValue() *time.Time    { return f.current }
func (f *DateField) PredefinedValue() *time.Time { return f.predefined }

func (f *DateField) SetCurrentValue(value time.Time) { f.current = &value }

func (f *DateField) ConvertFromWireString(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(dateWireFormat, raw); err == nil {
		return &t
	}
	if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
		t := time.UnixMilli(millis).UTC()
		return &t
	}
	return nil
}

func (f *DateField) ConvertToWireString(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(dateWireFormat)
}

func (f *DateField) SetWireValue(raw string) { f.current = f.ConvertFromWireString(raw) }
func (f *DateField) WireValue() string       { return f.ConvertToWireString(f.current) }

func (f *DateField) DisplayValue() string {
	if f.current == nil {
		return ""
	}
	return f.current.Format("Jan 2, 2006")
}

func (f *DateField) Valid() bool {
	return f.validWhen(f.current == nil)
}
