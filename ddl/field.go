// Package ddl models server-defined dynamic forms: typed fields,
// selectable options and the definition parser that produces them.
package ddl

import "github.com/pkg/errors"

var ErrUnknownType = errors.New("unknown field type")

// DataType is the declared value type of a field.
type DataType string

const (
	DataTypeBoolean DataType = "boolean"
	DataTypeDate    DataType = "date"
	DataTypeNumber  DataType = "number"
	DataTypeString  DataType = "string"
)

// EditorType is the declared input widget of a field. It selects the
// concrete Field variant together with DataType.
type EditorType string

const (
	EditorCheckbox EditorType = "checkbox"
	EditorDate     EditorType = "ddm-date"
	EditorDecimal  EditorType = "ddm-decimal"
	EditorInteger  EditorType = "ddm-integer"
	EditorNumber   EditorType = "ddm-number"
	EditorRadio    EditorType = "radio"
	EditorSelect   EditorType = "select"
	EditorText     EditorType = "text"
	EditorTextArea EditorType = "textarea"
)

var dataTypes = map[string]DataType{
	"boolean": DataTypeBoolean,
	"date":    DataTypeDate,
	"double":  DataTypeNumber,
	"integer": DataTypeNumber,
	"number":  DataTypeNumber,
	"string":  DataTypeString,
}

var editorTypes = map[string]EditorType{
	"checkbox":    EditorCheckbox,
	"date":        EditorDate,
	"ddm-date":    EditorDate,
	"ddm-decimal": EditorDecimal,
	"ddm-integer": EditorInteger,
	"ddm-number":  EditorNumber,
	"decimal":     EditorDecimal,
	"integer":     EditorInteger,
	"number":      EditorNumber,
	"radio":       EditorRadio,
	"select":      EditorSelect,
	"text":        EditorText,
	"textarea":    EditorTextArea,
}

// Field is one typed, user-editable unit of a form. Implementations are
// the closed set of variants in this package; each owns its wire-string
// conversion and validation rules.
type Field interface {
	Name() string
	Label() string
	Tip() string
	DataType() DataType
	EditorType() EditorType
	Required() bool
	ReadOnly() bool
	Repeatable() bool

	// SetWireValue replaces the current value with the parse of raw.
	// Unparsable input degrades to the variant's empty value.
	SetWireValue(raw string)
	// WireValue renders the current value in the backend encoding.
	WireValue() string
	// DisplayValue renders the current value for humans.
	DisplayValue() string
	// Valid reports false only for a required field with an empty value.
	Valid() bool
}

// Definition carries the parsed attributes of one definition element.
// Required defaults to true when the definition omits the attribute.
type Definition struct {
	Name            string
	DataType        string
	EditorType      string
	Label           string
	Tip             string
	Required        *bool
	ReadOnly        bool
	Repeatable      bool
	Multiple        bool
	PredefinedValue string
	Options         []Option
}

// New builds the Field variant matching the definition's editor and data
// types. Unknown types are a construction error, not a silent skip.
func New(def Definition) (Field, error) {
	dataType, ok := dataTypes[def.DataType]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "dataType %q", def.DataType)
	}
	editorType, ok := editorTypes[def.EditorType]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "editorType %q", def.EditorType)
	}

	base := baseField{
		name:       def.Name,
		label:      def.Label,
		tip:        def.Tip,
		dataType:   dataType,
		editorType: editorType,
		required:   def.Required == nil || *def.Required,
		readOnly:   def.ReadOnly,
		repeatable: def.Repeatable,
	}

	switch editorType {
	case EditorSelect, EditorRadio:
		return newStringWithOptionsField(base, def), nil
	case EditorCheckbox:
		return newBooleanField(base, def), nil
	case EditorDate:
		return newDateField(base, def), nil
	case EditorNumber, EditorInteger, EditorDecimal:
		return newNumberField(base, def), nil
	default:
		return newStringField(base, def), nil
	}
}

type baseField struct {
	name       string
	label      string
	tip        string
	dataType   DataType
	editorType EditorType
	required   bool
	readOnly   bool
	repeatable bool
}

func (f *baseField) Name() string           { return f.name }
func (f *baseField) Label() string          { return f.label }
func (f *baseField) Tip() string            { return f.tip }
func (f *baseField) DataType() DataType     { return f.dataType }
func (f *baseField) EditorType() EditorType { return f.editorType }
func (f *baseField) Required() bool         { return f.required }
func (f *baseField) ReadOnly() bool         { return f.readOnly }
func (f *baseField) Repeatable() bool       { return f.repeatable }

func (f *baseField) validWhen(empty bool) bool {
	return !f.required || !empty
}
