package ddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectDefinition = `<root available-locales="en_US" default-locale="en_US">
	<dynamic-element dataType="string" multiple="true" name="A_Select" type="select">
		<dynamic-element name="option_1" type="option" value="value 1">
			<meta-data locale="en_US"><entry name="label"><![CDATA[Option 1]]></entry></meta-data>
		</dynamic-element>
		<dynamic-element name="option_2" type="option" value="value 2">
			<meta-data locale="en_US"><entry name="label"><![CDATA[Option 2]]></entry></meta-data>
		</dynamic-element>
		<dynamic-element name="option_3" type="option" value="value 3">
			<meta-data locale="en_US"><entry name="label"><![CDATA[Option 3]]></entry></meta-data>
		</dynamic-element>
		<meta-data locale="en_US">
			<entry name="label"><![CDATA[A Select]]></entry>
			<entry name="predefinedValue"><![CDATA[["value 2"]]]></entry>
		</meta-data>
	</dynamic-element>
</root>`

func TestParse_SelectField(t *testing.T) {
	fields, err := Parse(selectDefinition, NewLocale("en", "US"))
	require.NoError(t, err)
	require.Len(t, fields, 1)

	field, ok := fields[0].(*StringWithOptionsField)
	require.True(t, ok)

	assert.Equal(t, "A_Select", field.Name())
	assert.Equal(t, "A Select", field.Label())
	assert.Equal(t, DataTypeString, field.DataType())
	assert.Equal(t, EditorSelect, field.EditorType())

	available := field.AvailableOptions()
	require.Len(t, available, 3)
	assert.Equal(t, Option{Label: "Option 1", Name: "option_1", Value: "value 1"}, available[0])
	assert.Equal(t, Option{Label: "Option 2", Name: "option_2", Value: "value 2"}, available[1])
	assert.Equal(t, Option{Label: "Option 3", Name: "option_3", Value: "value 3"}, available[2])

	predefined := field.PredefinedValue()
	require.Len(t, predefined, 1)
	assert.Equal(t, "value 2", predefined[0].Value)

	current := field.CurrentValue()
	require.Len(t, current, 1)
	assert.Equal(t, predefined, current)

	// multiple is declared but selection stays single-valued
	assert.True(t, field.Multiple())
	field.SelectOption(available[0])
	field.SelectOption(available[2])
	require.Len(t, field.CurrentValue(), 1)
}

func TestParse_PreservesDocumentOrder(t *testing.T) {
	definition := `<root available-locales="en_US" default-locale="en_US">
		<dynamic-element dataType="string" name="second_field" type="text">
			<meta-data locale="en_US"><entry name="label"><![CDATA[Second]]></entry></meta-data>
		</dynamic-element>
		<dynamic-element dataType="boolean" name="first_field" type="checkbox">
			<meta-data locale="en_US"><entry name="label"><![CDATA[First]]></entry></meta-data>
		</dynamic-element>
	</root>`

	fields, err := Parse(definition, NewLocale("en", "US"))
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "second_field", fields[0].Name())
	assert.Equal(t, "first_field", fields[1].Name())
}

func TestParse_LocaleFallback(t *testing.T) {
	definition := `<root available-locales="en_US,es_ES" default-locale="en_US">
		<dynamic-element dataType="string" name="greeting" type="text">
			<meta-data locale="en_US"><entry name="label"><![CDATA[Greeting]]></entry></meta-data>
			<meta-data locale="es_ES"><entry name="label"><![CDATA[Saludo]]></entry></meta-data>
		</dynamic-element>
	</root>`

	for _, tc := range []struct {
		name   string
		locale Locale
		label  string
	}{
		{"exact match", NewLocale("es", "ES"), "Saludo"},
		{"same language", NewLocale("es", "MX"), "Saludo"},
		{"default locale", NewLocale("fr", "FR"), "Greeting"},
	} {
		fields, err := Parse(definition, tc.locale)
		require.NoError(t, err, tc.name)
		require.Len(t, fields, 1, tc.name)
		assert.Equal(t, tc.label, fields[0].Label(), tc.name)
	}
}

func TestParse_FirstLocaleWhenDefaultMissing(t *testing.T) {
	definition := `<root available-locales="es_ES" default-locale="en_US">
		<dynamic-element dataType="string" name="greeting" type="text">
			<meta-data locale="es_ES"><entry name="label"><![CDATA[Saludo]]></entry></meta-data>
		</dynamic-element>
	</root>`

	fields, err := Parse(definition, NewLocale("fr", "FR"))
	require.NoError(t, err)
	assert.Equal(t, "Saludo", fields[0].Label())
}

func TestParse_Failures(t *testing.T) {
	for name, definition := range map[string]string{
		"malformed xml": `<root><dynamic-element`,
		"unknown editor type": `<root default-locale="en_US">
			<dynamic-element dataType="string" name="x" type="teleport"/>
		</root>`,
		"unknown data type": `<root default-locale="en_US">
			<dynamic-element dataType="quaternion" name="x" type="text"/>
		</root>`,
		"missing name": `<root default-locale="en_US">
			<dynamic-element dataType="string" type="text"/>
		</root>`,
	} {
		fields, err := Parse(definition, NewLocale("en", "US"))
		require.Error(t, err, name)
		assert.Nil(t, fields, name)
	}
}

func TestParse_UnknownTypeIsSentinel(t *testing.T) {
	definition := `<root default-locale="en_US">
		<dynamic-element dataType="string" name="x" type="teleport"/>
	</root>`

	_, err := Parse(definition, NewLocale("en", "US"))
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, Locale{Language: "en", Country: "US"}, ParseLocale("en_US"))
	assert.Equal(t, Locale{Language: "en"}, ParseLocale("en"))
	assert.Equal(t, "en_US", NewLocale("en", "US").String())
	assert.Equal(t, "en", Locale{Language: "en"}.String())
}
