package ddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOptionsField(t *testing.T, def Definition) *StringWithOptionsField {
	t.Helper()
	if def.DataType == "" {
		def.DataType = "string"
	}
	if def.EditorType == "" {
		def.EditorType = "select"
	}
	if def.Name == "" {
		def.Name = "A_Select"
	}
	f, err := New(def)
	require.NoError(t, err)
	field, ok := f.(*StringWithOptionsField)
	require.True(t, ok)
	return field
}

func twoOptions() []Option {
	return []Option{
		{Label: "Option 1", Name: "option987", Value: "option1"},
		{Label: "Option 2", Name: "option989", Value: "option2"},
	}
}

func TestOptionsField_EmptyDefinitionHasEmptyAvailableOptions(t *testing.T) {
	field := newOptionsField(t, Definition{})

	require.NotNil(t, field.AvailableOptions())
	assert.Empty(t, field.AvailableOptions())
}

func TestOptionsField_KeepsAvailableOptionsInOrder(t *testing.T) {
	field := newOptionsField(t, Definition{Options: twoOptions()})

	available := field.AvailableOptions()
	require.Len(t, available, 2)
	assert.Equal(t, Option{Label: "Option 1", Name: "option987", Value: "option1"}, available[0])
	assert.Equal(t, Option{Label: "Option 2", Name: "option989", Value: "option2"}, available[1])
}

func TestOptionsField_SelectOption(t *testing.T) {
	field := newOptionsField(t, Definition{Options: twoOptions()})
	available := field.AvailableOptions()

	assert.Empty(t, field.CurrentValue())

	field.SelectOption(available[0])
	require.Len(t, field.CurrentValue(), 1)
	assert.Equal(t, available[0], field.CurrentValue()[0])

	// a second selection replaces, never adds
	field.SelectOption(available[1])
	require.Len(t, field.CurrentValue(), 1)
	assert.Equal(t, available[1], field.CurrentValue()[0])
}

func TestOptionsField_SelectUnknownOptionIsNoop(t *testing.T) {
	field := newOptionsField(t, Definition{Options: twoOptions()})

	field.SelectOption(Option{Label: "Other", Name: "other", Value: "other"})

	assert.Empty(t, field.CurrentValue())
}

func TestOptionsField_ClearOption(t *testing.T) {
	field := newOptionsField(t, Definition{Options: twoOptions()})
	available := field.AvailableOptions()

	field.SelectOption(available[0])
	field.ClearOption(available[0])
	assert.Empty(t, field.CurrentValue())

	// clearing an unselected option is a no-op
	field.SelectOption(available[0])
	field.ClearOption(available[1])
	require.Len(t, field.CurrentValue(), 1)
	assert.Equal(t, available[0], field.CurrentValue()[0])
}

func TestOptionsField_ClearWhenNothingSelectedIsNoop(t *testing.T) {
	field := newOptionsField(t, Definition{Options: twoOptions()})

	field.ClearOption(field.AvailableOptions()[0])

	assert.Empty(t, field.CurrentValue())
}

func TestOptionsField_ConvertToWireString(t *testing.T) {
	field := newOptionsField(t, Definition{})

	assert.Equal(t, "[]", field.ConvertToWireString(nil))
	assert.Equal(t, "[]", field.ConvertToWireString([]Option{}))

	option1 := Option{Label: "Option 1", Name: "option987", Value: "option1"}
	option2 := Option{Label: "Option 2", Name: "option989", Value: "option2"}

	assert.Equal(t, `["option1"]`, field.ConvertToWireString([]Option{option1}))
	assert.Equal(t, `["option1", "option2"]`, field.ConvertToWireString([]Option{option1, option2}))
	// input order, not available-options order
	assert.Equal(t, `["option2", "option1"]`, field.ConvertToWireString([]Option{option2, option1}))
}

func TestOptionsField_ConvertFromWireString(t *testing.T) {
	field := newOptionsField(t, Definition{Options: twoOptions()})

	for name, raw := range map[string]string{
		"empty":      "",
		"empty list": "[]",
	} {
		result := field.ConvertFromWireString(raw)
		require.NotNil(t, result, name)
		assert.Empty(t, result, name)
	}

	want := Option{Label: "Option 1", Name: "option987", Value: "option1"}
	for name, raw := range map[string]string{
		"bare value":    "option1",
		"bare label":    "Option 1",
		"value list":    "[option1]",
		"label list":    "[Option 1]",
		"stray quoting": `["Option 1]"`,
	} {
		result := field.ConvertFromWireString(raw)
		require.Len(t, result, 1, name)
		assert.Equal(t, want, result[0], name)
	}
}

func TestOptionsField_ConvertFromWireStringDropsUnmatchedTokens(t *testing.T) {
	field := newOptionsField(t, Definition{Options: twoOptions()})

	result := field.ConvertFromWireString(`["option1", "missing", "option2"]`)

	require.Len(t, result, 2)
	assert.Equal(t, "option1", result[0].Value)
	assert.Equal(t, "option2", result[1].Value)
}

func TestOptionsField_RoundTrip(t *testing.T) {
	field := newOptionsField(t, Definition{Options: twoOptions()})

	result := field.ConvertFromWireString("option1")

	assert.Equal(t, `["option1"]`, field.ConvertToWireString(result))
}

func TestOptionsField_ConvertToDisplayString(t *testing.T) {
	field := newOptionsField(t, Definition{Options: twoOptions()})

	assert.Equal(t, "", field.ConvertToDisplayString(nil))
	assert.Equal(t, "", field.ConvertToDisplayString([]Option{}))
	assert.Equal(t, "Option 1", field.ConvertToDisplayString(field.AvailableOptions()[:1]))
	assert.Equal(t, "Option 1, Option 2", field.ConvertToDisplayString(field.AvailableOptions()))
}

func TestOptionsField_Valid(t *testing.T) {
	field := newOptionsField(t, Definition{Options: twoOptions()})

	// required defaults to true when the definition omits it
	assert.True(t, field.Required())
	assert.False(t, field.Valid())

	field.SelectOption(field.AvailableOptions()[0])
	assert.True(t, field.Valid())

	field.ClearOption(field.AvailableOptions()[0])
	assert.False(t, field.Valid())

	optional := false
	relaxed := newOptionsField(t, Definition{Options: twoOptions(), Required: &optional})
	assert.True(t, relaxed.Valid())
}
