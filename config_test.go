package formvalidation_test

import (
	"testing"

	v "github.com/Gobd/formvalidation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigYAML(t *testing.T) {
	c, err := v.LoadConfigYAML([]byte(`
validationStrategy: partial-strict
schemaModification: mergeWithOr
outputFormat: formData
excludeFields: [csrf]
keyTransforms:
  e-mail: email
useDynamicValidation: false
`))
	require.NoError(t, err)
	assert.Equal(t, v.StrategyPartialStrict, c.ValidationStrategy)
	assert.Equal(t, v.ModificationMergeWithOr, c.SchemaModification)
	assert.Equal(t, v.OutputEncodedForm, c.OutputFormat)

	opts := c.ProcessOptions()
	assert.Equal(t, []string{"csrf"}, opts.ExcludeFields)
	assert.Equal(t, map[string]string{"e-mail": "email"}, opts.KeyTransforms)
	assert.True(t, opts.SkipDynamicValidation)
}

func TestLoadConfigYAML_Errors(t *testing.T) {
	_, err := v.LoadConfigYAML([]byte("validationStrategy: loose\n"))
	assert.ErrorContains(t, err, `unknown validation strategy "loose"`)

	_, err = v.LoadConfigYAML([]byte("strategy: strict\n"))
	assert.Error(t, err)
}

func TestLoadConfigJSON(t *testing.T) {
	c, err := v.LoadConfigJSON([]byte(`{"validationStrategy":"allowExtraFields","includeFields":["a"]}`))
	require.NoError(t, err)
	assert.Equal(t, v.StrategyAllowExtraFields, c.ValidationStrategy)
	assert.Equal(t, v.ModificationDefault, c.SchemaModification)

	opts := c.ProcessOptions()
	assert.Equal(t, []string{"a"}, opts.IncludeFields)
	assert.False(t, opts.SkipDynamicValidation)

	_, err = v.LoadConfigJSON([]byte(`{"schemaModification":"xor"}`))
	assert.Error(t, err)
	_, err = v.LoadConfigJSON([]byte(`{"unknown":1}`))
	assert.Error(t, err)
}

func TestConfig_DrivesProcess(t *testing.T) {
	c, err := v.LoadConfigYAML([]byte("validationStrategy: removeExtraFields\nkeyTransforms: {full_name: name}\n"))
	require.NoError(t, err)

	res := v.ProcessAndValidate(signupSchema, map[string]any{"full_name": "Bob", "age": "30", "x": 1}, c.ProcessOptions())
	require.True(t, res.Success, res.ErrorsString)
	assert.Equal(t, v.FieldMapping{"name": "Bob", "age": 30.0}, res.Data)
}

func TestConfig_MarshalText(t *testing.T) {
	b, err := v.StrategyPartial.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "partial", string(b))

	var m v.Modification
	require.NoError(t, m.UnmarshalText([]byte("mergeWithAnd")))
	assert.Equal(t, v.ModificationMergeWithAnd, m)
}

func TestParseOutputFormat(t *testing.T) {
	for _, name := range []string{"formData", "encodedForm"} {
		got, err := v.ParseOutputFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, v.OutputEncodedForm, got)
	}
	got, err := v.ParseOutputFormat("object")
	require.NoError(t, err)
	assert.Equal(t, v.OutputObject, got)
	_, err = v.ParseOutputFormat("xml")
	assert.Error(t, err)

	c, err := v.LoadConfigYAML([]byte("outputFormat: encodedForm\n"))
	require.NoError(t, err)
	assert.Equal(t, v.OutputEncodedForm, c.OutputFormat)
}
