package formvalidation

import (
	"regexp"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to create a fresh schema + ref for each test
func newTestSchemaRef() (*openapi3.Schema, *openapi3.SchemaRef) {
	return openapi3.NewObjectSchema(), &openapi3.SchemaRef{Value: openapi3.NewSchema()}
}

func newTestStringSchemaRef() (*openapi3.Schema, *openapi3.SchemaRef) {
	return openapi3.NewObjectSchema(), &openapi3.SchemaRef{Value: openapi3.NewStringSchema()}
}

func TestDescribe_Required(t *testing.T) {
	schema, ref := newTestStringSchemaRef()

	require.NoError(t, Required.Describe("name", schema, ref))
	require.NoError(t, Required.Describe("name", schema, ref))

	assert.Equal(t, []string{"name"}, schema.Required)
	assert.Equal(t, uint64(1), ref.Value.MinLength)
}

func TestDescribe_MinMax(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, Min(5).Describe("age", schema, ref))
	require.NoError(t, Max(99.5).Describe("age", schema, ref))

	require.NotNil(t, ref.Value.Min)
	require.NotNil(t, ref.Value.Max)
	assert.Equal(t, float64(5), *ref.Value.Min)
	assert.Equal(t, 99.5, *ref.Value.Max)
}

func TestDescribe_MinTime(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, Min(time.Now()).Describe("at", schema, ref))
	assert.Nil(t, ref.Value.Min)
}

func TestDescribe_Length(t *testing.T) {
	schema, ref := newTestStringSchemaRef()

	require.NoError(t, Length(3, 255).Describe("title", schema, ref))
	assert.Equal(t, uint64(3), ref.Value.MinLength)
	require.NotNil(t, ref.Value.MaxLength)
	assert.Equal(t, uint64(255), *ref.Value.MaxLength)

	_, list := newTestSchemaRef()
	list.Value = openapi3.NewArraySchema()
	require.NoError(t, Length(1, 0).Describe("tags", schema, list))
	assert.Equal(t, uint64(1), list.Value.MinItems)
	assert.Nil(t, list.Value.MaxItems)
}

func TestDescribe_In(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, In("a", "b", "c").Describe("status", schema, ref))
	assert.Equal(t, []any{"a", "b", "c"}, ref.Value.Enum)
}

func TestDescribe_StringFormats(t *testing.T) {
	schema, ref := newTestStringSchemaRef()
	require.NoError(t, Email.Describe("email", schema, ref))
	assert.Equal(t, "email", ref.Value.Format)

	schema, ref = newTestStringSchemaRef()
	require.NoError(t, URL.Describe("site", schema, ref))
	assert.Equal(t, "uri", ref.Value.Format)

	schema, ref = newTestStringSchemaRef()
	require.NoError(t, Match(regexp.MustCompile(`^[a-z]+$`)).Describe("slug", schema, ref))
	assert.Equal(t, `^[a-z]+$`, ref.Value.Pattern)

	schema, ref = newTestStringSchemaRef()
	require.NoError(t, NewStringRuleDecimalMax(2).Describe("price", schema, ref))
	assert.Equal(t, "no more than 2 decimals", ref.Value.Description)
}

func TestDescribe_Date(t *testing.T) {
	schema, ref := newTestSchemaRef()
	lo := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, Date(time.DateOnly).Min(lo).Describe("day", schema, ref))
	assert.Equal(t, time.DateOnly, ref.Value.Format)
	assert.Equal(t, "> 2020-01-01T00:00:00Z", ref.Value.Description)
}

func TestDescribe_DocRules(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, Describe("first").Describe("f", schema, ref))
	require.NoError(t, Describe("second").Describe("f", schema, ref))
	require.NoError(t, Example("ex").Describe("f", schema, ref))
	require.NoError(t, Deprecate().Describe("f", schema, ref))

	assert.Equal(t, "first second", ref.Value.Description)
	assert.Equal(t, "ex", ref.Value.Example)
	assert.True(t, ref.Value.Deprecated)
	assert.NoError(t, Deprecate().Validate(nil))
}

func TestDescribe_Custom(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, Custom(func(any) error { return nil }, "custom description").Describe("x", schema, ref))
	require.NoError(t, By(func(any) error { return nil }, "by description").Describe("x", schema, ref))
	assert.Equal(t, "custom description by description", ref.Value.Description)
}

func TestObjectSchema_OpenAPI(t *testing.T) {
	s := Object(
		Key("name", String(Required, Length(1, 50))),
		Key("age", Int(Min(0)).Optional()),
		Key("role", String(In("user", "admin")).Default("user")),
		Key("tags", List(String(Length(1, 0)))),
		Key("address", Nested(Object(Key("city", String())).Passthrough())),
	).Strict()

	ref, err := s.OpenAPI()
	require.NoError(t, err)
	obj := ref.Value

	assert.Equal(t, []string{"name", "tags", "address"}, obj.Required)
	require.NotNil(t, obj.AdditionalProperties.Has)
	assert.False(t, *obj.AdditionalProperties.Has)

	name := obj.Properties["name"].Value
	assert.True(t, name.Type.Is(openapi3.TypeString))
	assert.Equal(t, uint64(1), name.MinLength)

	age := obj.Properties["age"].Value
	assert.True(t, age.Type.Is(openapi3.TypeInteger))
	require.NotNil(t, age.Min)

	assert.Equal(t, "user", obj.Properties["role"].Value.Default)

	tags := obj.Properties["tags"].Value
	assert.True(t, tags.Type.Is(openapi3.TypeArray))
	assert.Equal(t, uint64(1), tags.Items.Value.MinLength)

	address := obj.Properties["address"].Value
	assert.Equal(t, []string{"city"}, address.Required)
	require.NotNil(t, address.AdditionalProperties.Has)
	assert.True(t, *address.AdditionalProperties.Has)
}

func TestOptionalRequiredRule_NotMarked(t *testing.T) {
	ref, err := Object(Key("nick", String(Required).Optional())).OpenAPI()
	require.NoError(t, err)
	assert.Empty(t, ref.Value.Required)
}

func TestUnionSchema_OpenAPI(t *testing.T) {
	ref, err := Union(Object(Key("a", String())), Object(Key("b", Bool()))).OpenAPI()
	require.NoError(t, err)
	require.Len(t, ref.Value.OneOf, 2)
	assert.Contains(t, ref.Value.OneOf[1].Value.Properties, "b")
}
