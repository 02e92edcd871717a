package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// FieldMapping is the plain form data object: field name to value.
	// Values are primitives, *Blob, time.Time, slices of those, or nested
	// FieldMappings.
	FieldMapping = map[string]any

	// RuleFunc is a function type that validates a value and returns an error if invalid.
	RuleFunc func(value any) error

	// Rule is the interface that all validation rules must implement.
	// Describe documents the rule on the OpenAPI schema of the field it is
	// attached to.
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// Transformer rewrites a single field value. Implementations must not
	// mutate their input.
	Transformer interface {
		Transform(value any) any
	}

	// TransformFunc adapts an ordinary function to a [Transformer].
	//
	//	opts.Transformations = map[string]Transformer{
	//	    "email": TransformFunc(transform.ToLower),
	//	}
	TransformFunc func(value any) any
)

// Transform calls f(value).
func (f TransformFunc) Transform(value any) any {
	return f(value)
}
