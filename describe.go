package formvalidation

import (
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// appendDescription adds desc to the field description, space separated.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}

// markRequired lists name in the parent object's required properties once.
func markRequired(schema *openapi3.Schema, name string) {
	if schema == nil || slices.Contains(schema.Required, name) {
		return
	}
	schema.Required = append(schema.Required, name)
}

type docRule struct {
	apply func(ref *openapi3.SchemaRef)
}

func (r docRule) Validate(_ any) error {
	return nil
}

func (r docRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	r.apply(ref)
	return nil
}

// Describe returns a documentation-only rule that appends desc to the field description.
func Describe(desc string) Rule {
	return docRule{func(ref *openapi3.SchemaRef) { appendDescription(ref, desc) }}
}

// Example returns a documentation-only rule that sets the field example value.
func Example(ex any) Rule {
	return docRule{func(ref *openapi3.SchemaRef) { ref.Value.Example = ex }}
}

// Deprecate returns a documentation-only rule that marks the field as deprecated.
func Deprecate() Rule {
	return docRule{func(ref *openapi3.SchemaRef) { ref.Value.Deprecated = true }}
}
