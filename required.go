package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type requiredRule struct {
	validation.RequiredRule
}

// Required rejects empty values such as "" or an empty list. A field
// declaration that is not Optional already rejects a missing key; Required
// additionally rejects a key that is present but blank.
var Required Rule = requiredRule{validation.Required}

func (r requiredRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	markRequired(schema, name)
	if ref.Value.Type.Is(openapi3.TypeString) {
		ref.Value.MinLength = max(ref.Value.MinLength, 1)
	}
	return nil
}
