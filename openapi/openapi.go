package openapi

import (
	"errors"
	"net/http"

	fv "github.com/Gobd/formvalidation"
	"github.com/getkin/kin-openapi/openapi3"
)

// Form content types accepted by form request bodies.
const (
	ContentMultipart  = "multipart/form-data"
	ContentURLEncoded = "application/x-www-form-urlencoded"
	ContentJSON       = "application/json"
)

// Response describes an HTTP response with a description and body schemas.
type Response struct {
	Desc   string
	Bodies []fv.Schema
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Form        fv.Schema           // single form body schema (convenience)
	Forms       []fv.Schema         // multiple accepted form shapes (oneOf)
	Response    fv.Schema           // single 200 JSON response schema (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// NewFormRequestMust is like [NewFormRequest] but panics on error.
func NewFormRequestMust(schemas ...fv.Schema) *openapi3.RequestBodyRef {
	o, err := NewFormRequest(schemas...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewFormRequest documents a form request body. Several schemas are
// documented as oneOf.
func NewFormRequest(schemas ...fv.Schema) (*openapi3.RequestBodyRef, error) {
	ref, err := oneOf(schemas)
	if err != nil {
		return nil, err
	}
	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Required: true,
			Content: openapi3.Content{
				ContentMultipart:  &openapi3.MediaType{Schema: ref},
				ContentURLEncoded: &openapi3.MediaType{Schema: ref},
			},
		},
	}, nil
}

func oneOf(schemas []fv.Schema) (*openapi3.SchemaRef, error) {
	if len(schemas) == 0 {
		return nil, errors.New("no schemas given")
	}
	if len(schemas) == 1 {
		return schemas[0].OpenAPI()
	}
	return fv.Union(schemas...).OpenAPI()
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object with JSON bodies.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for statusCode, r := range vs {
		desc := r.Desc
		resp := &openapi3.Response{Description: &desc}
		if len(r.Bodies) > 0 {
			ref, err := oneOf(r.Bodies)
			if err != nil {
				return nil, err
			}
			resp.Content = openapi3.Content{ContentJSON: &openapi3.MediaType{Schema: ref}}
		}
		opts = append(opts, openapi3.WithName(statusCode, resp))
	}
	return openapi3.NewResponses(opts...), nil
}

// ErrorResponse documents the body of a failed form submission: the three
// views of [fv.ProcessedResult] errors.
func ErrorResponse() *openapi3.SchemaRef {
	item := openapi3.NewObjectSchema().
		WithProperty("key", openapi3.NewStringSchema()).
		WithProperty("message", openapi3.NewStringSchema())
	s := openapi3.NewObjectSchema().
		WithProperty("errors", openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewStringSchema())).
		WithProperty("errorsInArray", openapi3.NewArraySchema().WithItems(item)).
		WithProperty("errorsString", openapi3.NewStringSchema())
	return &openapi3.SchemaRef{Value: s}
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the OpenAPI document at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	case http.MethodDelete:
		p.Delete = op
	}

	s.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
// Endpoints with a form body also document a 400 response carrying the
// validation errors.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	forms := ep.Forms
	if len(forms) == 0 && ep.Form != nil {
		forms = []fv.Schema{ep.Form}
	}
	if len(forms) > 0 {
		op.RequestBody = NewFormRequestMust(forms...)
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []fv.Schema{ep.Response}},
		}
	}
	if responses != nil {
		op.Responses = NewResponseMust(responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	if len(forms) > 0 && op.Responses.Value("400") == nil {
		desc := "Validation failed"
		op.Responses.Set("400", &openapi3.ResponseRef{Value: &openapi3.Response{
			Description: &desc,
			Content:     openapi3.Content{ContentJSON: &openapi3.MediaType{Schema: ErrorResponse()}},
		}})
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
