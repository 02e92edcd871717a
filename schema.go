package formvalidation

import (
	"reflect"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Schema is either an *[ObjectSchema] or a *[UnionSchema].
type Schema interface {
	// Parse validates data and returns the coerced value or the issues.
	Parse(data any) Result
	// OpenAPI documents the schema.
	OpenAPI() (*openapi3.SchemaRef, error)

	sealed()
}

// UnknownPolicy decides what an object schema does with undeclared keys.
type UnknownPolicy int

const (
	// UnknownStrip drops undeclared keys from the output.
	UnknownStrip UnknownPolicy = iota
	// UnknownReject reports every undeclared key as an issue.
	UnknownReject
	// UnknownPassthrough keeps undeclared keys, unvalidated.
	UnknownPassthrough
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrip:
		return "strip"
	case UnknownReject:
		return "strict"
	case UnknownPassthrough:
		return "passthrough"
	}
	return "invalid"
}

// KeyDecl binds a field name to its declaration.
type KeyDecl struct {
	name  string
	field *Field
}

// Key declares the field name of an object schema.
func Key(name string, f *Field) *KeyDecl {
	return &KeyDecl{name: name, field: f}
}

// ObjectSchema validates a mapping of named fields. New schemas strip
// undeclared keys. All methods return new schemas and leave the receiver
// unchanged.
type ObjectSchema struct {
	keys    []string
	fields  map[string]*Field
	unknown UnknownPolicy
}

// Object creates an object schema from key declarations. A name declared
// twice keeps its first position and its last declaration.
func Object(keys ...*KeyDecl) *ObjectSchema {
	s := &ObjectSchema{fields: make(map[string]*Field, len(keys))}
	return s.extend(keys)
}

func (s *ObjectSchema) sealed() {}

func (s *ObjectSchema) clone() *ObjectSchema {
	c := &ObjectSchema{
		keys:    slices.Clone(s.keys),
		fields:  make(map[string]*Field, len(s.fields)),
		unknown: s.unknown,
	}
	for k, f := range s.fields {
		c.fields[k] = f
	}
	return c
}

func (s *ObjectSchema) extend(keys []*KeyDecl) *ObjectSchema {
	for _, kd := range keys {
		if _, ok := s.fields[kd.name]; !ok {
			s.keys = append(s.keys, kd.name)
		}
		s.fields[kd.name] = kd.field
	}
	return s
}

// Keys returns the declared field names in declaration order.
func (s *ObjectSchema) Keys() []string {
	return slices.Clone(s.keys)
}

// Shape returns the declaration of the named field.
func (s *ObjectSchema) Shape(name string) (*Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// UnknownPolicy returns how undeclared keys are handled.
func (s *ObjectSchema) UnknownPolicy() UnknownPolicy {
	return s.unknown
}

// Extend adds field declarations; an existing name is replaced.
func (s *ObjectSchema) Extend(keys ...*KeyDecl) *ObjectSchema {
	return s.clone().extend(keys)
}

// Merge returns a schema with the fields of both. Fields of other replace
// fields of s with the same name entirely, and other's unknown policy is used.
func (s *ObjectSchema) Merge(other *ObjectSchema) *ObjectSchema {
	c := s.clone()
	for _, k := range other.keys {
		c.extend([]*KeyDecl{Key(k, other.fields[k])})
	}
	c.unknown = other.unknown
	return c
}

// Partial makes every top-level field optional. Absent fields stay absent:
// defaults are not applied. Nested schemas are unchanged.
func (s *ObjectSchema) Partial() *ObjectSchema {
	c := s.clone()
	for k, f := range c.fields {
		c.fields[k] = f.partialCopy()
	}
	return c
}

func (s *ObjectSchema) withUnknown(p UnknownPolicy) *ObjectSchema {
	c := s.clone()
	c.unknown = p
	return c
}

// Strict rejects undeclared keys.
func (s *ObjectSchema) Strict() *ObjectSchema { return s.withUnknown(UnknownReject) }

// Strip silently drops undeclared keys.
func (s *ObjectSchema) Strip() *ObjectSchema { return s.withUnknown(UnknownStrip) }

// Passthrough keeps undeclared keys as unvalidated values.
func (s *ObjectSchema) Passthrough() *ObjectSchema { return s.withUnknown(UnknownPassthrough) }

// asMapping accepts map[string]any and other string keyed maps.
func asMapping(data any) (FieldMapping, bool) {
	switch m := data.(type) {
	case map[string]any:
		return m, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(FieldMapping, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// Parse validates data, a string keyed mapping. Nil values count as absent.
// Absent fields take their default, are skipped when optional and are
// reported missing otherwise. Declared fields are coerced, then their rules
// run through ozzo's map rule, which also enforces the unknown key policy.
// Issues follow declaration order; undeclared keys follow, sorted.
func (s *ObjectSchema) Parse(data any) Result {
	src, ok := asMapping(data)
	if !ok {
		return failure(typeIssue(nil, ErrNotObject)...)
	}

	values := make(FieldMapping, len(src))
	fieldIssues := map[string][]Issue{}
	keyRules := make([]*validation.KeyRules, 0, len(s.keys))
	for _, k := range s.keys {
		f := s.fields[k]
		raw, present := src[k]
		if present && raw == nil {
			present = false
		}
		if !present && f.hasDefault && !f.partial {
			raw, present = f.def, true
		}
		if !present {
			if !f.optional {
				keyRules = append(keyRules, validation.Key(k))
			}
			continue
		}
		v, iss := f.parse(raw, Path{k})
		if len(iss) > 0 {
			fieldIssues[k] = iss
			continue
		}
		values[k] = v
		kr := validation.Key(k, f.validationRules()...)
		if f.optional {
			kr = kr.Optional()
		}
		keyRules = append(keyRules, kr)
	}

	var extras []string
	for k := range src {
		if _, known := s.fields[k]; !known {
			extras = append(extras, k)
		}
	}
	slices.Sort(extras)

	probe := make(map[string]any, len(values)+len(extras))
	for k, v := range values {
		probe[k] = v
	}
	for _, k := range extras {
		probe[k] = src[k]
	}

	rule := validation.Map(keyRules...)
	if s.unknown != UnknownReject {
		rule = rule.AllowExtraKeys()
	}
	err := rule.Validate(probe)

	errs, isMapErr := err.(validation.Errors)
	if err != nil && !isMapErr {
		return failure(issuesFromError(nil, err)...)
	}

	var issues []Issue
	for _, k := range s.keys {
		if iss, ok := fieldIssues[k]; ok {
			issues = append(issues, iss...)
			continue
		}
		if e, ok := errs[k]; ok {
			issues = append(issues, issuesFromError(Path{k}, e)...)
		}
	}
	for _, k := range extras {
		if e, ok := errs[k]; ok {
			issues = append(issues, issuesFromError(Path{k}, e)...)
		}
	}
	if len(issues) > 0 {
		return failure(issues...)
	}

	if s.unknown == UnknownPassthrough {
		for _, k := range extras {
			values[k] = src[k]
		}
	}
	return success(values)
}

// OpenAPI documents the object: declared properties, required names and
// additionalProperties following the unknown key policy.
func (s *ObjectSchema) OpenAPI() (*openapi3.SchemaRef, error) {
	obj := openapi3.NewObjectSchema()
	if obj.Properties == nil {
		obj.Properties = openapi3.Schemas{}
	}
	for _, k := range s.keys {
		f := s.fields[k]
		ref, err := f.describe(k, obj)
		if err != nil {
			return nil, err
		}
		obj.Properties[k] = ref
		if !f.optional && !f.hasDefault {
			markRequired(obj, k)
		}
	}
	if s.unknown != UnknownStrip {
		has := s.unknown == UnknownPassthrough
		obj.AdditionalProperties = openapi3.AdditionalProperties{Has: &has}
	}
	return &openapi3.SchemaRef{Value: obj}, nil
}

// CodeUnionNoMatch is the issue code reported when no union member accepts the data.
const CodeUnionNoMatch = "validation_union_no_match"

// UnionSchema accepts data matching any one of its members. Members are
// tried in order and the first that succeeds produces the value.
type UnionSchema struct {
	members []Schema
}

// Union creates an alternative of schemas.
func Union(members ...Schema) *UnionSchema {
	return &UnionSchema{members: slices.Clone(members)}
}

func (u *UnionSchema) sealed() {}

// Members returns the alternatives in order.
func (u *UnionSchema) Members() []Schema {
	return slices.Clone(u.members)
}

// Parse returns the result of the first member that accepts data. When none
// does a single issue at the root path is reported.
func (u *UnionSchema) Parse(data any) Result {
	for _, m := range u.members {
		if res := m.Parse(data); res.OK {
			return res
		}
	}
	return failure(Issue{Code: CodeUnionNoMatch, Message: "must match one of the allowed shapes"})
}

// OpenAPI documents the union as oneOf its members.
func (u *UnionSchema) OpenAPI() (*openapi3.SchemaRef, error) {
	s := &openapi3.Schema{OneOf: make(openapi3.SchemaRefs, 0, len(u.members))}
	for _, m := range u.members {
		ref, err := m.OpenAPI()
		if err != nil {
			return nil, err
		}
		s.OneOf = append(s.OneOf, ref)
	}
	return &openapi3.SchemaRef{Value: s}, nil
}
