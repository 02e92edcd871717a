package formvalidation

import (
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind is the value type a [Field] accepts.
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindNumber
	KindInt
	KindBool
	KindTime
	KindFile
	KindObject
	KindList
)

var kindNames = [...]string{"unknown", "string", "number", "int", "bool", "time", "file", "object", "list"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Type errors reported when a value does not have, and cannot be coerced to,
// the declared kind.
var (
	ErrNotString  = validation.NewError("validation_not_string", "must be a string")
	ErrNotNumber  = validation.NewError("validation_not_number", "must be a valid number")
	ErrNotInteger = validation.NewError("validation_not_integer", "must be a valid integer")
	ErrNotBool    = validation.NewError("validation_not_bool", "must be a boolean")
	ErrNotTime    = validation.NewError("validation_not_time", "must be a valid date")
	ErrNotFile    = validation.NewError("validation_not_file", "must be a file")
	ErrNotObject  = validation.NewError("validation_not_object", "must be an object")
	ErrNotList    = validation.NewError("validation_not_list", "must be a list")
)

// DefaultTimeLayouts are tried in order when a [Time] field coerces a string.
var DefaultTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", time.DateOnly}

// Field declares one named field of an [ObjectSchema]: its kind, whether it
// may be absent, a default and the rules run on the (coerced) value.
//
// Fields are immutable; every modifier returns a copy so one declaration can
// be shared between schemas.
type Field struct {
	kind       Kind
	rules      []Rule
	optional   bool
	partial    bool
	hasDefault bool
	def        any
	coerce     bool
	layouts    []string
	nested     Schema
	elem       *Field
}

func newField(kind Kind, rules []Rule) *Field {
	return &Field{kind: kind, rules: rules}
}

// String declares a string field.
func String(rules ...Rule) *Field { return newField(KindString, rules) }

// Number declares a float64 field.
func Number(rules ...Rule) *Field { return newField(KindNumber, rules) }

// Int declares an int64 field.
func Int(rules ...Rule) *Field { return newField(KindInt, rules) }

// Bool declares a boolean field.
func Bool(rules ...Rule) *Field { return newField(KindBool, rules) }

// Time declares a time.Time field. Coerced strings are parsed with
// [DefaultTimeLayouts] unless [Field.Layout] is set.
func Time(rules ...Rule) *Field { return newField(KindTime, rules) }

// File declares a *[Blob] field.
func File(rules ...Rule) *Field { return newField(KindFile, rules) }

// Unknown declares a field accepted as is, without a type check.
func Unknown(rules ...Rule) *Field { return newField(KindUnknown, rules) }

// Nested declares a field holding a mapping validated by s.
func Nested(s Schema, rules ...Rule) *Field {
	f := newField(KindObject, rules)
	f.nested = s
	return f
}

// List declares a list field whose elements are validated by elem.
// A coerced list accepts a lone value as a single element list, which is how
// a multi-valued form field with one entry is extracted.
func List(elem *Field, rules ...Rule) *Field {
	f := newField(KindList, rules)
	f.elem = elem
	return f
}

func (f *Field) clone() *Field {
	c := *f
	c.rules = append([]Rule(nil), f.rules...)
	c.layouts = append([]string(nil), f.layouts...)
	return &c
}

// Optional allows the field to be absent.
func (f *Field) Optional() *Field {
	c := f.clone()
	c.optional = true
	return c
}

// partialCopy marks the field optional for [ObjectSchema.Partial]. A partial
// field left absent stays absent; its default is not applied.
func (f *Field) partialCopy() *Field {
	c := f.clone()
	c.optional = true
	c.partial = true
	return c
}

// Default uses v when the field is absent. The default is coerced and
// validated like a supplied value.
func (f *Field) Default(v any) *Field {
	c := f.clone()
	c.hasDefault = true
	c.def = v
	return c
}

// Coerce parses string representations into the declared kind.
func (f *Field) Coerce() *Field {
	c := f.clone()
	c.coerce = true
	return c
}

// Layout sets the layouts tried when a coerced [Time] field parses a string.
func (f *Field) Layout(layouts ...string) *Field {
	c := f.clone()
	c.layouts = layouts
	return c
}

// With appends rules to a copy of the field.
func (f *Field) With(rules ...Rule) *Field {
	c := f.clone()
	c.rules = append(c.rules, rules...)
	return c
}

// Kind returns the declared kind.
func (f *Field) Kind() Kind { return f.kind }

// IsOptional reports whether the field may be absent.
func (f *Field) IsOptional() bool { return f.optional }

// Rules returns the rules run on the field value.
func (f *Field) Rules() []Rule { return append([]Rule(nil), f.rules...) }

func (f *Field) validationRules() []validation.Rule {
	vRules := make([]validation.Rule, len(f.rules))
	for i := range f.rules {
		vRules[i] = validation.Rule(f.rules[i])
	}
	return vRules
}

// parse type checks and coerces v. Issues are reported relative to path.
// The field's own rules are not run here; object schemas run them through
// ozzo's map rule and lists run element rules directly.
func (f *Field) parse(v any, path Path) (any, []Issue) {
	switch f.kind {
	case KindString:
		return f.parseString(v, path)
	case KindNumber:
		return f.parseNumber(v, path)
	case KindInt:
		return f.parseInt(v, path)
	case KindBool:
		return f.parseBool(v, path)
	case KindTime:
		return f.parseTime(v, path)
	case KindFile:
		return f.parseFile(v, path)
	case KindObject:
		res := f.nested.Parse(v)
		if !res.OK {
			return nil, prefixIssues(path, res.Issues)
		}
		return res.Value, nil
	case KindList:
		return f.parseList(v, path)
	}
	return v, nil
}

func typeIssue(path Path, err validation.Error) []Issue {
	return []Issue{{Path: path, Code: err.Code(), Message: err.Error()}}
}

func (f *Field) parseString(v any, path Path) (any, []Issue) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		if f.coerce {
			return string(s), nil
		}
	case *Blob, map[string]any, []any:
	default:
		if f.coerce {
			return govalidator.ToString(v), nil
		}
	}
	return nil, typeIssue(path, ErrNotString)
}

func (f *Field) parseNumber(v any, path Path) (any, []Issue) {
	rv := reflect.ValueOf(v)
	switch numericClass(rv.Kind()) {
	case 1, 2, 3:
		return rv.Convert(floatType).Float(), nil
	}
	if s, ok := v.(string); ok && f.coerce {
		n, err := govalidator.ToFloat(strings.TrimSpace(s))
		if err == nil {
			return n, nil
		}
	}
	return nil, typeIssue(path, ErrNotNumber)
}

func (f *Field) parseInt(v any, path Path) (any, []Issue) {
	rv := reflect.ValueOf(v)
	switch numericClass(rv.Kind()) {
	case 1:
		return rv.Int(), nil
	case 2:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return int64(u), nil
		}
		return nil, typeIssue(path, ErrNotInteger)
	case 3:
		if fl := rv.Float(); fl == math.Trunc(fl) && fl >= math.MinInt64 && fl < math.MaxInt64 {
			return int64(fl), nil
		}
		return nil, typeIssue(path, ErrNotInteger)
	}
	if s, ok := v.(string); ok && f.coerce {
		n, err := govalidator.ToInt(strings.TrimSpace(s))
		if err == nil {
			return n, nil
		}
	}
	return nil, typeIssue(path, ErrNotInteger)
}

func (f *Field) parseBool(v any, path Path) (any, []Issue) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	if s, ok := v.(string); ok && f.coerce {
		// checkboxes submit "on"
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "on":
			return true, nil
		case "off", "":
			return false, nil
		}
		if b, err := govalidator.ToBoolean(strings.TrimSpace(s)); err == nil {
			return b, nil
		}
	}
	return nil, typeIssue(path, ErrNotBool)
}

func (f *Field) parseTime(v any, path Path) (any, []Issue) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t != nil {
			return *t, nil
		}
	case string:
		if !f.coerce {
			break
		}
		layouts := f.layouts
		if len(layouts) == 0 {
			layouts = DefaultTimeLayouts
		}
		for _, l := range layouts {
			if parsed, err := time.Parse(l, strings.TrimSpace(t)); err == nil {
				return parsed, nil
			}
		}
	}
	return nil, typeIssue(path, ErrNotTime)
}

func (f *Field) parseFile(v any, path Path) (any, []Issue) {
	switch b := v.(type) {
	case *Blob:
		if b != nil {
			return b, nil
		}
	case Blob:
		return &b, nil
	case []byte:
		if f.coerce {
			return &Blob{Data: b}, nil
		}
	}
	return nil, typeIssue(path, ErrNotFile)
}

func (f *Field) parseList(v any, path Path) (any, []Issue) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		if !f.coerce {
			return nil, typeIssue(path, ErrNotList)
		}
		rv = reflect.ValueOf([]any{v})
	}
	if _, isBytes := v.([]byte); isBytes {
		rv = reflect.ValueOf([]any{v})
	}

	out := make([]any, rv.Len())
	var issues []Issue
	for i := range rv.Len() {
		elemPath := path.Append(i)
		ev, iss := f.elem.parse(rv.Index(i).Interface(), elemPath)
		if len(iss) > 0 {
			issues = append(issues, iss...)
			continue
		}
		if err := validation.Validate(ev, f.elem.validationRules()...); err != nil {
			issues = append(issues, issuesFromError(elemPath, err)...)
			continue
		}
		out[i] = ev
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}

// describe builds the OpenAPI schema of the field, applying rule
// descriptions. parent receives required markers unless the field is optional.
func (f *Field) describe(name string, parent *openapi3.Schema) (*openapi3.SchemaRef, error) {
	var s *openapi3.Schema
	switch f.kind {
	case KindString:
		s = openapi3.NewStringSchema()
	case KindNumber:
		s = openapi3.NewFloat64Schema()
	case KindInt:
		s = openapi3.NewInt64Schema()
	case KindBool:
		s = openapi3.NewBoolSchema()
	case KindTime:
		s = openapi3.NewDateTimeSchema()
	case KindFile:
		s = openapi3.NewStringSchema().WithFormat("binary")
	case KindObject:
		ref, err := f.nested.OpenAPI()
		if err != nil {
			return nil, err
		}
		s = ref.Value
	case KindList:
		items, err := f.elem.describe(name, nil)
		if err != nil {
			return nil, err
		}
		s = openapi3.NewArraySchema()
		s.Items = items
	default:
		s = openapi3.NewSchema()
	}
	if f.hasDefault && !f.partial {
		s.Default = f.def
	}
	ref := &openapi3.SchemaRef{Value: s}
	owner := parent
	if owner == nil || f.optional {
		owner = openapi3.NewSchema()
	}
	for _, rule := range f.rules {
		if err := rule.Describe(name, owner, ref); err != nil {
			return nil, err
		}
	}
	return ref, nil
}
