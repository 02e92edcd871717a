package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type lengthRule struct {
	validation.LengthRule
	min, max int
}

// Length returns a validation rule that checks the rune length of a string, or
// the number of elements of a list, is within lo and hi. A hi of 0 means no
// upper bound.
func Length(lo, hi int) Rule {
	return &lengthRule{
		validation.RuneLength(lo, hi),
		lo,
		hi,
	}
}

// Validate checks the length. Unlike ozzo's rule an empty string or list is
// checked too, so Length(2, 0) rejects a blank form field. Nil is skipped.
func (r *lengthRule) Validate(value any) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	if n, err := validation.LengthOfValue(v); err == nil && n == 0 && r.min > 0 {
		var e validation.Error
		switch {
		case r.min == r.max:
			e = validation.ErrLengthInvalid
		case r.max == 0:
			e = validation.ErrLengthTooShort
		default:
			e = validation.ErrLengthOutOfRange
		}
		return e.SetParams(map[string]any{"min": r.min, "max": r.max})
	}
	return r.LengthRule.Validate(v)
}

func (r *lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Type.Is(openapi3.TypeArray) {
		ref.Value.MinItems = uint64(r.min)
		if r.max > 0 {
			m := uint64(r.max)
			ref.Value.MaxItems = &m
		}
		return nil
	}
	ref.Value.MinLength = uint64(r.min)
	if r.max > 0 {
		m := uint64(r.max)
		ref.Value.MaxLength = &m
	}
	return nil
}
