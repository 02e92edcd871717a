package formvalidation

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateRule validates dates. String values must match the layout; time.Time
// values, as produced by a coerced [Time] field, are only range checked.
// Use [Date] to create one, then chain [DateRule.Min] and [DateRule.Max].
type DateRule struct {
	validation.DateRule
	layout   string
	min, max time.Time
}

// Date creates a date validation rule with the given layout format.
func Date(layout string) *DateRule {
	return &DateRule{
		DateRule: validation.Date(layout),
		layout:   layout,
	}
}

// Min sets the minimum allowed date.
func (r *DateRule) Min(t time.Time) *DateRule {
	r.min = t
	r.DateRule = r.DateRule.Min(t)
	return r
}

// Max sets the maximum allowed date.
func (r *DateRule) Max(t time.Time) *DateRule {
	r.max = t
	r.DateRule = r.DateRule.Max(t)
	return r
}

// Validate implements [Rule].
func (r *DateRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return r.DateRule.Validate(value)
	}
	if (!r.min.IsZero() && t.Before(r.min)) || (!r.max.IsZero() && t.After(r.max)) {
		return validation.ErrDateOutOfRange
	}
	return nil
}

// Describe implements [Rule] by setting the format and date range on the schema.
func (r *DateRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if !ref.Value.Type.Is(openapi3.TypeString) || ref.Value.Format == "" {
		ref.Value.Format = r.layout
	}
	if !r.min.IsZero() {
		appendDescription(ref, "> "+r.min.Format(time.RFC3339))
	}
	if !r.max.IsZero() {
		appendDescription(ref, "< "+r.max.Format(time.RFC3339))
	}
	return nil
}
