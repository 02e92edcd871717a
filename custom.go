package formvalidation

import (
	"errors"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CodeCustom is the issue code of errors returned by rules that do not carry
// an ozzo error code of their own.
const CodeCustom = "validation_custom"

type custom struct {
	f    func(any) error
	desc string
}

// Custom returns a validation rule that uses f for validation and desc for documentation.
func Custom(f func(any) error, desc string) Rule {
	return custom{
		f:    f,
		desc: desc,
	}
}

func (r custom) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

func (r custom) Validate(value any) error {
	return r.f(value)
}

// By wraps a RuleFunc into a Rule.
func By(f RuleFunc, desc string) Rule {
	return &inlineRule{validation.By(validation.RuleFunc(f)), desc}
}

type inlineRule struct {
	validation.Rule
	desc string
}

func (r *inlineRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

// Refine returns a rule that fails with msg when ok reports false.
// Empty values are skipped, like the other rules.
func Refine(ok func(any) bool, msg string) Rule {
	return Custom(func(v any) error {
		if validation.IsEmpty(v) || ok(v) {
			return nil
		}
		return validation.NewError(CodeCustom, msg)
	}, msg)
}

// Message replaces the message of any error reported by r with msg. The ozzo
// error code is kept so callers can still tell failures apart.
//
//	Key("age", Number(Message("too young", Min(18))).Coerce())
func Message(msg string, r Rule) Rule {
	return messageRule{r, msg}
}

type messageRule struct {
	Rule
	msg string
}

func (r messageRule) Validate(value any) error {
	err := r.Rule.Validate(value)
	if err == nil {
		return nil
	}
	var ve validation.Error
	if errors.As(err, &ve) {
		return ve.SetMessage(r.msg)
	}
	return validation.NewError(CodeCustom, r.msg)
}
