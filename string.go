package formvalidation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type stringRule struct {
	validation.StringRule
	desc   string
	format string
}

var (
	// Email checks a string is a syntactically valid email address.
	Email Rule = stringRule{is.EmailFormat, "", "email"}

	// URL checks a string is an absolute URL with a scheme.
	URL Rule = stringRule{is.RequestURL.Error("must be a valid URL"), "", "uri"}
)

// NewStringRuleWithError returns a string validation rule with a custom error and schema description.
func NewStringRuleWithError(validator func(string) bool, err validation.Error, desc string) Rule {
	return stringRule{
		StringRule: validation.NewStringRuleWithError(validator, err),
		desc:       desc,
	}
}

// NewStringRule returns a string validation rule using desc as both the error message and schema description.
func NewStringRule(validator func(string) bool, desc string) Rule {
	return stringRule{
		StringRule: validation.NewStringRule(validator, desc),
		desc:       desc,
	}
}

// NewStringRuleDecimalMax returns a validation rule that limits the number of decimal places in a numeric string.
func NewStringRuleDecimalMax(i uint) Rule {
	desc := fmt.Sprintf("no more than %d decimals", i)
	return NewStringRule(func(s string) bool {
		spl := strings.Split(s, ".")
		if len(spl) < 2 {
			return true
		}
		return len(spl[1]) <= int(i)
	}, desc)
}

// Match returns a validation rule that checks a string matches re.
func Match(re *regexp.Regexp) Rule {
	return &matchRule{validation.Match(re), re}
}

type matchRule struct {
	validation.MatchRule
	re *regexp.Regexp
}

func (r *matchRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = r.re.String()
	return nil
}

func (r stringRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.format != "" {
		ref.Value.Format = r.format
	}
	appendDescription(ref, r.desc)
	return nil
}
