package formvalidation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type thresholdRule struct {
	validation.ThresholdRule
	// asFloat compares with the threshold as float64, used when a coerced
	// value and the threshold are different numeric kinds.
	asFloat   *validation.ThresholdRule
	threshold any
	min       bool
}

// Min returns a validation rule that checks if a value is greater than or equal to the specified minimum.
// Numeric values of a different kind than threshold (an int64 from [Int]
// against Min(0.5), a float64 from [Number] against Min(18)) are compared as
// float64. Strings are parsed as the threshold's kind.
func Min(threshold any) Rule {
	return newThresholdRule(threshold, true)
}

// Max returns a validation rule that checks if a value is less than or equal to the specified maximum.
func Max(threshold any) Rule {
	return newThresholdRule(threshold, false)
}

func newThresholdRule(threshold any, isMin bool) thresholdRule {
	r := thresholdRule{threshold: threshold, min: isMin}
	if isMin {
		r.ThresholdRule = validation.Min(threshold)
	} else {
		r.ThresholdRule = validation.Max(threshold)
	}
	if f, err := getFloat(threshold); err == nil && numericClass(reflect.ValueOf(threshold).Kind()) != 0 {
		fr := validation.Max(f)
		if isMin {
			fr = validation.Min(f)
		}
		r.asFloat = &fr
	}
	return r
}

func (r thresholdRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	f, err := getFloat(r.threshold)
	if err != nil {
		// time.Time and other non numeric thresholds are not documented
		return nil
	}
	if r.min {
		ref.Value.Min = &f
	} else {
		ref.Value.Max = &f
	}
	return nil
}

func (r thresholdRule) validateZero() error {
	t, err := getFloat(r.threshold)
	if err != nil || numericClass(reflect.ValueOf(r.threshold).Kind()) == 0 {
		return nil
	}
	if (r.min && t <= 0) || (!r.min && t >= 0) {
		return nil
	}
	e := validation.ErrMaxLessEqualThanRequired
	if r.min {
		e = validation.ErrMinGreaterEqualThanRequired
	}
	return e.SetParams(map[string]any{"threshold": r.threshold})
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	v := reflect.Indirect(reflect.ValueOf(unk))
	if !v.IsValid() || !v.Type().ConvertibleTo(floatType) {
		return 0, fmt.Errorf("cannot convert %T to float64", unk)
	}
	return v.Convert(floatType).Float(), nil
}

// numericClass groups reflect kinds the way ozzo compares thresholds.
func numericClass(k reflect.Kind) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return 1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 2
	case reflect.Float32, reflect.Float64:
		return 3
	}
	return 0
}

// Validate checks if the given value is valid or not.
func (r thresholdRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}

	vk := reflect.ValueOf(value).Kind()
	if vk != reflect.String && validation.IsEmpty(value) {
		// ozzo skips zero values, but a blank form field coerced to 0 must
		// still meet the threshold
		if numericClass(vk) == 0 {
			return nil
		}
		return r.validateZero()
	}
	if vk != reflect.String {
		tc := numericClass(reflect.ValueOf(r.threshold).Kind())
		if vc := numericClass(vk); vc != 0 && tc != 0 && vc != tc && r.asFloat != nil {
			f, _ := getFloat(value)
			return r.asFloat.Validate(f)
		}
		return r.ThresholdRule.Validate(value)
	}

	// json.Number and other named string kinds
	s := reflect.ValueOf(value).String()

	var err error
	switch reflect.ValueOf(r.threshold).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return errors.New("must be int64")
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		value, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			return errors.New("must be uint64")
		}
	case reflect.Float32, reflect.Float64:
		value, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("must be float64")
		}
	}

	return r.ThresholdRule.Validate(value)
}
