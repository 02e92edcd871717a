package formvalidation

import "fmt"

// Strategy selects how the effective object schema treats undeclared fields
// and optionality. The zero value is [StrategyStrict].
type Strategy int

const (
	// StrategyStrict rejects fields not declared in the schema.
	StrategyStrict Strategy = iota
	// StrategyAllowExtraFields keeps undeclared fields as unvalidated values.
	StrategyAllowExtraFields
	// StrategyRemoveExtraFields silently drops undeclared fields.
	StrategyRemoveExtraFields
	// StrategyPartialStrict makes every top-level field optional and rejects
	// undeclared fields.
	StrategyPartialStrict
	// StrategyPartial makes every top-level field optional and keeps
	// undeclared fields.
	StrategyPartial
)

var strategyNames = map[Strategy]string{
	StrategyStrict:            "strict",
	StrategyAllowExtraFields:  "allowExtraFields",
	StrategyRemoveExtraFields: "removeExtraFields",
	StrategyPartialStrict:     "partial-strict",
	StrategyPartial:           "partial",
}

func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the strategy named name, as printed by String.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return StrategyStrict, fmt.Errorf("unknown validation strategy %q", name)
}

// Modification selects the structural change applied to the base schema
// before the strategy. The zero value is [ModificationDefault].
type Modification int

const (
	// ModificationDefault uses the base schema unchanged.
	ModificationDefault Modification = iota
	// ModificationMergeWithAnd merges the fields of the additional schemas
	// into the base, left to right; later declarations win.
	ModificationMergeWithAnd
	// ModificationMergeWithOr accepts data matching the base or any
	// additional schema, tried in that order.
	ModificationMergeWithOr
)

var modificationNames = map[Modification]string{
	ModificationDefault:      "default",
	ModificationMergeWithAnd: "mergeWithAnd",
	ModificationMergeWithOr:  "mergeWithOr",
}

func (m Modification) String() string {
	if n, ok := modificationNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Modification(%d)", int(m))
}

// ParseModification returns the modification named name, as printed by String.
func ParseModification(name string) (Modification, error) {
	for m, n := range modificationNames {
		if n == name {
			return m, nil
		}
	}
	return ModificationDefault, fmt.Errorf("unknown schema modification %q", name)
}

// OutputFormat selects the shape of successfully validated data.
type OutputFormat int

const (
	// OutputObject returns the coerced mapping.
	OutputObject OutputFormat = iota
	// OutputEncodedForm returns the coerced mapping encoded as [FormData].
	OutputEncodedForm
)

func (o OutputFormat) String() string {
	switch o {
	case OutputObject:
		return "object"
	case OutputEncodedForm:
		return "formData"
	}
	return fmt.Sprintf("OutputFormat(%d)", int(o))
}

// ParseOutputFormat returns the output format named name, as printed by
// String. "encodedForm" is accepted for [OutputEncodedForm] as well.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch name {
	case "object", "":
		return OutputObject, nil
	case "formData", "encodedForm":
		return OutputEncodedForm, nil
	}
	return OutputObject, fmt.Errorf("unknown output format %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) (err error) {
	*s, err = ParseStrategy(string(b))
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (m Modification) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Modification) UnmarshalText(b []byte) (err error) {
	*m, err = ParseModification(string(b))
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (o OutputFormat) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OutputFormat) UnmarshalText(b []byte) (err error) {
	*o, err = ParseOutputFormat(string(b))
	return err
}
