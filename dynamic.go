package formvalidation

import (
	"fmt"
	"log/slog"
)

// SchemaOptions configures [CreateDynamicSchema].
type SchemaOptions struct {
	Strategy          Strategy
	Modification      Modification
	AdditionalSchemas []Schema
	// Logger receives configuration warnings. Nil means slog.Default().
	Logger *slog.Logger
}

func (o SchemaOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// CreateDynamicSchema builds the effective schema: first the structural
// modification is applied to base, then the strategy. The strategy needs an
// object schema; when the modification produced a union a non-strict
// strategy is ignored with a warning and each member's own policy applies.
func CreateDynamicSchema(base Schema, opts SchemaOptions) Schema {
	log := opts.logger()
	effective := applyModification(base, opts.Modification, opts.AdditionalSchemas, log)

	obj, ok := effective.(*ObjectSchema)
	if !ok {
		if opts.Strategy != StrategyStrict {
			log.Warn("validation strategy ignored for non-object schema",
				slog.String("strategy", opts.Strategy.String()),
				slog.String("modification", opts.Modification.String()),
				slog.String("schema", fmt.Sprintf("%T", effective)))
		}
		return effective
	}
	return applyStrategy(obj, opts.Strategy)
}

func applyModification(base Schema, m Modification, aux []Schema, log *slog.Logger) Schema {
	switch m {
	case ModificationMergeWithAnd:
		acc, ok := base.(*ObjectSchema)
		if !ok {
			log.Warn("mergeWithAnd needs an object base schema, using base unchanged",
				slog.String("schema", fmt.Sprintf("%T", base)))
			return base
		}
		for i, s := range aux {
			next, ok := s.(*ObjectSchema)
			if !ok {
				log.Warn("mergeWithAnd skipped non-object additional schema",
					slog.Int("index", i),
					slog.String("schema", fmt.Sprintf("%T", s)))
				continue
			}
			acc = acc.Merge(next)
		}
		return acc
	case ModificationMergeWithOr:
		members := make([]Schema, 0, len(aux)+1)
		members = append(members, base)
		members = append(members, aux...)
		return Union(members...)
	}
	return base
}

// applyStrategy only takes object schemas; unions never reach it.
func applyStrategy(s *ObjectSchema, strategy Strategy) *ObjectSchema {
	switch strategy {
	case StrategyAllowExtraFields:
		return s.Passthrough()
	case StrategyRemoveExtraFields:
		return s.Strip()
	case StrategyPartialStrict:
		return s.Partial().Strict()
	case StrategyPartial:
		return s.Partial().Passthrough()
	}
	return s.Strict()
}

// ValidateWithDynamicSchema builds the effective schema for base and parses data with it.
func ValidateWithDynamicSchema(base Schema, data FieldMapping, opts SchemaOptions) Result {
	return CreateDynamicSchema(base, opts).Parse(data)
}
