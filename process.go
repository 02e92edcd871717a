package formvalidation

import (
	"log/slog"
	"maps"
)

// ProcessOptions configures [ProcessAndValidate]. The zero value extracts
// every field and validates against the base schema made strict.
type ProcessOptions struct {
	ExtractOptions

	// Transformations rewrite field values after AdditionalData is merged.
	Transformations map[string]Transformer
	// AdditionalData is merged over the extracted fields; it wins on conflicts.
	AdditionalData FieldMapping
	OutputFormat   OutputFormat

	ValidationStrategy Strategy
	SchemaModification Modification
	AdditionalSchemas  []Schema
	// SkipDynamicValidation validates against the schema exactly as given,
	// ignoring ValidationStrategy, SchemaModification and AdditionalSchemas.
	SkipDynamicValidation bool

	// Logger receives configuration warnings. Nil means slog.Default().
	Logger *slog.Logger
}

// ProcessedResult is the outcome of [ProcessAndValidate].
//
// On success Data holds the validated value, and Form its encoding when
// [OutputEncodedForm] was requested. On failure Data holds the merged and
// transformed input that was validated, and the three error views describe
// the same issues.
type ProcessedResult struct {
	Success bool
	Data    FieldMapping
	Form    *FormData

	Errors        map[string]string
	ErrorsInArray []FieldError
	ErrorsString  string
}

// ProcessAndValidate extracts input, merges additional data, applies the
// transformations and validates the result against schema.
func ProcessAndValidate(schema Schema, input any, opts *ProcessOptions) ProcessedResult {
	if opts == nil {
		opts = &ProcessOptions{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	extracted := ExtractFormData(input, &opts.ExtractOptions)
	merged := maps.Clone(extracted)
	maps.Copy(merged, opts.AdditionalData)
	data := ApplyDataTransformations(merged, opts.Transformations)

	var res Result
	if opts.SkipDynamicValidation {
		res = schema.Parse(data)
	} else {
		res = ValidateWithDynamicSchema(schema, data, SchemaOptions{
			Strategy:          opts.ValidationStrategy,
			Modification:      opts.SchemaModification,
			AdditionalSchemas: opts.AdditionalSchemas,
			Logger:            log,
		})
	}

	if !res.OK {
		log.Debug("form validation failed",
			slog.Int("fields", len(data)),
			slog.Int("issues", len(res.Issues)))
		return ProcessedResult{
			Data:          data,
			Errors:        FormatErrorsAsMap(res),
			ErrorsInArray: FormatErrorsAsArray(res),
			ErrorsString:  FormatErrorsAsString(res),
		}
	}

	out := ProcessedResult{
		Success:       true,
		Data:          res.Value,
		Errors:        map[string]string{},
		ErrorsInArray: []FieldError{},
	}
	if opts.OutputFormat == OutputEncodedForm {
		out.Form = ConvertToFormData(res.Value)
	}
	return out
}
