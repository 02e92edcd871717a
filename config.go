package formvalidation

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of [ProcessOptions] that can live in a file.
// Schemas, transformations and additional data are code and stay out of it.
//
//	validationStrategy: removeExtraFields
//	schemaModification: default
//	outputFormat: formData
//	excludeFields: [csrf_token]
//	keyTransforms:
//	  e-mail: email
type Config struct {
	IncludeFields []string          `yaml:"includeFields,omitempty" json:"includeFields,omitempty"`
	ExcludeFields []string          `yaml:"excludeFields,omitempty" json:"excludeFields,omitempty"`
	KeyTransforms map[string]string `yaml:"keyTransforms,omitempty" json:"keyTransforms,omitempty"`

	OutputFormat       OutputFormat `yaml:"outputFormat" json:"outputFormat"`
	ValidationStrategy Strategy     `yaml:"validationStrategy" json:"validationStrategy"`
	SchemaModification Modification `yaml:"schemaModification" json:"schemaModification"`
	// UseDynamicValidation defaults to true when unset.
	UseDynamicValidation *bool `yaml:"useDynamicValidation,omitempty" json:"useDynamicValidation,omitempty"`
}

// LoadConfigYAML decodes a YAML config. Unknown keys are an error.
func LoadConfigYAML(b []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode yaml config: %w", err)
	}
	return c, nil
}

// LoadConfigJSON decodes a JSON config. Unknown keys are an error.
func LoadConfigJSON(b []byte) (Config, error) {
	var c Config
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode json config: %w", err)
	}
	return c, nil
}

// ProcessOptions returns new options carrying the config. The caller adds
// transformations, additional data and additional schemas.
func (c Config) ProcessOptions() *ProcessOptions {
	return &ProcessOptions{
		ExtractOptions: ExtractOptions{
			KeyTransforms: c.KeyTransforms,
			ExcludeFields: c.ExcludeFields,
			IncludeFields: c.IncludeFields,
		},
		OutputFormat:          c.OutputFormat,
		ValidationStrategy:    c.ValidationStrategy,
		SchemaModification:    c.SchemaModification,
		SkipDynamicValidation: c.UseDynamicValidation != nil && !*c.UseDynamicValidation,
	}
}
