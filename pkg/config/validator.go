package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Validate validates a rendered configuration file against the JSON schema
func Validate(configFile string) error {
	return validate(gojsonschema.NewReferenceLoader("file://" + configFile))
}

// ValidateDocument validates a rendered configuration document against the JSON schema
func ValidateDocument(data []byte) error {
	return validate(gojsonschema.NewBytesLoader(data))
}

// ValidateConfig renders cfg and checks it against the schema and the cross-section invariants
func ValidateConfig(cfg *Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	if err := ValidateDocument(data); err != nil {
		return err
	}
	return cfg.Validate()
}

func validate(documentLoader gojsonschema.JSONLoader) error {
	schemaLoader := gojsonschema.NewStringLoader(Schema)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	return nil
}
