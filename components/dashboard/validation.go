package dashboard

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const configSchemaName = "eventdash-config.json"

const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "listen": {"type": "string"},
    "base_path": {"type": "string"},
    "carousel_interval": {"$ref": "#/definitions/duration"},
    "session_idle_timeout": {"$ref": "#/definitions/duration"},
    "chart": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "assets_host": {"type": "string"},
        "light_theme": {"type": "string"},
        "dark_theme": {"type": "string"},
        "height": {"type": "string", "pattern": "^[0-9]+(px|em|rem|vh|%)$"},
        "cache_ttl": {"$ref": "#/definitions/duration"}
      }
    }
  },
  "definitions": {
    "duration": {
      "type": "string",
      "pattern": "^([0-9]+(\\.[0-9]+)?(ns|us|ms|s|m|h))+$"
    }
  }
}`

// ConfigValidator validates decoded configuration documents against a JSON schema.
type ConfigValidator struct {
	schemaJSON string

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

var defaultConfigValidator = NewConfigValidator(configSchema)

// DefaultConfigValidator returns the validator for the application config.
func DefaultConfigValidator() *ConfigValidator {
	return defaultConfigValidator
}

// NewConfigValidator builds a validator for the given JSON schema document.
func NewConfigValidator(schemaJSON string) *ConfigValidator {
	return &ConfigValidator{schemaJSON: schemaJSON}
}

// Validate ensures the document satisfies the schema.
func (v *ConfigValidator) Validate(doc map[string]any) error {
	schema, err := v.schema()
	if err != nil {
		return err
	}
	var payload any = map[string]any{}
	if doc != nil {
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("eventdash: marshal config: %w", err)
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("eventdash: normalize config: %w", err)
		}
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("eventdash: config failed validation: %w", err)
	}
	return nil
}

func (v *ConfigValidator) schema() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(configSchemaName, strings.NewReader(v.schemaJSON)); err != nil {
			v.err = fmt.Errorf("eventdash: load config schema: %w", err)
			return
		}
		v.compiled, v.err = compiler.Compile(configSchemaName)
		if v.err != nil {
			v.err = fmt.Errorf("eventdash: compile config schema: %w", v.err)
		}
	})
	return v.compiled, v.err
}
