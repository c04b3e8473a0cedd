package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaURL = "schema://quiz.json"

// Schema is the JSON Schema every quiz definition file must satisfy.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["title", "questions", "tiers"],
  "additionalProperties": false,
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "intro": {"type": "string"},
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["prompt", "options"],
        "additionalProperties": false,
        "properties": {
          "prompt": {"type": "string", "minLength": 1},
          "options": {
            "type": "array",
            "minItems": 2,
            "items": {
              "type": "object",
              "required": ["label", "weight"],
              "additionalProperties": false,
              "properties": {
                "label": {"type": "string", "minLength": 1},
                "weight": {"type": "integer", "minimum": 0, "maximum": 1000}
              }
            }
          }
        }
      }
    },
    "tiers": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["min_score", "title", "description"],
        "additionalProperties": false,
        "properties": {
          "min_score": {"type": "integer"},
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string"}
        }
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(Schema), &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// LoadFile reads a quiz definition from a .json, .yaml or .yml file.
func LoadFile(path string) (*Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseYAML decodes a YAML quiz definition. The document is converted to
// JSON first so both formats share one schema.
func ParseYAML(data []byte) (*Quiz, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidQuiz, err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: convert yaml: %w", ErrInvalidQuiz, err)
	}
	return ParseJSON(raw)
}

// ParseJSON decodes and validates a JSON quiz definition.
func ParseJSON(data []byte) (*Quiz, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrInvalidQuiz, err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile quiz schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: schema: %w", ErrInvalidQuiz, err)
	}

	var q Quiz
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidQuiz, err)
	}
	if err := Validate(&q); err != nil {
		return nil, err
	}
	return &q, nil
}
