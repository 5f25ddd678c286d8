package siteconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ConfigSchema documents the JSON shape accepted from the persistence
// boundary. The typed decoder enforces the content union per section type;
// the schema guards the envelope before any decoding happens.
var ConfigSchema = map[string]any{
	"type":     "object",
	"required": []string{"siteName", "pages"},
	"properties": map[string]any{
		"siteName": map[string]any{"type": "string", "minLength": 1},
		"tagline":  map[string]any{"type": "string"},
		"logo":     map[string]any{"type": "string"},
		"theme": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"primaryColor":   map[string]any{"type": "string"},
				"secondaryColor": map[string]any{"type": "string"},
				"fontFamily":     map[string]any{"type": "string"},
			},
		},
		"pages": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"$ref": "#/$defs/page"},
		},
		"crisisMode": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"enabled": map[string]any{"type": "boolean"},
				"title":   map[string]any{"type": "string"},
				"message": map[string]any{"type": "string"},
			},
		},
	},
	"$defs": map[string]any{
		"page": map[string]any{
			"type":     "object",
			"required": []string{"id", "name", "type"},
			"properties": map[string]any{
				"id":   map[string]any{"type": "string", "minLength": 1},
				"name": map[string]any{"type": "string"},
				"type": map[string]any{
					"enum": []string{"home", "about", "contact", "custom", "crisis"},
				},
				"isHidden": map[string]any{"type": "boolean"},
				"sections": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/section"},
				},
			},
		},
		"section": map[string]any{
			"type":     "object",
			"required": []string{"id", "type"},
			"properties": map[string]any{
				"id": map[string]any{"type": "string", "minLength": 1},
				"type": map[string]any{
					"enum": []string{"hero", "text", "image", "products", "form"},
				},
				"content": map[string]any{
					"type":                 "object",
					"additionalProperties": true,
				},
			},
		},
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compiledConfigSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		encoded, err := json.Marshal(ConfigSchema)
		if err != nil {
			schemaErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("siteconfig.json", bytes.NewReader(encoded)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("siteconfig.json")
	})
	return compiledSchema, schemaErr
}

// ValidateDocument checks a raw configuration document against ConfigSchema.
// Violations are reported as ErrConfigInvalid with the offending locations.
func ValidateDocument(data []byte) error {
	schema, err := compiledConfigSchema()
	if err != nil {
		return err
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	if err := schema.Validate(value); err != nil {
		var validationErr *jsonschema.ValidationError
		if ok := asValidationError(err, &validationErr); ok {
			return fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(collectIssues(validationErr), "; "))
		}
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}

// Decode validates, unmarshals, and invariant-checks a configuration document
// in one pass. This is the only entry point stores should use for documents
// that crossed a process boundary.
func Decode(data []byte) (SiteConfig, error) {
	if err := ValidateDocument(data); err != nil {
		return SiteConfig{}, err
	}
	var cfg SiteConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	if err := Validate(cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return cfg, nil
}

func asValidationError(err error, target **jsonschema.ValidationError) bool {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return false
	}
	*target = validationErr
	return true
}

func collectIssues(err *jsonschema.ValidationError) []string {
	if err == nil {
		return nil
	}
	issues := []string{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := node.InstanceLocation
			if location == "" {
				location = "/"
			}
			issues = append(issues, fmt.Sprintf("%s: %s", location, node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
