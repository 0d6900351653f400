package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// clothingItemSchema pins the shape of an ingestion payload before it
// reaches the store; struct tags catch the rest at bind time.
const clothingItemSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "type", "color"],
	"properties": {
		"name":  {"type": "string", "minLength": 1, "maxLength": 255},
		"type":  {"type": "string", "minLength": 1, "maxLength": 100},
		"color": {"type": "string", "minLength": 1, "maxLength": 100},
		"tags": {
			"type": "array",
			"maxItems": 20,
			"items": {"type": "string", "minLength": 1, "maxLength": 50}
		}
	},
	"additionalProperties": false
}`

type SchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

func NewSchemaValidator() (*SchemaValidator, error) {
	sv := &SchemaValidator{
		schemas: make(map[string]*gojsonschema.Schema),
	}

	for name, raw := range map[string]string{
		"clothing_item": clothingItemSchema,
	} {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s schema: %w", name, err)
		}
		sv.schemas[name] = schema
	}

	return sv, nil
}

// ValidateClothingItem checks a raw JSON payload against the clothing item
// schema and returns a readable error listing every violation.
func (sv *SchemaValidator) ValidateClothingItem(payload []byte) error {
	result, err := sv.schemas["clothing_item"].Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid clothing item: %s", strings.Join(problems, "; "))
}
