// internal/server/schema.go
package server

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// applicationSchema is the contract enforced on submission payloads before
// they are decoded. Shape errors are reported all at once instead of failing
// on the first bad field.
var applicationSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"tripDetails", "applicants", "visaSpeed"},
	"properties": map[string]interface{}{
		"tripDetails": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"applicants", "entryDate", "exitDate", "entryPort"},
			"properties": map[string]interface{}{
				"applicants": map[string]interface{}{
					"type":    "integer",
					"minimum": 1,
					"maximum": 10,
				},
				"purpose":   map[string]interface{}{"type": "string"},
				"entryPort": map[string]interface{}{"type": "string", "minLength": 1},
				"entryDate": map[string]interface{}{"type": "string", "minLength": 1},
				"exitDate":  map[string]interface{}{"type": "string", "minLength": 1},
			},
		},
		"applicants": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"maxItems": 10,
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"fullName", "nationality", "passportNumber", "email"},
				"properties": map[string]interface{}{
					"fullName":       map[string]interface{}{"type": "string", "minLength": 1},
					"nationality":    map[string]interface{}{"type": "string", "minLength": 2},
					"passportNumber": map[string]interface{}{"type": "string", "minLength": 1},
					"email":          map[string]interface{}{"type": "string", "minLength": 3},
				},
			},
		},
		"language":  map[string]interface{}{"type": "string"},
		"visaSpeed": map[string]interface{}{"type": "string", "minLength": 1},
	},
}

// draftSchema gates ad draft create and update payloads.
var draftSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"format", "imageUrls"},
	"properties": map[string]interface{}{
		"format": map[string]interface{}{
			"type": "string",
			"enum": []interface{}{"post", "story", "reel"},
		},
		"imageUrls": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]interface{}{"type": "string"},
		},
		"videoUrl": map[string]interface{}{"type": "string"},
		"caption":  map[string]interface{}{"type": "string"},
		"hashtags": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
		"status": map[string]interface{}{
			"type": "string",
			"enum": []interface{}{"draft", "scheduled", "posted"},
		},
	},
}

func validateSchema(schemaMap, data map[string]interface{}) []string {
	schemaLoader := gojsonschema.NewGoLoader(schemaMap)
	documentLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return []string{fmt.Sprintf("validation error: %v", err)}
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return errs
	}
	return nil
}
