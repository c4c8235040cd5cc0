package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/dialog"

	"github.com/xeipuuv/gojsonschema"
)

// LexEventSchema is the subset of the Lex V2 code hook event the router reads.
// Everything else Lex sends is allowed through untouched.
const LexEventSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["sessionState"],
  "properties": {
    "sessionId": {"type": "string"},
    "sessionState": {
      "type": "object",
      "required": ["intent"],
      "properties": {
        "intent": {
          "type": "object",
          "required": ["name"],
          "properties": {
            "name": {"type": "string", "minLength": 1},
            "slots": {
              "type": ["object", "null"],
              "additionalProperties": {
                "oneOf": [
                  {"type": "null"},
                  {
                    "type": "object",
                    "properties": {
                      "value": {
                        "type": ["object", "null"],
                        "properties": {
                          "interpretedValue": {"type": ["string", "null"]}
                        }
                      }
                    }
                  }
                ]
              }
            }
          }
        }
      }
    }
  }
}`

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (r *ValidationResult) String() string {
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return strings.Join(parts, "; ")
}

var lexEventSchema = mustCompile(LexEventSchema)

func mustCompile(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("validation: bad built-in schema: %v", err))
	}
	return compiled
}

// ValidateEvent checks raw JSON against LexEventSchema.
func ValidateEvent(raw []byte) *ValidationResult {
	result, err := lexEventSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{{
				Field:   "(root)",
				Message: err.Error(),
				Code:    "MALFORMED_JSON",
			}},
		}
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	return out
}

// DecodeEvent validates and decodes a code hook event.
func DecodeEvent(raw []byte) (*dialog.Event, error) {
	if result := ValidateEvent(raw); !result.Valid {
		return nil, apperrors.NewInvalidEventError(result.String())
	}

	var event dialog.Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, apperrors.NewInvalidEventError(err.Error())
	}
	return &event, nil
}
