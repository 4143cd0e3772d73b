// Package schemas provides JSON Schema validation for decoded CV documents.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed rendercv.schema.json
var renderCVSchema string

// RenderCVSchema returns the embedded RenderCV input schema
func RenderCVSchema() string {
	return renderCVSchema
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (fe FieldError) String() string {
	return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 1 {
		return ve.Errors[0].String()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:", len(ve.Errors)))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, err))
	}
	return sb.String()
}

// ValidateRenderCV validates a decoded YAML document against the RenderCV input schema.
// The document must only contain JSON-compatible values (string-keyed maps, slices, scalars).
func ValidateRenderCV(document any) error {
	return ValidateDocument("rendercv.schema.json", renderCVSchema, document)
}

// ValidateDocument validates a decoded document against schema content.
// name is only used to label load errors.
func ValidateDocument(name, schemaContent string, document any) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return &SchemaLoadError{
			Path:    name,
			Message: "schema could not be compiled",
			Cause:   err,
		}
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		return &SchemaLoadError{
			Path:    name,
			Message: "document could not be loaded for validation",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
