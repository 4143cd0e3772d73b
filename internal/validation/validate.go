package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/cv-bank/internal/schemas"
	"github.com/jonathan/cv-bank/internal/types"
	"gopkg.in/yaml.v3"
)

// ValidateFile parses and validates a YAML CV file in one step
func ValidateFile(path string) (*types.Input, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(doc)
}

// Validate checks a parsed document against the RenderCV input schema and the
// typed field rules, and returns the decoded input model.
//
// The returned error is one of *SyntaxError or *SchemaError, or a wrapped
// *schemas.SchemaLoadError when the embedded schema itself is unusable.
func Validate(doc *Document) (*types.Input, error) {
	if doc == nil {
		return nil, &SyntaxError{Message: "document is empty"}
	}

	// 1. Structural rules (required fields, types)
	if err := schemas.ValidateRenderCV(doc.Data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, &SchemaError{Errors: validationErr.Errors, Cause: err}
		}
		return nil, fmt.Errorf("failed to run schema validation: %w", err)
	}

	// 2. Typed decode
	var input types.Input
	if err := yaml.Unmarshal(doc.Content, &input); err != nil {
		return nil, &SyntaxError{Message: "failed to decode CV model", Cause: err}
	}

	// 3. Field formats (emails, URLs, dates)
	if err := input.Validate(); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return nil, &SchemaError{Errors: convertFieldErrors(fieldErrs), Cause: err}
		}
		return nil, fmt.Errorf("failed to run field validation: %w", err)
	}

	return &input, nil
}

func convertFieldErrors(errs validator.ValidationErrors) []schemas.FieldError {
	out := make([]schemas.FieldError, 0, len(errs))
	for _, fe := range errs {
		field := fe.Namespace()
		// Drop the root type name ("Input.")
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		out = append(out, schemas.FieldError{
			Field:   field,
			Message: describeFieldError(fe),
		})
	}
	return out
}

func describeFieldError(fe validator.FieldError) string {
	switch {
	case strings.Contains(fe.Tag(), "cvdate"):
		return fmt.Sprintf("invalid date %q (expected YYYY-MM-DD, YYYY-MM, YYYY or present)", fe.Value())
	case fe.Tag() == "email":
		return fmt.Sprintf("invalid email address %q", fe.Value())
	case fe.Tag() == "url":
		return fmt.Sprintf("invalid URL %q", fe.Value())
	case fe.Tag() == "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}
