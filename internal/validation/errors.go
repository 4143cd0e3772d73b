// Package validation checks YAML CV files against the RenderCV input model and reports on their content.
package validation

import (
	"fmt"

	"github.com/jonathan/cv-bank/internal/schemas"
)

// ReadError represents an error reading a CV file
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to read %s", e.Path)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// SyntaxError represents a document that is not well-formed YAML or not a mapping
type SyntaxError struct {
	Message string
	Cause   error
}

func (e *SyntaxError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("YAML syntax error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("YAML syntax error: %s", e.Message)
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// SchemaError represents a document that parses but breaks the RenderCV input rules
type SchemaError struct {
	Errors []schemas.FieldError
	Cause  error
}

func (e *SchemaError) Error() string {
	if len(e.Errors) == 0 {
		if e.Cause != nil {
			return fmt.Sprintf("schema error: %v", e.Cause)
		}
		return "schema error"
	}
	return (&schemas.ValidationError{Errors: e.Errors}).Error()
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}
