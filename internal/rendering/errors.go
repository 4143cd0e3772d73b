// Package rendering runs the external RenderCV renderer over YAML CV files.
package rendering

import (
	"errors"
	"fmt"
)

// ErrNoFiles is returned when a batch finds no YAML files to render
var ErrNoFiles = errors.New("no YAML files found")

// FileNotFoundError represents a CV file missing from the CV directory
type FileNotFoundError struct {
	Name string
	Dir  string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("CV file %s not found in %s directory", e.Name, e.Dir)
}

// RenderError represents a failed renderer run for a single file.
// ExitCode is -1 when the renderer could not be started.
type RenderError struct {
	File     string
	ExitCode int
	Stdout   string
	Stderr   string
	Cause    error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.File, e.Cause)
	}
	return fmt.Sprintf("render error: %s: renderer exited with status %d", e.File, e.ExitCode)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
