package graphviz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRenderFailed is returned when the layout program cannot be run or
// exits with an error.
var ErrRenderFailed = errors.New("erd: render failed")

// RenderError provides details about a failed layout run.
type RenderError struct {
	Program string
	Format  string
	Stderr  string
	Cause   error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	var sb strings.Builder
	sb.WriteString("erd: render error")
	if e.Program != "" {
		sb.WriteString(fmt.Sprintf(" running %q", e.Program))
	}
	if e.Format != "" {
		sb.WriteString(fmt.Sprintf(" (format: %s)", e.Format))
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	if trimmed := strings.TrimSpace(e.Stderr); trimmed != "" {
		sb.WriteString(": ")
		sb.WriteString(trimmed)
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Is implements error matching for ErrRenderFailed.
func (e *RenderError) Is(target error) bool {
	return target == ErrRenderFailed
}

// NewRenderError creates a new RenderError.
func NewRenderError(program, format, stderr string, cause error) *RenderError {
	return &RenderError{
		Program: program,
		Format:  format,
		Stderr:  stderr,
		Cause:   cause,
	}
}

// IsRenderError checks if an error is a RenderError.
func IsRenderError(err error) bool {
	var e *RenderError
	return errors.As(err, &e)
}
