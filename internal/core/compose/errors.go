// Package compose verifies that a generated manifest still loads as a
// Docker Compose project. This is part of the Functional Core - all
// functions are pure with no I/O.
//
// Verification runs on the generator's *output*; the topology
// transformation itself never parses YAML.
package compose

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrEmptyManifest means the manifest content is empty.
	ErrEmptyManifest = errors.New("manifest is empty")

	// ErrInvalidYAML means the content is not parseable YAML.
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrNoServices means the manifest defines no services.
	ErrNoServices = errors.New("manifest must define at least one service")

	// ErrUnknownDependency means a depends_on entry references a service
	// that is not defined.
	ErrUnknownDependency = errors.New("dependency references undefined service")

	// ErrCircularDependency means the service dependency graph has a cycle.
	ErrCircularDependency = errors.New("circular dependency detected")
)

// VerifyError wraps errors with context about which part of the manifest
// failed verification.
type VerifyError struct {
	Field   string // e.g. "services.prover.depends_on"
	Message string
	Err     error
}

func (e *VerifyError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *VerifyError) Unwrap() error {
	return e.Err
}

// NewVerifyError creates a new VerifyError.
func NewVerifyError(field, message string, err error) *VerifyError {
	return &VerifyError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
