package manifest

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrAnchorNotFound means no line contained the anchor substring.
	ErrAnchorNotFound = errors.New("anchor not found in manifest")

	// ErrKeyNotFound means no line matched the key at the expected depth.
	ErrKeyNotFound = errors.New("key not found in manifest")

	// ErrServiceNotFound means the dependent service block is missing.
	ErrServiceNotFound = errors.New("service not found in manifest")

	// ErrDependencyBlockNotFound means the service exists but carries no
	// dependency list to rewrite.
	ErrDependencyBlockNotFound = errors.New("dependency block not found in manifest")
)

// LocateError wraps a lookup failure with the target that was searched for.
type LocateError struct {
	Target  string // e.g. "CUDA_VISIBLE_DEVICES=0" or "services.prover"
	Message string
	Err     error
}

func (e *LocateError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s: %s", e.Target, e.Message)
	}
	return e.Message
}

func (e *LocateError) Unwrap() error {
	return e.Err
}

// NewLocateError creates a new LocateError.
func NewLocateError(target, message string, err error) *LocateError {
	return &LocateError{
		Target:  target,
		Message: message,
		Err:     err,
	}
}
