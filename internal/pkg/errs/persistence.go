package errs

import (
	"errors"
	"fmt"
)

// ErrPersistence is the sentinel error for order store failures. Persistence
// failures abort the whole operation; no partial write is acceptable.
var ErrPersistence = errors.New("persistence failed")

// PersistenceError indicates that the order store was unavailable or a write failed.
type PersistenceError struct {
	Op    string
	Cause error
}

// NewPersistenceError creates a PersistenceError for the named store operation.
func NewPersistenceError(op string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Cause: cause}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPersistence, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPersistence, e.Op))
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistence
}
