package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrChecklistIncomplete is the sentinel error for completion attempts where
// one or more checklist points have no answer. An explicit "na" counts as an
// answer; absence does not.
var ErrChecklistIncomplete = errors.New("checklist is incomplete")

// ChecklistIncompleteError carries the exact names of the unanswered checklist
// points so callers can render actionable feedback rather than a generic error.
type ChecklistIncompleteError struct {
	Missing []string
}

// NewChecklistIncompleteError creates a ChecklistIncompleteError listing the
// unanswered checklist point names.
func NewChecklistIncompleteError(missing []string) *ChecklistIncompleteError {
	return &ChecklistIncompleteError{Missing: missing}
}

func (e *ChecklistIncompleteError) Error() string {
	return sanitize(fmt.Sprintf("%s: missing points: %s",
		ErrChecklistIncomplete, strings.Join(e.Missing, ", ")))
}

func (e *ChecklistIncompleteError) Unwrap() error {
	return ErrChecklistIncomplete
}
