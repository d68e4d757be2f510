package order

import (
	"fmt"

	"carcheck/internal/pkg/errs"
)

// Status represents the lifecycle state of an inspection order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> InProgress ──> Completed ──┐
//	          │         │                     │
//	          └─────────┘              (report regeneration,
//	     (partial checklist saves)      status unchanged)
//
// Transitions are monotonic: no transition ever moves a completed order
// back to an earlier state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned by the booking flow.
	// Orders in this status are waiting for the inspector to start work.
	Pending

	// InProgress indicates a saved-but-incomplete checklist.
	// The inspector has submitted partial results and may continue later.
	InProgress

	// Completed indicates every checklist point has been answered and the
	// report has been produced. Completed is terminal; resubmission may
	// regenerate the report but the status never changes again.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for unrecognized values so corrupt records fail loudly
// instead of silently resetting an order's lifecycle.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, InProgress, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted and wire form of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Progress transitions the status to InProgress for a partial checklist save.
//
// Valid transitions:
//   - Pending -> InProgress (first partial save)
//   - InProgress -> InProgress (further partial saves)
//
// Invalid transitions:
//   - Completed -> InProgress (would reverse a terminal state)
//   - Unknown -> InProgress (invalid initial state)
func (s Status) Progress() (Status, error) {
	if s != Pending && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to save progress from", s))
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Pending -> Completed (full checklist in a single submission)
//   - InProgress -> Completed (checklist finished after partial saves)
//   - Completed -> Completed (resubmission regenerating the report)
func (s Status) Complete() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Completed, nil
}
