package commands

import (
	"errors"

	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/core/domain/model/order"
)

var ErrSubmitInspectionCommandIsNotConstructed = errors.New(
	"SubmitInspectionCommand must be created via NewSubmitInspectionCommand constructor",
)

// SubmitInspectionCommand represents an inspector submitting checklist
// results for an order. With finalize unset the submission is a progress
// save; with finalize set it requests completion, which is rejected unless
// every checklist point has an answer.
type SubmitInspectionCommand struct { //nolint:recvcheck //using for validation
	number       kernel.OrderNumber
	results      order.Results
	observations order.Observations
	finalize     bool

	guard kernel.ConstructorGuard
}

// NewSubmitInspectionCommand creates a submission command. Every result
// value must be a known point status.
func NewSubmitInspectionCommand(
	number kernel.OrderNumber,
	results order.Results,
	observations order.Observations,
	finalize bool,
) (SubmitInspectionCommand, error) {
	if err := errors.Join(
		number.Validate(),
		results.Validate(),
	); err != nil {
		return SubmitInspectionCommand{}, err
	}

	return SubmitInspectionCommand{
		number:       number,
		results:      results,
		observations: observations,
		finalize:     finalize,
		guard:        kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitInspectionCommand) Validate() error {
	return c.guard.Validate(ErrSubmitInspectionCommandIsNotConstructed)
}

// Number returns the order number the submission targets.
func (c SubmitInspectionCommand) Number() kernel.OrderNumber {
	return c.number
}

// Results returns the submitted point results.
func (c SubmitInspectionCommand) Results() order.Results {
	return c.results
}

// Observations returns the per-category inspector notes.
func (c SubmitInspectionCommand) Observations() order.Observations {
	return c.observations
}

// Finalize reports whether the submission requests completion.
func (c SubmitInspectionCommand) Finalize() bool {
	return c.finalize
}
