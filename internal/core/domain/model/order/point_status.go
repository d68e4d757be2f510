package order

import (
	"fmt"

	"carcheck/internal/pkg/errs"
)

// PointStatus is the inspector's answer for a single checklist point.
type PointStatus string

const (
	// PointOK marks a point with no findings.
	PointOK PointStatus = "ok"

	// PointAttention marks a point with a medium-term maintenance finding.
	PointAttention PointStatus = "attention"

	// PointFail marks a point with a critical finding.
	PointFail PointStatus = "fail"

	// PointNA marks a point that does not apply to this vehicle.
	// An explicit na is an accepted terminal answer; a missing entry is not.
	PointNA PointStatus = "na"
)

// Validate checks that the answer is one of the recognized point statuses.
func (p PointStatus) Validate() error {
	switch p {
	case PointOK, PointAttention, PointFail, PointNA:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("pointStatus",
			fmt.Errorf("%q is not a valid point status", string(p)))
	}
}

// Results maps canonical checklist point names to the inspector's answers.
// Keys come from the checklist catalog; insertion order is irrelevant.
type Results map[string]PointStatus

// Validate checks every key and answer in the result set.
func (r Results) Validate() error {
	for name, status := range r {
		if name == "" {
			return errs.NewValueIsRequiredError("checklist point name")
		}
		if err := status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Observations maps a category id to the inspector's free-text note for that
// category. Optional; insertion order is irrelevant.
type Observations map[string]string
