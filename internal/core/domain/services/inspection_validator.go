package services

import (
	"math"

	"carcheck/internal/core/domain/model/checklist"
	"carcheck/internal/core/domain/model/order"
)

// Validation is the outcome of checking a result set against the checklist
// catalog.
type Validation struct {
	// Complete is true iff every catalog point has an answer. This value gates
	// the transition to completed status.
	Complete bool

	// Missing lists the exact catalog point names without an answer, in
	// catalog order. An explicit na counts as answered; absence does not.
	Missing []string

	// ProgressPercent is 100 * answered / total points, rounded to the
	// nearest integer. The denominator is the fixed catalog total (not the
	// total minus na points) so the metric is stable as points get toggled
	// to na and back.
	ProgressPercent int
}

// InspectionValidator decides inspection completeness. It is the only place
// this decision is made; everything else (status transitions, report
// synthesis, notifications) trusts its verdict.
//
// Validate is a pure function over its inputs: no I/O, deterministic,
// referentially transparent.
type InspectionValidator struct{}

// NewInspectionValidator creates a new InspectionValidator instance.
func NewInspectionValidator() InspectionValidator {
	return InspectionValidator{}
}

// Validate checks the inspector's answers against the catalog.
// Answers for points the catalog does not know are ignored; they neither
// count toward progress nor block completion.
func (InspectionValidator) Validate(catalog checklist.Catalog, results order.Results) Validation {
	total := catalog.TotalPoints()
	if total == 0 {
		return Validation{Complete: true, Missing: []string{}, ProgressPercent: 100}
	}

	missing := make([]string, 0)
	answered := 0
	for _, point := range catalog.PointNames() {
		if _, ok := results[point]; ok {
			answered++
		} else {
			missing = append(missing, point)
		}
	}

	return Validation{
		Complete:        len(missing) == 0,
		Missing:         missing,
		ProgressPercent: int(math.Round(100 * float64(answered) / float64(total))),
	}
}
