package order

import (
	"errors"
	"time"

	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrReportRequiresCompletion is returned when a report is attached to an
	// order that is not completed, or a completion carries no report.
	ErrReportRequiresCompletion = errors.New("a report may only exist on a completed order")
)

// Order represents a vehicle inspection booking. It is the sole aggregate root
// and manages the order lifecycle from booking through checklist submission to
// report delivery.
//
// Order follows these invariants:
//   - Must have a valid order number, assigned at creation and immutable
//   - Booking-time details (personal, vehicle, seller, package) never change
//     after creation
//   - Status transitions follow the monotonic pending -> in_progress ->
//     completed progression
//   - A non-empty report implies completed status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	number kernel.OrderNumber
	status Status

	personalInfo    PersonalInfo
	vehicleInfo     VehicleInfo
	sellerInfo      SellerInfo
	selectedPackage SelectedPackage

	inspectionResults    Results
	categoryObservations Observations
	report               string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new pending Order from booking-time data. This is how the
// booking flow creates orders; checklist data and the report arrive later
// through the lifecycle methods.
func NewOrder(
	number kernel.OrderNumber,
	personal PersonalInfo,
	vehicle VehicleInfo,
	seller SellerInfo,
	pkg SelectedPackage,
) (*Order, error) {
	if err := errors.Join(
		number.Validate(),
		personal.Validate(),
		vehicle.Validate(),
		pkg.Validate(),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Order{
		number:          number,
		status:          Pending,
		personalInfo:    personal,
		vehicleInfo:     vehicle,
		sellerInfo:      seller,
		selectedPackage: pkg,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. It revalidates the
// cross-field invariants so corrupt records are rejected at the store edge
// instead of leaking into business logic.
func RestoreOrder(
	number kernel.OrderNumber,
	status Status,
	personal PersonalInfo,
	vehicle VehicleInfo,
	seller SellerInfo,
	pkg SelectedPackage,
	results Results,
	observations Observations,
	report string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		number.Validate(),
		status.Validate(),
		results.Validate(),
	); err != nil {
		return nil, err
	}

	if report != "" && status != Completed {
		return nil, ErrReportRequiresCompletion
	}

	return &Order{
		number:               number,
		status:               status,
		personalInfo:         personal,
		vehicleInfo:          vehicle,
		sellerInfo:           seller,
		selectedPackage:      pkg,
		inspectionResults:    results,
		categoryObservations: observations,
		report:               report,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
		isConstructed:        true,
	}, nil
}

// Validate ensures the Order instance was properly constructed and its
// report/status invariant holds.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	if o.report != "" && o.status != Completed {
		return ErrReportRequiresCompletion
	}
	return nil
}

// IsEqual compares two orders by order number.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number.IsEqual(other.number)
}

// Number returns the order's unique booking identifier.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PersonalInfo returns the customer's booking-time contact details.
func (o *Order) PersonalInfo() PersonalInfo {
	return o.personalInfo
}

// VehicleInfo returns the booking-time vehicle details.
func (o *Order) VehicleInfo() VehicleInfo {
	return o.vehicleInfo
}

// SellerInfo returns the seller's contact details.
func (o *Order) SellerInfo() SellerInfo {
	return o.sellerInfo
}

// SelectedPackage returns the inspection package chosen at booking time.
func (o *Order) SelectedPackage() SelectedPackage {
	return o.selectedPackage
}

// InspectionResults returns the checklist answers submitted so far.
func (o *Order) InspectionResults() Results {
	return o.inspectionResults
}

// CategoryObservations returns the inspector's free-text notes per category.
func (o *Order) CategoryObservations() Observations {
	return o.categoryObservations
}

// Report returns the synthesized report text. Empty unless the order is completed.
func (o *Order) Report() string {
	return o.report
}

// CreatedAt returns the booking creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// SaveProgress records a partial checklist submission. The order moves to (or
// stays in) InProgress; completed orders reject partial saves because that
// would reverse a terminal state.
func (o *Order) SaveProgress(results Results, observations Observations) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := results.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Progress()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.inspectionResults = results
	o.categoryObservations = observations
	o.updatedAt = time.Now().UTC()
	return nil
}

// Complete records a full checklist submission together with the synthesized
// report. Completeness against the catalog is the caller's responsibility
// (the aggregate has no catalog); the aggregate enforces that a completion
// always carries a report and that answers are well-formed.
//
// Calling Complete on an already completed order is allowed and regenerates
// the report without a status change.
func (o *Order) Complete(results Results, observations Observations, report string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := results.Validate(); err != nil {
		return err
	}
	if report == "" {
		return errs.NewValueIsRequiredError("report")
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.inspectionResults = results
	o.categoryObservations = observations
	o.report = report
	o.updatedAt = time.Now().UTC()
	return nil
}
