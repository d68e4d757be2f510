package kernel

import (
	"fmt"
	"strings"
	"time"

	"carcheck/internal/pkg/errs"
)

// orderNumberPrefix is the fixed prefix of every booking identifier.
// Numbers are assigned at creation and never change afterwards.
const orderNumberPrefix = "CC-"

// ErrOrderNumberIsNotConstructed indicates that an OrderNumber was not created
// through NewOrderNumber or OrderNumberFromString.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewOrderNumber or OrderNumberFromString")

// OrderNumber is the human-facing, globally unique identifier of a booking.
// It is also the persistence key: storing an order under an existing number
// overwrites the previous record rather than duplicating it.
//
// OrderNumber is a value object; it is immutable after construction and
// compared by value.
type OrderNumber struct {
	value string

	guard ConstructorGuard
}

// NewOrderNumber generates a fresh order number from the current time.
// The millisecond timestamp keeps numbers unique under realistic booking rates
// and matches the historical numbering of existing records.
func NewOrderNumber() OrderNumber {
	return OrderNumber{
		value: fmt.Sprintf("%s%d", orderNumberPrefix, time.Now().UnixMilli()),
		guard: NewConstructorGuard(),
	}
}

// OrderNumberFromString reconstructs an OrderNumber from its string form.
// The value must carry the fixed prefix and a non-empty suffix.
func OrderNumberFromString(value string) (OrderNumber, error) {
	if value == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if !strings.HasPrefix(value, orderNumberPrefix) || len(value) <= len(orderNumberPrefix) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match the %q<suffix> format", value, orderNumberPrefix))
	}

	return OrderNumber{
		value: value,
		guard: NewConstructorGuard(),
	}, nil
}

// Validate ensures the OrderNumber was created through a constructor.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// String returns the order number in its wire and persistence form.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}
