package commands

import (
	"errors"

	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/core/domain/model/order"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a request to book a vehicle inspection
// appointment. Carries the customer's contact details, the vehicle and its
// seller, and the selected inspection package.
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	personal        order.PersonalInfo
	vehicle         order.VehicleInfo
	seller          order.SellerInfo
	selectedPackage order.SelectedPackage

	guard kernel.ConstructorGuard
}

// NewCreateBookingCommand creates a booking command. Seller details are
// optional; customer contact, vehicle identity and the package are not.
func NewCreateBookingCommand(
	personal order.PersonalInfo,
	vehicle order.VehicleInfo,
	seller order.SellerInfo,
	selectedPackage order.SelectedPackage,
) (CreateBookingCommand, error) {
	if err := errors.Join(
		personal.Validate(),
		vehicle.Validate(),
		selectedPackage.Validate(),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return CreateBookingCommand{
		personal:        personal,
		vehicle:         vehicle,
		seller:          seller,
		selectedPackage: selectedPackage,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// PersonalInfo returns the customer's contact details.
func (c CreateBookingCommand) PersonalInfo() order.PersonalInfo {
	return c.personal
}

// VehicleInfo returns the vehicle details including the appointment slot.
func (c CreateBookingCommand) VehicleInfo() order.VehicleInfo {
	return c.vehicle
}

// SellerInfo returns the seller's contact details.
func (c CreateBookingCommand) SellerInfo() order.SellerInfo {
	return c.seller
}

// SelectedPackage returns the chosen inspection package.
func (c CreateBookingCommand) SelectedPackage() order.SelectedPackage {
	return c.selectedPackage
}
