package order

import (
	"strings"

	"carcheck/internal/pkg/errs"
)

// PersonalInfo holds the customer's booking-time contact details.
// Owned by the booking flow; read-only to the lifecycle controller.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Validate checks the fields the pipeline depends on: the customer name for
// message composition and the email as the customer notification recipient.
func (p PersonalInfo) Validate() error {
	if p.FullName == "" {
		return errs.NewValueIsRequiredError("personalInfo.fullName")
	}
	if p.Email == "" {
		return errs.NewValueIsRequiredError("personalInfo.email")
	}
	return nil
}

// VehicleInfo holds the booking-time vehicle details, including the scheduled
// appointment slot chosen by the customer.
type VehicleInfo struct {
	Make            string `json:"make"`
	Model           string `json:"model"`
	Year            string `json:"year"`
	VIN             string `json:"vin"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}

// Validate checks the minimum vehicle identity used in reports and messages.
func (v VehicleInfo) Validate() error {
	if v.Make == "" {
		return errs.NewValueIsRequiredError("vehicleInfo.make")
	}
	if v.Model == "" {
		return errs.NewValueIsRequiredError("vehicleInfo.model")
	}
	return nil
}

// Description returns the "Make Model (Year)" form used in reports and
// notification subjects.
func (v VehicleInfo) Description() string {
	if v.Year == "" {
		return v.Make + " " + v.Model
	}
	return v.Make + " " + v.Model + " (" + v.Year + ")"
}

// ParseLegacyVehicle rebuilds VehicleInfo from the free-form "Make Model
// Year" string early bookings stored: the first word is the make, a trailing
// four-digit word is the year, and everything in between is the model.
func ParseLegacyVehicle(description string) VehicleInfo {
	words := strings.Fields(description)
	if len(words) == 0 {
		return VehicleInfo{}
	}

	vehicle := VehicleInfo{Make: words[0]}
	rest := words[1:]
	if len(rest) > 0 && isLegacyYear(rest[len(rest)-1]) {
		vehicle.Year = rest[len(rest)-1]
		rest = rest[:len(rest)-1]
	}
	vehicle.Model = strings.Join(rest, " ")
	return vehicle
}

func isLegacyYear(word string) bool {
	if len(word) != 4 {
		return false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SellerInfo holds the seller's contact details. Only the inspector copy of
// notifications carries these; the customer copy omits them.
type SellerInfo struct {
	Name  string `json:"sellerName"`
	Phone string `json:"sellerPhone"`
}

// SelectedPackage identifies the inspection package chosen at booking time.
type SelectedPackage struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Validate checks that a package was actually selected.
func (p SelectedPackage) Validate() error {
	if p.Name == "" {
		return errs.NewValueIsRequiredError("selectedPackage.name")
	}
	return nil
}
