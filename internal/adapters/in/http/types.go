package http

import "carcheck/internal/core/domain/model/order"

// BookingRequest is the payload for POST /api/v1/bookings.
type BookingRequest struct {
	Client  ClientPayload  `json:"client"`
	Vehicle VehiclePayload `json:"vehicle"`
	Seller  SellerPayload  `json:"seller"`
	Package PackagePayload `json:"package"`
}

// ClientPayload carries the customer contact details of a booking.
type ClientPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// VehiclePayload carries the vehicle details and the appointment slot.
type VehiclePayload struct {
	Make            string `json:"make"`
	Model           string `json:"model"`
	Year            string `json:"year"`
	VIN             string `json:"vin"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}

// SellerPayload carries the optional seller contact details.
type SellerPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// PackagePayload identifies the selected inspection package.
type PackagePayload struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BookingResponse is the result of a created booking. NotificationWarning is
// set when the order was created but the confirmation email failed.
type BookingResponse struct {
	OrderNumber         string `json:"orderNumber"`
	CustomerNotified    bool   `json:"customerNotified"`
	NotificationWarning string `json:"notificationWarning,omitempty"`
}

// InspectionRequest is the payload for POST /api/v1/orders/:number/inspection.
type InspectionRequest struct {
	Results      map[string]string `json:"inspectionResults"`
	Observations map[string]string `json:"categoryObservations"`
	Finalize     bool              `json:"finalize"`
}

// InspectionResponse is the result of a persisted submission.
type InspectionResponse struct {
	OrderNumber         string `json:"orderNumber"`
	Status              string `json:"status"`
	ProgressPercent     int    `json:"progressPercent"`
	ReportSource        string `json:"reportSource,omitempty"`
	CustomerNotified    bool   `json:"customerNotified"`
	NotificationWarning string `json:"notificationWarning,omitempty"`
}

// ReportResponse serves the stored report text.
type ReportResponse struct {
	OrderNumber string `json:"orderNumber"`
	Report      string `json:"report"`
}

// Error is the uniform error body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// MissingPoints lists unanswered checklist points when a finalizing
	// submission is rejected.
	MissingPoints []string `json:"missingPoints,omitempty"`
}

func (r InspectionRequest) results() order.Results {
	results := make(order.Results, len(r.Results))
	for point, status := range r.Results {
		results[point] = order.PointStatus(status)
	}
	return results
}

func (r InspectionRequest) observations() order.Observations {
	if len(r.Observations) == 0 {
		return nil
	}
	observations := make(order.Observations, len(r.Observations))
	for category, note := range r.Observations {
		observations[category] = note
	}
	return observations
}
