// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and map rows into flat response models, bypassing the
// domain aggregates.
package queries

import (
	"errors"
	"time"

	"carcheck/internal/core/domain/model/kernel"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its inspection state and report.
type GetOrderQuery struct {
	number kernel.OrderNumber

	guard kernel.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order number.
func NewGetOrderQuery(number kernel.OrderNumber) (GetOrderQuery, error) {
	if err := number.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		number: number,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Number returns the order number being looked up.
func (q GetOrderQuery) Number() kernel.OrderNumber {
	return q.number
}

// GetOrderQueryResponse is the read model for one order.
type GetOrderQueryResponse struct {
	Number          string            `json:"orderNumber"`
	Status          string            `json:"status"`
	Client          ClientResponse    `json:"client"`
	Vehicle         VehicleResponse   `json:"vehicle"`
	Package         PackageResponse   `json:"package"`
	Results         map[string]string `json:"inspectionResults"`
	Observations    map[string]string `json:"categoryObservations"`
	Report          string            `json:"report,omitempty"`
	ReportReady     bool              `json:"reportReady"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// ClientResponse is the customer part of the order read model.
type ClientResponse struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// VehicleResponse is the vehicle part of the order read model.
type VehicleResponse struct {
	Description     string `json:"description"`
	VIN             string `json:"vin,omitempty"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}

// PackageResponse is the package part of the order read model.
type PackageResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
