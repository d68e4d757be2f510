package queries

import (
	"errors"
	"time"

	"carcheck/internal/core/domain/model/kernel"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves every order whose inspection has not been
// completed yet, for the inspector work list.
type GetPendingOrdersQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for uncompleted orders.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse is one work-list entry.
type GetPendingOrdersQueryResponse struct {
	Number          string    `json:"orderNumber"`
	Status          string    `json:"status"`
	ClientName      string    `json:"clientName"`
	Vehicle         string    `json:"vehicle"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	PackageName     string    `json:"packageName"`
	CreatedAt       time.Time `json:"createdAt"`
}
