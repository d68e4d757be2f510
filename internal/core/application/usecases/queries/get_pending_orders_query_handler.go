package queries

import (
	"context"

	"carcheck/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler retrieves the inspector work list straight
// from the database, oldest booking first.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for work-list queries.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders in pending or in_progress status are
// returned; completed inspections are excluded.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			status,
			personal_info ->> 'fullName',
			vehicle_info,
			selected_package ->> 'name',
			created_at
		FROM orders
		WHERE status != ?
		ORDER BY created_at
	`, order.Completed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetPendingOrdersQueryResponse
		var vehicleRaw []byte

		err = rows.Scan(
			&entry.Number,
			&entry.Status,
			&entry.ClientName,
			&vehicleRaw,
			&entry.PackageName,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		vehicle, vehicleErr := decodeVehicle(vehicleRaw)
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		entry.Vehicle = vehicle.Description()
		entry.AppointmentDate = vehicle.AppointmentDate
		entry.AppointmentTime = vehicle.AppointmentTime

		orders = append(orders, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
