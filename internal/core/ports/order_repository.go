package ports

import (
	"context"

	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are keyed by order number; lookups by number are direct key access,
// never a scan.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate as a single
	// logical update. Either the full update lands or none of it does.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its order number.
	Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetAllInStatus retrieves all orders in the given lifecycle status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// FindByClientEmail retrieves the most recent order booked under the given
	// customer email. Legacy fallback lookup only: old confirmation links
	// carried the email instead of the order number. New code resolves orders
	// by number.
	FindByClientEmail(ctx context.Context, email string) (*order.Order, error)
}
