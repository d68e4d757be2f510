package queries

import (
	"context"
	"errors"

	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/pkg/errs"
)

var ErrGetOrderByEmailQueryIsNotConstructed = errors.New(
	"GetOrderByEmailQuery must be created via NewGetOrderByEmailQuery constructor",
)

// GetOrderByEmailQuery retrieves the most recent order booked under a
// customer email. Legacy lookup only: old confirmation links carried the
// email instead of the order number.
type GetOrderByEmailQuery struct {
	email string

	guard kernel.ConstructorGuard
}

// NewGetOrderByEmailQuery creates a legacy lookup query.
func NewGetOrderByEmailQuery(email string) (GetOrderByEmailQuery, error) {
	if email == "" {
		return GetOrderByEmailQuery{}, errs.NewValueIsRequiredError("email")
	}

	return GetOrderByEmailQuery{
		email: email,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByEmailQueryIsNotConstructed)
}

// Email returns the customer email being looked up.
func (q GetOrderByEmailQuery) Email() string {
	return q.email
}

// HandleByEmail resolves the newest order for the email. Results are not
// cached; the legacy path is too rare to be worth an entry.
func (h GetOrderQueryHandler) HandleByEmail(ctx context.Context, query GetOrderByEmailQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			status,
			personal_info,
			vehicle_info,
			selected_package,
			inspection_results,
			category_observations,
			report,
			created_at,
			updated_at
		FROM orders
		WHERE personal_info ->> 'email' = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, query.Email()).Row()

	return scanOrderRow(row, query.Email())
}
