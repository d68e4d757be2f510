package orderrepo

import (
	"context"
	"errors"

	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/core/domain/model/order"
	"carcheck/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database. All columns are written in
// one statement so readers never observe a half-applied submission.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.Number)
	}

	return nil
}

// Get retrieves an order by its order number.
func (r *GormOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders in the given lifecycle status, oldest
// first.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// FindByClientEmail retrieves the most recent order booked under the given
// customer email. Kept for old confirmation links that carried the email
// instead of the order number.
func (r *GormOrderRepository) FindByClientEmail(ctx context.Context, email string) (*order.Order, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("personal_info ->> 'email' = ?", email).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
