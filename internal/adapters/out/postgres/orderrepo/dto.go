// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are stored as one row per order number; the
// structured booking details live in jsonb columns so the row mirrors the
// document shape the order aggregate was restored from historically.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/core/domain/model/order"
)

// jsonb stores a value as a jsonb document column.
type jsonb[T any] struct {
	V T
}

func (c jsonb[T]) Value() (driver.Value, error) {
	return json.Marshal(c.V)
}

func (c *jsonb[T]) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		var zero T
		c.V = zero
		return nil
	}
	return json.Unmarshal(raw, &c.V)
}

func (jsonb[T]) GormDataType() string {
	return "jsonb"
}

// vehicleColumn stores vehicle info as jsonb. Rows written by early versions
// of the system hold a plain string ("Make Model Year") instead of an object;
// Scan normalizes that legacy shape so the rest of the codebase only ever
// sees the structured form.
type vehicleColumn struct {
	V order.VehicleInfo
}

func (c vehicleColumn) Value() (driver.Value, error) {
	return json.Marshal(c.V)
}

func (c *vehicleColumn) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		c.V = order.VehicleInfo{}
		return nil
	}

	var legacy string
	if json.Unmarshal(raw, &legacy) == nil {
		c.V = order.ParseLegacyVehicle(legacy)
		return nil
	}
	return json.Unmarshal(raw, &c.V)
}

func (vehicleColumn) GormDataType() string {
	return "jsonb"
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// OrderDTO represents the database row for an order aggregate. The order
// number is the primary key; status is indexed for the pending-orders and
// reminder queries.
type OrderDTO struct {
	Number               string                       `gorm:"column:order_number;primaryKey"`
	Status               string                       `gorm:"index"`
	PersonalInfo         jsonb[order.PersonalInfo]    `gorm:"column:personal_info;type:jsonb"`
	VehicleInfo          vehicleColumn                `gorm:"column:vehicle_info;type:jsonb"`
	SellerInfo           jsonb[order.SellerInfo]      `gorm:"column:seller_info;type:jsonb"`
	SelectedPackage      jsonb[order.SelectedPackage] `gorm:"column:selected_package;type:jsonb"`
	InspectionResults    jsonb[order.Results]         `gorm:"column:inspection_results;type:jsonb"`
	CategoryObservations jsonb[order.Observations]    `gorm:"column:category_observations;type:jsonb"`
	Report               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		Number:               aggregate.Number().String(),
		Status:               aggregate.Status().String(),
		PersonalInfo:         jsonb[order.PersonalInfo]{V: aggregate.PersonalInfo()},
		VehicleInfo:          vehicleColumn{V: aggregate.VehicleInfo()},
		SellerInfo:           jsonb[order.SellerInfo]{V: aggregate.SellerInfo()},
		SelectedPackage:      jsonb[order.SelectedPackage]{V: aggregate.SelectedPackage()},
		InspectionResults:    jsonb[order.Results]{V: aggregate.InspectionResults()},
		CategoryObservations: jsonb[order.Observations]{V: aggregate.CategoryObservations()},
		Report:               aggregate.Report(),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		number,
		status,
		dto.PersonalInfo.V,
		dto.VehicleInfo.V,
		dto.SellerInfo.V,
		dto.SelectedPackage.V,
		dto.InspectionResults.V,
		dto.CategoryObservations.V,
		dto.Report,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
