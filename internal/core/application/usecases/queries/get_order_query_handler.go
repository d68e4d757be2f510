package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"carcheck/internal/core/domain/model/order"
	"carcheck/internal/pkg/errs"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const (
	// orderCacheTTL keeps report polling cheap: clients refresh the order
	// page while waiting for the report, and a just-expired entry is refilled
	// by the next poll.
	orderCacheTTL = 15 * time.Second

	orderCacheCleanup = 5 * time.Minute
)

// GetOrderQueryHandler retrieves one order as a flat read model. Responses
// are cached briefly per order number; writers invalidate the entry after a
// submission lands.
type GetOrderQueryHandler struct {
	db    *gorm.DB
	cache *gocache.Cache
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:    db,
		cache: gocache.New(orderCacheTTL, orderCacheCleanup),
	}
}

// Invalidate drops the cached read model for the given order number. Called
// after any write to that order.
func (h GetOrderQueryHandler) Invalidate(number string) {
	h.cache.Delete(number)
}

// Handle executes the lookup.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	key := query.Number().String()
	if cached, found := h.cache.Get(key); found {
		return cached.(GetOrderQueryResponse), nil
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
		WHERE order_number = ?
	`, key).Row()

	response, err := scanOrderRow(row, key)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	h.cache.Set(key, response, gocache.DefaultExpiration)
	return response, nil
}

// scanOrderRow maps one orders row into the read model, normalizing the
// legacy vehicle shape on the way.
func scanOrderRow(row *sql.Row, key string) (GetOrderQueryResponse, error) {
	var (
		response     GetOrderQueryResponse
		personal     []byte
		vehicle      []byte
		pkg          []byte
		results      []byte
		observations []byte
	)

	err := row.Scan(
		&response.Number,
		&response.Status,
		&personal,
		&vehicle,
		&pkg,
		&results,
		&observations,
		&response.Report,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", key)
		}
		return GetOrderQueryResponse{}, err
	}

	var client order.PersonalInfo
	if err = json.Unmarshal(personal, &client); err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Client = ClientResponse{
		FullName: client.FullName,
		Email:    client.Email,
		Phone:    client.Phone,
	}

	vehicleInfo, err := decodeVehicle(vehicle)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Vehicle = VehicleResponse{
		Description:     vehicleInfo.Description(),
		VIN:             vehicleInfo.VIN,
		AppointmentDate: vehicleInfo.AppointmentDate,
		AppointmentTime: vehicleInfo.AppointmentTime,
	}

	var selected order.SelectedPackage
	if err = json.Unmarshal(pkg, &selected); err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Package = PackageResponse{ID: selected.ID, Name: selected.Name, Price: selected.Price}

	if len(results) > 0 {
		if err = json.Unmarshal(results, &response.Results); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}
	if len(observations) > 0 {
		if err = json.Unmarshal(observations, &response.Observations); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	response.ReportReady = response.Status == order.Completed.String() && response.Report != ""
	return response, nil
}

func decodeVehicle(raw []byte) (order.VehicleInfo, error) {
	var legacy string
	if json.Unmarshal(raw, &legacy) == nil {
		return order.ParseLegacyVehicle(legacy), nil
	}

	var vehicle order.VehicleInfo
	if err := json.Unmarshal(raw, &vehicle); err != nil {
		return order.VehicleInfo{}, err
	}
	return vehicle, nil
}
