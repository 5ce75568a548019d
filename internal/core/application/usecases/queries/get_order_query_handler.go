package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database and
// enforces participant visibility before returning it.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the read. The restaurant owner is joined in so the
// visibility rule can run without a second round trip; the order aggregate
// itself decides who counts as a participant.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	loaded, items, err := h.load(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if !loaded.VisibleTo(query.Actor()) {
		return GetOrderQueryResponse{}, errs.NewPermissionDeniedError("view order")
	}

	return GetOrderQueryResponse{
		ID:           loaded.ID(),
		Status:       loaded.Status().String(),
		Total:        loaded.Total(),
		RestaurantID: loaded.RestaurantID(),
		CustomerID:   loaded.CustomerID(),
		DriverID:     loaded.DriverID(),
		Items:        items,
	}, nil
}

func (h GetOrderQueryHandler) load(
	ctx context.Context,
	orderID int64,
) (*order.Order, []GetOrderQueryItemResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.driver_id,
			o.restaurant_id,
			r.owner_id,
			o.total,
			o.status
		FROM orders o
		LEFT JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, orderID).Row()

	var id int64
	var customerID, driverID, restaurantID, ownerID, total sql.NullInt64
	var status string

	err := row.Scan(&id, &customerID, &driverID, &restaurantID, &ownerID, &total, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, errs.NewObjectNotFoundError("orderID", orderID)
		}
		return nil, nil, err
	}

	items, domainItems, err := h.loadItems(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	parsedStatus, err := order.ParseStatus(status)
	if err != nil {
		return nil, nil, err
	}

	loaded, err := order.RestoreOrder(
		id,
		nullableID(customerID),
		nullableID(driverID),
		nullableID(restaurantID),
		nullableID(ownerID),
		domainItems,
		nullableID(total),
		parsedStatus,
	)
	if err != nil {
		return nil, nil, err
	}

	return loaded, items, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID int64,
) ([]GetOrderQueryItemResponse, []order.Item, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, dish_id, options
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	items := make([]GetOrderQueryItemResponse, 0)
	domainItems := make([]order.Item, 0)
	for rows.Next() {
		var item GetOrderQueryItemResponse
		var rawOptions sql.NullString

		if err = rows.Scan(&item.ID, &item.DishID, &rawOptions); err != nil {
			return nil, nil, err
		}

		if rawOptions.Valid && rawOptions.String != "" {
			if err = json.Unmarshal([]byte(rawOptions.String), &item.Options); err != nil {
				return nil, nil, err
			}
		}

		domainItem, itemErr := order.RestoreItem(item.ID, item.DishID, item.Options)
		if itemErr != nil {
			return nil, nil, itemErr
		}

		items = append(items, item)
		domainItems = append(domainItems, domainItem)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return items, domainItems, nil
}
