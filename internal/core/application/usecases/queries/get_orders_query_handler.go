package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database, scoped to what the
// actor's role lets them see.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by order id.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, args := roleScope(query.Actor())
	sqlText := `
		SELECT
			id,
			customer_id,
			driver_id,
			restaurant_id,
			total,
			status,
			created_at
		FROM orders
		WHERE ` + scope
	if query.Status() != nil {
		sqlText += ` AND status = ?`
		args = append(args, query.Status().String())
	}
	sqlText += ` ORDER BY id`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var customerID, driverID, restaurantID, total sql.NullInt64
		var createdAt time.Time

		err = rows.Scan(&resp.ID, &customerID, &driverID, &restaurantID, &total, &resp.Status, &createdAt)
		if err != nil {
			return nil, err
		}

		resp.CustomerID = nullableID(customerID)
		resp.DriverID = nullableID(driverID)
		resp.RestaurantID = nullableID(restaurantID)
		resp.Total = nullableID(total)
		resp.CreatedAt = createdAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// roleScope builds the WHERE clause matching what the actor's role may see.
// Owners see orders through the restaurants they own, not through a direct
// column on the order.
func roleScope(actor *user.User) (string, []any) {
	switch actor.Role() {
	case user.Owner:
		return `restaurant_id IN (SELECT id FROM restaurants WHERE owner_id = ?)`, []any{actor.ID()}
	case user.Delivery:
		return `driver_id = ?`, []any{actor.ID()}
	default:
		return `customer_id = ?`, []any{actor.ID()}
	}
}

func nullableID(value sql.NullInt64) *int64 {
	if !value.Valid {
		return nil
	}
	v := value.Int64
	return &v
}
