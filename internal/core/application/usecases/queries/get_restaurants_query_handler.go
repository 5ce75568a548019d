package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetRestaurantsQueryHandler lists the restaurant catalog with category
// names resolved.
type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler for the catalog listing.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by restaurant id.
func (h GetRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsQuery,
) ([]GetRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			r.cover_image,
			r.address,
			r.owner_id,
			c.name
		FROM restaurants r
		LEFT JOIN categories c ON c.id = r.category_id
		ORDER BY r.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]GetRestaurantsQueryResponse, 0)
	for rows.Next() {
		var resp GetRestaurantsQueryResponse
		var categoryName sql.NullString

		err = rows.Scan(&resp.ID, &resp.Name, &resp.CoverImage, &resp.Address, &resp.OwnerID, &categoryName)
		if err != nil {
			return nil, err
		}

		if categoryName.Valid {
			name := categoryName.String
			resp.CategoryName = &name
		}
		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
