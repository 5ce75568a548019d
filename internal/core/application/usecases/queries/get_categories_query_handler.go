package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCategoriesQueryHandler lists categories with how many restaurants each
// one holds.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoriesQueryHandler creates a handler for the category listing.
func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by category id.
func (h GetCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetCategoriesQuery,
) ([]GetCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.slug,
			COUNT(r.id)
		FROM categories c
		LEFT JOIN restaurants r ON r.category_id = c.id
		GROUP BY c.id, c.name, c.slug
		ORDER BY c.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]GetCategoriesQueryResponse, 0)
	for rows.Next() {
		var resp GetCategoriesQueryResponse
		if err = rows.Scan(&resp.ID, &resp.Name, &resp.Slug, &resp.RestaurantCount); err != nil {
			return nil, err
		}
		categories = append(categories, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
