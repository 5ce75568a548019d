package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCategoryQueryHandler resolves one category by slug together with the
// restaurants filed under it.
type GetCategoryQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoryQueryHandler creates a handler for the category lookup.
func NewGetCategoryQueryHandler(db *gorm.DB) GetCategoryQueryHandler {
	return GetCategoryQueryHandler{db: db}
}

// Handle executes the lookup. An unknown slug is a not-found error.
// Restaurants are sorted by id.
func (h GetCategoryQueryHandler) Handle(
	ctx context.Context,
	query GetCategoryQuery,
) (GetCategoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCategoryQueryResponse{}, err
	}

	var resp GetCategoryQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, slug
		FROM categories
		WHERE slug = ?
	`, query.Slug()).Row()

	if err := row.Scan(&resp.ID, &resp.Name, &resp.Slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCategoryQueryResponse{}, errs.NewObjectNotFoundError("slug", query.Slug())
		}
		return GetCategoryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, cover_image, address, owner_id
		FROM restaurants
		WHERE category_id = ?
		ORDER BY id
	`, resp.ID).Rows()
	if err != nil {
		return GetCategoryQueryResponse{}, err
	}
	defer rows.Close()

	resp.Restaurants = make([]CategoryRestaurant, 0)
	for rows.Next() {
		var rest CategoryRestaurant
		err = rows.Scan(&rest.ID, &rest.Name, &rest.CoverImage, &rest.Address, &rest.OwnerID)
		if err != nil {
			return GetCategoryQueryResponse{}, err
		}
		resp.Restaurants = append(resp.Restaurants, rest)
	}

	if err = rows.Err(); err != nil {
		return GetCategoryQueryResponse{}, err
	}

	return resp, nil
}
