package http

import (
	"github.com/labstack/echo/v4"

	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/queries"
)

type categoryResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	RestaurantCount int64  `json:"restaurantCount"`
}

// GetCategories handles GET /api/v1/categories.
func (s *Server) GetCategories(ctx echo.Context) error {
	listing, err := s.getCategoriesHandler.Handle(ctx.Request().Context(), queries.NewGetCategoriesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]categoryResponse, len(listing))
	for i, item := range listing {
		response[i] = categoryResponse{
			ID:              item.ID,
			Name:            item.Name,
			Slug:            item.Slug,
			RestaurantCount: item.RestaurantCount,
		}
	}

	return respondOK(ctx, response)
}

type categoryRestaurantResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CoverImage string `json:"coverImage"`
	Address    string `json:"address"`
	OwnerID    int64  `json:"ownerId"`
}

type categoryDetailResponse struct {
	ID          int64                        `json:"id"`
	Name        string                       `json:"name"`
	Slug        string                       `json:"slug"`
	Restaurants []categoryRestaurantResponse `json:"restaurants"`
}

// GetCategory handles GET /api/v1/categories/:slug.
func (s *Server) GetCategory(ctx echo.Context) error {
	query, err := queries.NewGetCategoryQuery(ctx.Param("slug"))
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getCategoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	restaurants := make([]categoryRestaurantResponse, len(detail.Restaurants))
	for i, item := range detail.Restaurants {
		restaurants[i] = categoryRestaurantResponse{
			ID:         item.ID,
			Name:       item.Name,
			CoverImage: item.CoverImage,
			Address:    item.Address,
			OwnerID:    item.OwnerID,
		}
	}

	return respondOK(ctx, categoryDetailResponse{
		ID:          detail.ID,
		Name:        detail.Name,
		Slug:        detail.Slug,
		Restaurants: restaurants,
	})
}
