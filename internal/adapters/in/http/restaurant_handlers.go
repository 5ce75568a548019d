package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/commands"
	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/queries"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/restaurant"
)

type createRestaurantRequest struct {
	Name         string `json:"name"`
	CoverImage   string `json:"coverImage"`
	Address      string `json:"address"`
	CategoryName string `json:"categoryName"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var req createRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateRestaurantCommand(
		actorFrom(ctx), req.Name, req.CoverImage, req.Address, req.CategoryName)
	if err != nil {
		return respondError(ctx, err)
	}

	restaurantID, err := s.createRestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondCreated(ctx, createdResponse{ID: restaurantID})
}

type createDishRequest struct {
	Name        string              `json:"name"`
	Price       int64               `json:"price"`
	Description string              `json:"description"`
	Photo       string              `json:"photo"`
	Options     []restaurant.Option `json:"options"`
}

// CreateDish handles POST /api/v1/restaurants/:id/dishes.
func (s *Server) CreateDish(ctx echo.Context) error {
	restaurantID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	var req createDishRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateDishCommand(
		actorFrom(ctx), restaurantID, req.Name, req.Price, req.Description, req.Photo, req.Options)
	if err != nil {
		return respondError(ctx, err)
	}

	dishID, err := s.createDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondCreated(ctx, createdResponse{ID: dishID})
}

type editRestaurantRequest struct {
	Name         *string `json:"name"`
	CoverImage   *string `json:"coverImage"`
	Address      *string `json:"address"`
	CategoryName *string `json:"categoryName"`
}

// EditRestaurant handles PATCH /api/v1/restaurants/:id.
func (s *Server) EditRestaurant(ctx echo.Context) error {
	restaurantID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	var req editRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewEditRestaurantCommand(
		actorFrom(ctx), restaurantID, req.Name, req.CoverImage, req.Address, req.CategoryName)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.editRestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/:id.
func (s *Server) DeleteRestaurant(ctx echo.Context) error {
	restaurantID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	cmd, err := commands.NewDeleteRestaurantCommand(actorFrom(ctx), restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteRestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

type restaurantResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	CoverImage   string  `json:"coverImage"`
	Address      string  `json:"address"`
	OwnerID      int64   `json:"ownerId"`
	CategoryName *string `json:"categoryName,omitempty"`
}

// GetRestaurants handles GET /api/v1/restaurants.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	listing, err := s.getRestaurantsHandler.Handle(ctx.Request().Context(), queries.NewGetRestaurantsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]restaurantResponse, len(listing))
	for i, item := range listing {
		response[i] = restaurantResponse{
			ID:           item.ID,
			Name:         item.Name,
			CoverImage:   item.CoverImage,
			Address:      item.Address,
			OwnerID:      item.OwnerID,
			CategoryName: item.CategoryName,
		}
	}

	return respondOK(ctx, response)
}
