package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/commands"
	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/queries"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
)

type orderItemRequest struct {
	DishID  int64              `json:"dishId"`
	Options []order.ItemOption `json:"options"`
}

type createOrderRequest struct {
	RestaurantID int64              `json:"restaurantId"`
	Items        []orderItemRequest `json:"items"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	items := make([]commands.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.OrderItemInput{DishID: item.DishID, Options: item.Options}
	}

	cmd, err := commands.NewCreateOrderCommand(actorFrom(ctx), req.RestaurantID, items)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondCreated(ctx, createdResponse{ID: orderID})
}

type editOrderRequest struct {
	Status string `json:"status"`
}

// EditOrder handles PATCH /api/v1/orders/:id.
func (s *Server) EditOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req editOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewEditOrderCommand(actorFrom(ctx), orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.editOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

// TakeOrder handles POST /api/v1/orders/:id/take.
func (s *Server) TakeOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewTakeOrderCommand(actorFrom(ctx), orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.takeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

type orderItemResponse struct {
	ID      int64              `json:"id"`
	DishID  int64              `json:"dishId"`
	Options []order.ItemOption `json:"options,omitempty"`
}

type orderResponse struct {
	ID           int64               `json:"id"`
	Status       string              `json:"status"`
	Total        *int64              `json:"total,omitempty"`
	RestaurantID *int64              `json:"restaurantId,omitempty"`
	CustomerID   *int64              `json:"customerId,omitempty"`
	DriverID     *int64              `json:"driverId,omitempty"`
	CreatedAt    *time.Time          `json:"createdAt,omitempty"`
	Items        []orderItemResponse `json:"items,omitempty"`
}

// GetOrders handles GET /api/v1/orders. An optional status query parameter
// narrows the listing.
func (s *Server) GetOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(actorFrom(ctx), status)
	if err != nil {
		return respondError(ctx, err)
	}

	listing, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderResponse, len(listing))
	for i, item := range listing {
		createdAt := item.CreatedAt
		response[i] = orderResponse{
			ID:           item.ID,
			Status:       item.Status,
			Total:        item.Total,
			RestaurantID: item.RestaurantID,
			CustomerID:   item.CustomerID,
			DriverID:     item.DriverID,
			CreatedAt:    &createdAt,
		}
	}

	return respondOK(ctx, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(actorFrom(ctx), orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]orderItemResponse, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = orderItemResponse{ID: item.ID, DishID: item.DishID, Options: item.Options}
	}

	return respondOK(ctx, orderResponse{
		ID:           detail.ID,
		Status:       detail.Status,
		Total:        detail.Total,
		RestaurantID: detail.RestaurantID,
		CustomerID:   detail.CustomerID,
		DriverID:     detail.DriverID,
		Items:        items,
	})
}
