package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
)

// StreamPendingOrders handles GET /api/v1/events/pending-orders. Owners
// receive the orders placed at their own restaurants.
func (s *Server) StreamPendingOrders(ctx echo.Context) error {
	ownerID := actorFrom(ctx).ID()

	return s.stream(ctx, order.TopicPendingOrders, func(e order.Event) bool {
		return e.ForOwner(ownerID)
	})
}

// StreamCookedOrders handles GET /api/v1/events/cooked-orders. The stream is
// a broadcast: every connected driver sees every order that becomes ready,
// so any of them can claim it.
func (s *Server) StreamCookedOrders(ctx echo.Context) error {
	return s.stream(ctx, order.TopicCookedOrders, nil)
}

// StreamOrderUpdates handles GET /api/v1/events/order-updates?orderId=N.
// Only the order's customer, its driver, and the restaurant owner see its
// updates.
func (s *Server) StreamOrderUpdates(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.QueryParam("orderId"), 10, 64)
	if err != nil || orderID <= 0 {
		return respondBadRequest(ctx, "invalid orderId")
	}

	userID := actorFrom(ctx).ID()

	return s.stream(ctx, order.TopicOrderUpdates, func(e order.Event) bool {
		return e.ForOrderParticipant(userID, orderID)
	})
}

// stream pumps bus events through a server-sent event response until the
// client disconnects or the bus shuts down. A nil keep streams everything.
func (s *Server) stream(ctx echo.Context, topic order.Topic, keep func(order.Event) bool) error {
	req := ctx.Request()

	events, cancel, err := s.bus.Subscribe(req.Context(), topic)
	if err != nil {
		return respondError(ctx, err)
	}
	defer cancel()

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	for {
		select {
		case <-req.Context().Done():
			return nil
		case event, open := <-events:
			if !open {
				return nil
			}
			if keep != nil && !keep(event) {
				continue
			}

			payload, err := json.Marshal(event)
			if err != nil {
				s.logger.WarnContext(req.Context(), "skipping unencodable event",
					"topic", topic, "orderID", event.OrderID, "error", err)
				continue
			}

			fmt.Fprintf(resp, "event: %s\ndata: %s\n\n", event.Topic, payload)
			resp.Flush()
		}
	}
}
