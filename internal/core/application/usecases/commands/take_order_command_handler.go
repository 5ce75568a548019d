package commands

import (
	"context"
	"log/slog"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
	"github.com/ghk0409/ongs-eats-backend/internal/core/ports"
)

// TakeOrderCommandHandler handles a delivery driver claiming an order.
// An order holds at most one driver; the first claim wins.
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	bus        ports.NotificationBus
	logger     *slog.Logger
}

// NewTakeOrderCommandHandler creates a handler for order claims.
func NewTakeOrderCommandHandler(
	uowFactory OrderUoWFactory,
	bus ports.NotificationBus,
	logger *slog.Logger,
) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
		logger:     logger.With("handler", "take_order"),
	}
}

// RequiredRoles declares who may claim orders.
func (h *TakeOrderCommandHandler) RequiredRoles() services.RoleRequirement {
	return services.Require(services.TagDelivery)
}

// Handle processes the claim. Participants of the order learn about the
// new driver through an order update event.
func (h *TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	claimedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = claimedOrder.AssignDriver(cmd.Driver().ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, claimedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.bus.Publish(ctx, order.NewOrderUpdateEvent(claimedOrder)); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order event",
			"topic", order.TopicOrderUpdates, "orderID", claimedOrder.ID(), "error", err)
	}

	return nil
}
