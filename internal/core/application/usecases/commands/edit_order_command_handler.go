package commands

import (
	"context"
	"log/slog"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
	"github.com/ghk0409/ongs-eats-backend/internal/core/ports"
)

// EditOrderCommandHandler handles order status transitions. The aggregate
// enforces both visibility and the per-role write tables; the handler
// persists the result and fans out the update events.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	bus        ports.NotificationBus
	logger     *slog.Logger
}

// NewEditOrderCommandHandler creates a handler for order status changes.
func NewEditOrderCommandHandler(
	uowFactory OrderUoWFactory,
	bus ports.NotificationBus,
	logger *slog.Logger,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
		logger:     logger.With("handler", "edit_order"),
	}
}

// RequiredRoles declares who may change order statuses. Customers hold no
// writable statuses, so they are rejected before the order is even loaded.
func (h *EditOrderCommandHandler) RequiredRoles() services.RoleRequirement {
	return services.Require(services.TagOwner, services.TagDelivery)
}

// Handle processes the status change command.
// Every status change publishes an order update; reaching the ready-for-pickup
// status additionally broadcasts to the delivery pool.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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
	editedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = editedOrder.ChangeStatus(cmd.Actor(), cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, editedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, order.NewOrderUpdateEvent(editedOrder))
	if editedOrder.Status() == order.Cooked {
		h.publish(ctx, order.NewCookedOrderEvent(editedOrder))
	}

	return nil
}

func (h *EditOrderCommandHandler) publish(ctx context.Context, event order.Event) {
	if err := h.bus.Publish(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order event",
			"topic", event.Topic, "orderID", event.OrderID, "error", err)
	}
}
