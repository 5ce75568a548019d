package commands

import (
	"context"
	"log/slog"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/restaurant"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
	"github.com/ghk0409/ongs-eats-backend/internal/core/ports"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Resolves the restaurant and every requested dish, prices the order from
// the stored catalog, and persists the order with its items in a single
// transaction. The client-supplied request never carries prices.
//
// Example:
//
//	handler := commands.NewCreateOrderCommandHandler(uowFactory, pricer, bus, logger)
//	cmd, _ := commands.NewCreateOrderCommand(customer, restaurantID, items)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending and its owner has been notified
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     services.Pricer
	bus        ports.NotificationBus
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, a Pricer for
// catalog-derived totals, and a NotificationBus for the pending-order event.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricer services.Pricer,
	bus ports.NotificationBus,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
		bus:        bus,
		logger:     logger.With("handler", "create_order"),
	}
}

// RequiredRoles declares who may place orders.
func (h *CreateOrderCommandHandler) RequiredRoles() services.RoleRequirement {
	return services.Require(services.TagCustomer)
}

// Handle processes the order placement command and returns the new order id.
// The restaurant and every dish are loaded inside the same transaction that
// writes the order, so a concurrent catalog change cannot produce an order
// priced against rows that were never read.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return 0, err
	}

	dishes, items, err := h.resolveItems(ctx, uow.DishRepository(), rest, cmd.Items())
	if err != nil {
		return 0, err
	}

	total := h.pricer.PriceOrder(ctx, dishes, items)

	newOrder, err := order.NewOrder(cmd.Customer().ID(), rest.ID(), rest.OwnerID(), items, total)
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.publish(ctx, order.NewPendingOrderEvent(newOrder))

	return newOrder.ID(), nil
}

// resolveItems loads every requested dish and converts the request into
// domain items. A dish that does not exist, or belongs to another
// restaurant, fails the whole order.
func (h *CreateOrderCommandHandler) resolveItems(
	ctx context.Context,
	dishRepo ports.DishRepository,
	rest *restaurant.Restaurant,
	inputs []OrderItemInput,
) (map[int64]*restaurant.Dish, []order.Item, error) {
	dishes := make(map[int64]*restaurant.Dish, len(inputs))
	items := make([]order.Item, 0, len(inputs))

	for _, input := range inputs {
		dish, ok := dishes[input.DishID]
		if !ok {
			var err error
			dish, err = dishRepo.Get(ctx, input.DishID)
			if err != nil {
				return nil, nil, err
			}
			dishes[dish.ID()] = dish
		}

		if dish.RestaurantID() != rest.ID() {
			return nil, nil, errs.NewObjectNotFoundError("dishID", input.DishID)
		}

		item, err := order.NewItem(dish.ID(), input.Options)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}

	return dishes, items, nil
}

// publish broadcasts an order event. Delivery is best-effort: a bus failure
// is logged and never fails the command that produced the event.
func (h *CreateOrderCommandHandler) publish(ctx context.Context, event order.Event) {
	if err := h.bus.Publish(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order event",
			"topic", event.Topic, "orderID", event.OrderID, "error", err)
	}
}
