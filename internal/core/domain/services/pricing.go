package services

import (
	"context"
	"log/slog"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/restaurant"
)

// Pricer is the pricing engine. It derives an order line's cost from a dish's
// option schema and the customer's selections, and the order total as the sum
// over all lines.
//
// Selection names that match nothing on the schema are silently ignored, as
// the ordering clients rely on, but each miss is logged so data-entry
// mistakes stay visible.
//
// Pricing runs exactly once, during order creation, before the order is
// persisted. Totals are never recomputed on reads.
type Pricer struct {
	logger *slog.Logger
}

// NewPricer creates a pricing engine logging through the given logger.
func NewPricer(logger *slog.Logger) Pricer {
	return Pricer{logger: logger.With("component", "pricer")}
}

// PriceDish computes the cost of one order line: the dish's base price plus
// every applicable surcharge from the selections.
//
// For each selection the matching option is looked up by name on the dish's
// schema. An option with a flat extra contributes that extra, regardless of
// any choice also supplied. Otherwise the selection's choice is looked up on
// the option's choice list and contributes its extra when it has one.
func (p Pricer) PriceDish(ctx context.Context, dish *restaurant.Dish, selections []order.ItemOption) int64 {
	price := dish.Price()

	for _, selection := range selections {
		option := dish.FindOption(selection.Name)
		if option == nil {
			p.logger.WarnContext(ctx, "selected option not on dish schema",
				"dish_id", dish.ID(), "option", selection.Name)
			continue
		}

		if option.Extra != nil {
			price += *option.Extra
			continue
		}

		choice := option.FindChoice(selection.Choice)
		if choice == nil {
			p.logger.WarnContext(ctx, "selected choice not on dish option",
				"dish_id", dish.ID(), "option", selection.Name, "choice", selection.Choice)
			continue
		}

		if choice.Extra != nil {
			price += *choice.Extra
		}
	}

	return price
}

// PriceOrder computes the order total: the sum of PriceDish over all items.
// The dishes map holds every item's dish, keyed by dish id; callers resolve
// and validate dish existence before pricing. An item whose dish is missing
// from the map contributes nothing and is logged.
func (p Pricer) PriceOrder(ctx context.Context, dishes map[int64]*restaurant.Dish, items []order.Item) int64 {
	var total int64
	for _, item := range items {
		dish, ok := dishes[item.DishID()]
		if !ok {
			p.logger.WarnContext(ctx, "item dish not in pricing set", "dish_id", item.DishID())
			continue
		}
		total += p.PriceDish(ctx, dish, item.Options())
	}
	return total
}
