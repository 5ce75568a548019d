package services_test

import (
	"log/slog"
	"testing"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/restaurant"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extra(v int64) *int64 { return &v }

func testDish(t *testing.T) *restaurant.Dish {
	t.Helper()
	d, err := restaurant.RestoreDish(10, "Bibimbap", 10, "Rice bowl", "", 3, []restaurant.Option{
		{Name: "Size", Choices: []restaurant.Choice{
			{Name: "Large", Extra: extra(2)},
			{Name: "Small"},
		}},
		{Name: "Spicy", Extra: extra(1)},
		{Name: "Both", Extra: extra(5), Choices: []restaurant.Choice{
			{Name: "Ignored", Extra: extra(100)},
		}},
	})
	require.NoError(t, err)
	return d
}

func newPricer() services.Pricer {
	return services.NewPricer(slog.Default())
}

func TestPricer_PriceDish(t *testing.T) {
	ctx := t.Context()
	dish := testDish(t)
	pricer := newPricer()

	t.Run("base_price_without_selections", func(t *testing.T) {
		assert.Equal(t, int64(10), pricer.PriceDish(ctx, dish, nil))
	})

	t.Run("choice_extra_is_added", func(t *testing.T) {
		price := pricer.PriceDish(ctx, dish, []order.ItemOption{{Name: "Size", Choice: "Large"}})
		assert.Equal(t, int64(12), price)
	})

	t.Run("choice_without_extra_adds_nothing", func(t *testing.T) {
		price := pricer.PriceDish(ctx, dish, []order.ItemOption{{Name: "Size", Choice: "Small"}})
		assert.Equal(t, int64(10), price)
	})

	t.Run("flat_extra_is_added", func(t *testing.T) {
		price := pricer.PriceDish(ctx, dish, []order.ItemOption{{Name: "Spicy"}})
		assert.Equal(t, int64(11), price)
	})

	t.Run("flat_extra_wins_over_choices", func(t *testing.T) {
		// The option carries both a flat extra and a choice list; the flat
		// extra is added exactly once and the supplied choice is ignored.
		price := pricer.PriceDish(ctx, dish, []order.ItemOption{{Name: "Both", Choice: "Ignored"}})
		assert.Equal(t, int64(15), price)
	})

	t.Run("unmatched_option_name_is_ignored", func(t *testing.T) {
		price := pricer.PriceDish(ctx, dish, []order.ItemOption{{Name: "Topping", Choice: "Cheese"}})
		assert.Equal(t, int64(10), price)
	})

	t.Run("unmatched_choice_name_is_ignored", func(t *testing.T) {
		price := pricer.PriceDish(ctx, dish, []order.ItemOption{{Name: "Size", Choice: "Medium"}})
		assert.Equal(t, int64(10), price)
	})

	t.Run("surcharges_accumulate", func(t *testing.T) {
		price := pricer.PriceDish(ctx, dish, []order.ItemOption{
			{Name: "Size", Choice: "Large"},
			{Name: "Spicy"},
		})
		assert.Equal(t, int64(13), price)
	})
}

func TestPricer_PriceOrder(t *testing.T) {
	ctx := t.Context()
	pricer := newPricer()

	dish := testDish(t)
	side, err := restaurant.RestoreDish(11, "Kimchi", 3, "Side dish", "", 3, nil)
	require.NoError(t, err)

	dishes := map[int64]*restaurant.Dish{dish.ID(): dish, side.ID(): side}

	itemA, err := order.NewItem(dish.ID(), []order.ItemOption{{Name: "Size", Choice: "Large"}})
	require.NoError(t, err)
	itemB, err := order.NewItem(side.ID(), nil)
	require.NoError(t, err)

	total := pricer.PriceOrder(ctx, dishes, []order.Item{itemA, itemB})
	assert.Equal(t, int64(15), total)

	t.Run("total_is_order_independent", func(t *testing.T) {
		permuted := pricer.PriceOrder(ctx, dishes, []order.Item{itemB, itemA})
		assert.Equal(t, total, permuted)
	})

	t.Run("item_without_resolved_dish_adds_nothing", func(t *testing.T) {
		ghost, err := order.NewItem(999, nil)
		require.NoError(t, err)

		withGhost := pricer.PriceOrder(ctx, dishes, []order.Item{itemA, itemB, ghost})
		assert.Equal(t, total, withGhost)
	})
}
