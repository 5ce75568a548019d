package order_test

import (
	"testing"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUser(t *testing.T, id int64, role user.Role) *user.User {
	t.Helper()
	u, err := user.RestoreUser(id, "u@ongs.dev", "hash", role, true)
	require.NoError(t, err)
	return u
}

func mustItem(t *testing.T, dishID int64) order.Item {
	t.Helper()
	item, err := order.NewItem(dishID, []order.ItemOption{{Name: "Size", Choice: "Large"}})
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_pending_with_total", func(t *testing.T) {
		o, err := order.NewOrder(1, 2, 3, []order.Item{mustItem(t, 10)}, 12)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		require.NotNil(t, o.Total())
		assert.Equal(t, int64(12), *o.Total())
		require.NotNil(t, o.CustomerID())
		assert.Equal(t, int64(1), *o.CustomerID())
		assert.Nil(t, o.DriverID())
		require.NoError(t, o.Validate())
	})

	t.Run("invalid_inputs", func(t *testing.T) {
		items := []order.Item{mustItem(t, 10)}

		_, err := order.NewOrder(0, 2, 3, items, 12)
		require.Error(t, err)

		_, err = order.NewOrder(1, 0, 3, items, 12)
		require.Error(t, err)

		_, err = order.NewOrder(1, 2, 3, nil, 12)
		require.Error(t, err)

		_, err = order.NewOrder(1, 2, 3, items, -1)
		require.Error(t, err)
	})
}

func TestOrder_VisibleTo(t *testing.T) {
	o, err := order.NewOrder(1, 2, 3, []order.Item{mustItem(t, 10)}, 12)
	require.NoError(t, err)
	require.NoError(t, o.AssignDriver(4))

	t.Run("participants_see_the_order", func(t *testing.T) {
		assert.True(t, o.VisibleTo(mustUser(t, 1, user.Customer)))
		assert.True(t, o.VisibleTo(mustUser(t, 4, user.Delivery)))
		assert.True(t, o.VisibleTo(mustUser(t, 3, user.Owner)))
	})

	t.Run("strangers_are_denied", func(t *testing.T) {
		assert.False(t, o.VisibleTo(mustUser(t, 9, user.Customer)))
		assert.False(t, o.VisibleTo(mustUser(t, 9, user.Delivery)))
		assert.False(t, o.VisibleTo(mustUser(t, 9, user.Owner)))
		assert.False(t, o.VisibleTo(nil))
	})

	t.Run("role_and_id_must_match_together", func(t *testing.T) {
		// The customer's id with the owner role grants nothing.
		assert.False(t, o.VisibleTo(mustUser(t, 1, user.Owner)))
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(1, 2, 3, []order.Item{mustItem(t, 10)}, 12)
		require.NoError(t, err)
		require.NoError(t, o.AssignDriver(4))
		return o
	}

	t.Run("owner_sets_kitchen_statuses", func(t *testing.T) {
		o := newOrder(t)
		owner := mustUser(t, 3, user.Owner)

		require.NoError(t, o.ChangeStatus(owner, order.Cooking))
		assert.Equal(t, order.Cooking, o.Status())

		require.NoError(t, o.ChangeStatus(owner, order.Cooked))
		assert.Equal(t, order.Cooked, o.Status())
	})

	t.Run("driver_sets_delivery_statuses", func(t *testing.T) {
		o := newOrder(t)
		driver := mustUser(t, 4, user.Delivery)

		// No forward-ordering constraint: picking up a Pending order is allowed.
		require.NoError(t, o.ChangeStatus(driver, order.PickedUp))
		require.NoError(t, o.ChangeStatus(driver, order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("customer_never_transitions", func(t *testing.T) {
		o := newOrder(t)
		customer := mustUser(t, 1, user.Customer)

		for _, s := range []order.Status{order.Cooking, order.Cooked, order.PickedUp, order.Delivered} {
			err := o.ChangeStatus(customer, s)
			require.ErrorIs(t, err, errs.ErrPermissionDenied, s.String())
		}
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("role_outside_rights_table_is_denied", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(mustUser(t, 3, user.Owner), order.Delivered)
		require.ErrorIs(t, err, errs.ErrPermissionDenied)

		err = o.ChangeStatus(mustUser(t, 4, user.Delivery), order.Cooking)
		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("non_participant_is_denied_before_rights_check", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(mustUser(t, 9, user.Owner), order.Cooking)
		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("invalid_target_status", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(mustUser(t, 3, user.Owner), order.UnknownStatus)
		require.Error(t, err)
	})

	t.Run("idempotent_transition_is_allowed", func(t *testing.T) {
		o := newOrder(t)
		owner := mustUser(t, 3, user.Owner)

		require.NoError(t, o.ChangeStatus(owner, order.Cooking))
		require.NoError(t, o.ChangeStatus(owner, order.Cooking))
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	o, err := order.NewOrder(1, 2, 3, []order.Item{mustItem(t, 10)}, 12)
	require.NoError(t, err)

	require.NoError(t, o.AssignDriver(4))
	require.NotNil(t, o.DriverID())
	assert.Equal(t, int64(4), *o.DriverID())

	require.ErrorIs(t, o.AssignDriver(5), order.ErrOrderAlreadyHasDriver)
	require.Error(t, o.AssignDriver(0))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("nullable_references_survive", func(t *testing.T) {
		total := int64(30)
		o, err := order.RestoreOrder(8, nil, nil, nil, nil, nil, &total, order.Delivered)

		require.NoError(t, err)
		assert.Nil(t, o.CustomerID())
		assert.Nil(t, o.RestaurantID())
		assert.Equal(t, order.Delivered, o.Status())

		// An order whose references are gone is visible to nobody.
		assert.False(t, o.VisibleTo(mustUser(t, 1, user.Customer)))
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(8, nil, nil, nil, nil, nil, nil, order.UnknownStatus)
		require.Error(t, err)
	})
}

func TestOrderEvents(t *testing.T) {
	o, err := order.NewOrder(1, 2, 3, []order.Item{mustItem(t, 10)}, 12)
	require.NoError(t, err)
	require.NoError(t, o.MarkPersisted(77))

	t.Run("pending_event_carries_owner_scope", func(t *testing.T) {
		e := order.NewPendingOrderEvent(o)

		assert.Equal(t, order.TopicPendingOrders, e.Topic)
		assert.Equal(t, int64(77), e.OrderID)
		assert.Equal(t, "Pending", e.Status)
		assert.True(t, e.ForOwner(3))
		assert.False(t, e.ForOwner(9))
	})

	t.Run("update_event_filters_on_participants", func(t *testing.T) {
		require.NoError(t, o.AssignDriver(4))
		e := order.NewOrderUpdateEvent(o)

		assert.Equal(t, order.TopicOrderUpdates, e.Topic)
		assert.True(t, e.ForOrderParticipant(1, 77))  // customer
		assert.True(t, e.ForOrderParticipant(4, 77))  // driver
		assert.True(t, e.ForOrderParticipant(3, 77))  // owner
		assert.False(t, e.ForOrderParticipant(9, 77)) // stranger
		assert.False(t, e.ForOrderParticipant(1, 78)) // wrong order
	})

	t.Run("cooked_event_is_a_broadcast", func(t *testing.T) {
		e := order.NewCookedOrderEvent(o)
		assert.Equal(t, order.TopicCookedOrders, e.Topic)
	})
}
