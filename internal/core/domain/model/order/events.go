package order

// Topic is a named notification channel on the bus. The bus delivers every
// event on a topic to all of its subscribers; each subscriber discards the
// events its own filter rejects.
type Topic string

const (
	// TopicPendingOrders carries newly created orders. Owner-scoped:
	// subscribers filter on the restaurant owner matching themselves.
	TopicPendingOrders Topic = "pendingOrders"

	// TopicCookedOrders carries orders that just became ready for pickup.
	// Broadcast to all delivery subscribers, unfiltered, so idle drivers
	// can claim them.
	TopicCookedOrders Topic = "cookedOrders"

	// TopicOrderUpdates carries every status change of an order. Subscribers
	// filter on being a participant of the specific order they watch.
	TopicOrderUpdates Topic = "orderUpdates"
)

// Event is an order-state change notification. It carries enough of the
// order's references for subscribers to run their filter predicates without
// loading the order.
type Event struct {
	Topic        Topic   `json:"topic"`
	OrderID      int64   `json:"orderId"`
	Status       string  `json:"status"`
	Total        *int64  `json:"total,omitempty"`
	RestaurantID *int64  `json:"restaurantId,omitempty"`
	OwnerID      *int64  `json:"ownerId,omitempty"`
	CustomerID   *int64  `json:"customerId,omitempty"`
	DriverID     *int64  `json:"driverId,omitempty"`
}

// NewPendingOrderEvent builds the event published when an order is created.
func NewPendingOrderEvent(o *Order) Event {
	return newEvent(TopicPendingOrders, o)
}

// NewOrderUpdateEvent builds the event published on every status change.
func NewOrderUpdateEvent(o *Order) Event {
	return newEvent(TopicOrderUpdates, o)
}

// NewCookedOrderEvent builds the broadcast published when an order becomes
// ready for pickup.
func NewCookedOrderEvent(o *Order) Event {
	return newEvent(TopicCookedOrders, o)
}

func newEvent(topic Topic, o *Order) Event {
	return Event{
		Topic:        topic,
		OrderID:      o.ID(),
		Status:       o.Status().String(),
		Total:        o.Total(),
		RestaurantID: o.RestaurantID(),
		OwnerID:      o.RestaurantOwnerID(),
		CustomerID:   o.CustomerID(),
		DriverID:     o.DriverID(),
	}
}

// ForOwner is the pendingOrders filter: the event concerns a restaurant owned
// by the subscriber.
func (e Event) ForOwner(ownerID int64) bool {
	return e.OwnerID != nil && *e.OwnerID == ownerID
}

// ForOrderParticipant is the orderUpdates filter: the event is about the
// watched order and the subscriber is its customer, its driver, or the owner
// of its restaurant.
func (e Event) ForOrderParticipant(userID, orderID int64) bool {
	if e.OrderID != orderID {
		return false
	}

	for _, id := range []*int64{e.CustomerID, e.DriverID, e.OwnerID} {
		if id != nil && *id == userID {
			return true
		}
	}
	return false
}
