package order

import (
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyHasDriver is returned when a driver tries to claim an
	// order that is already assigned.
	ErrOrderAlreadyHasDriver = errors.New("order already has a driver")
)

// Order is the aggregate root for a customer's order against a restaurant.
//
// Order follows these invariants:
//   - Created with a real customer, restaurant, and at least one item
//   - The total is computed exactly once, at creation, and never recomputed
//   - Status starts at Pending and only changes through ChangeStatus
//   - Customer, driver, and restaurant references are nullable so order
//     history survives deletion of the referenced entities
//
// The restaurant owner's identifier is denormalized onto the aggregate when
// it is loaded, because every visibility decision needs it.
type Order struct {
	id                int64
	customerID        *int64
	driverID          *int64
	restaurantID      *int64
	restaurantOwnerID *int64
	items             []Item
	total             *int64
	status            Status

	guard guard.ConstructorGuard
}

// NewOrder creates a new, unpersisted Order in Pending status. The total must
// already be computed by the pricing engine over the given items.
func NewOrder(customerID, restaurantID, restaurantOwnerID int64, items []Item, total int64) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setRestaurant(restaurantID, restaurantOwnerID),
		o.setItems(items),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Any of the customer,
// driver, and restaurant references may be nil when the referenced entity was
// deleted after the order was placed.
func RestoreOrder(
	id int64,
	customerID, driverID, restaurantID, restaurantOwnerID *int64,
	items []Item,
	total *int64,
	status Status,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                id,
		customerID:        customerID,
		driverID:          driverID,
		restaurantID:      restaurantID,
		restaurantOwnerID: restaurantOwnerID,
		items:             items,
		total:             total,
		status:            status,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the storage identifier, or zero for an unpersisted order.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the ordering customer's identifier, or nil when the
// customer account was deleted.
func (o *Order) CustomerID() *int64 {
	return o.customerID
}

// DriverID returns the assigned driver's identifier, or nil while unassigned.
func (o *Order) DriverID() *int64 {
	return o.driverID
}

// RestaurantID returns the restaurant reference, or nil when the restaurant
// was deleted after the order was placed.
func (o *Order) RestaurantID() *int64 {
	return o.restaurantID
}

// RestaurantOwnerID returns the owner of the order's restaurant, or nil when
// the restaurant reference is gone.
func (o *Order) RestaurantOwnerID() *int64 {
	return o.restaurantOwnerID
}

// Items returns the immutable order lines.
func (o *Order) Items() []Item {
	return o.items
}

// Total returns the derived order total, or nil when not yet computed.
func (o *Order) Total() *int64 {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// VisibleTo reports whether the actor may view or act on this order:
// its customer, its assigned driver, or the owner of its restaurant.
// Anonymous actors see nothing.
func (o *Order) VisibleTo(actor *user.User) bool {
	if actor == nil {
		return false
	}

	switch actor.Role() {
	case user.Customer:
		return o.customerID != nil && *o.customerID == actor.ID()
	case user.Delivery:
		return o.driverID != nil && *o.driverID == actor.ID()
	case user.Owner:
		return o.restaurantOwnerID != nil && *o.restaurantOwnerID == actor.ID()
	default:
		return false
	}
}

// ChangeStatus transitions the order to the target status on behalf of the
// actor. The actor must pass the visibility rule and hold a role whose
// transition rights include the target status. No ordering constraint beyond
// role membership is enforced.
func (o *Order) ChangeStatus(actor *user.User, to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if !o.VisibleTo(actor) {
		return errs.NewPermissionDeniedError("edit order")
	}

	if !to.CanBeSetBy(actor.Role()) {
		return errs.NewPermissionDeniedErrorWithCause("edit order",
			errors.New("actor role may not set the requested status"))
	}

	o.status = to
	return nil
}

// AssignDriver claims the order for a delivery driver. Fails when the order
// already has a driver; reassignment is not supported.
func (o *Order) AssignDriver(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsRequiredError("driverID")
	}
	if o.driverID != nil {
		return ErrOrderAlreadyHasDriver
	}

	o.driverID = &driverID
	return nil
}

// MarkPersisted records the identifier assigned by storage.
func (o *Order) MarkPersisted(id int64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

// SetItemIDs records the item identifiers assigned by storage, in order.
func (o *Order) SetItemIDs(ids []int64) error {
	if len(ids) != len(o.items) {
		return errs.NewValueIsInvalidError("ids")
	}
	for i, id := range ids {
		if id <= 0 {
			return errs.NewValueIsRequiredError("ids")
		}
		o.items[i].id = id
	}
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = &customerID
	return nil
}

func (o *Order) setRestaurant(restaurantID, restaurantOwnerID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsRequiredError("restaurantID")
	}
	if restaurantOwnerID <= 0 {
		return errs.NewValueIsRequiredError("restaurantOwnerID")
	}
	o.restaurantID = &restaurantID
	o.restaurantOwnerID = &restaurantOwnerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = items
	return nil
}

func (o *Order) setTotal(total int64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total",
			errors.New("total must not be negative"))
	}
	o.total = &total
	return nil
}
