package order

import (
	"fmt"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine whose transitions are gated by the role of
// the acting user rather than by the current state.
//
// Lifecycle:
//
//	Pending ──> Cooking ──> Cooked ──> PickedUp ──> Delivered
//	 (Owner)     (Owner)              (Delivery)    (Delivery)
//
// Only role membership is checked on a transition. The machine deliberately
// does not forbid idempotent or backward transitions: an owner may set
// Cooking on an order that is already Cooking.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status of every created order, waiting for the
	// restaurant owner to start cooking.
	Pending

	// Cooking indicates the restaurant owner has accepted the order and the
	// kitchen is working on it.
	Cooking

	// Cooked indicates the order is ready for pickup. Entering this status
	// broadcasts the order to all delivery subscribers.
	Cooked

	// PickedUp indicates the assigned driver has collected the order.
	PickedUp

	// Delivered indicates the order reached the customer.
	// This is the terminal state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Pending:       "Pending",
		Cooking:       "Cooking",
		Cooked:        "Cooked",
		PickedUp:      "PickedUp",
		Delivered:     "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Cooking:   "Cooking",
		Cooked:    "Cooked",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Cooking, Cooked, PickedUp, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a string representation into a Status.
// Returns an error for anything outside the closed status set.
func ParseStatus(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", raw))
}

// CanBeSetBy reports whether an actor with the given role may transition an
// order into this status.
//
// Transition rights:
//
//	Customer  -> none
//	Owner     -> Cooking, Cooked
//	Delivery  -> PickedUp, Delivered
func (s Status) CanBeSetBy(role user.Role) bool {
	switch role {
	case user.Owner:
		return s == Cooking || s == Cooked
	case user.Delivery:
		return s == PickedUp || s == Delivered
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the order lifecycle.
func (s Status) IsTerminal() bool {
	return s == Delivered
}
