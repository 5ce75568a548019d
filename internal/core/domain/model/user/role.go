package user

import (
	"fmt"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
)

// Role represents the concrete role of a user account.
// Every account carries exactly one role, which drives authorization for
// restaurant management and order lifecycle transitions.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer places orders and watches their delivery progress.
	Customer

	// Owner manages restaurants and their menus and moves accepted orders
	// through the kitchen statuses.
	Owner

	// Delivery picks up cooked orders and completes deliveries.
	Delivery
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Customer:    "Customer",
		Owner:       "Owner",
		Delivery:    "Delivery",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "Customer",
		Owner:    "Owner",
		Delivery: "Delivery",
	}
}

// Validate checks if the Role value is valid.
// Valid roles are: Customer, Owner, Delivery.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// ParseRole converts a string representation into a Role.
// Returns an error for anything outside the closed role set.
func ParseRole(raw string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == raw {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", raw))
}
