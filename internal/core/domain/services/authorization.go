package services

import (
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
)

// RoleTag names a role an operation may require. Beyond the concrete roles it
// includes TagAny, which admits every authenticated actor regardless of role.
type RoleTag int

const (
	// TagUnknown represents an invalid or undefined tag.
	TagUnknown RoleTag = iota

	// TagCustomer admits actors with the Customer role.
	TagCustomer

	// TagOwner admits actors with the Owner role.
	TagOwner

	// TagDelivery admits actors with the Delivery role.
	TagDelivery

	// TagAny admits every authenticated actor.
	TagAny
)

// Matches reports whether the tag admits the given concrete role.
func (t RoleTag) Matches(role user.Role) bool {
	switch t {
	case TagCustomer:
		return role == user.Customer
	case TagOwner:
		return role == user.Owner
	case TagDelivery:
		return role == user.Delivery
	case TagAny:
		return role.Validate() == nil
	default:
		return false
	}
}

// RoleRequirement is an operation's declared access rule. Every dispatch
// entry carries one explicitly; there is no runtime metadata inspection.
//
// Three cases exist:
//   - Public(): no restriction declared; access is granted unconditionally
//     and no actor identity is needed
//   - Require(tags...): declared restriction; an authenticated actor whose
//     role matches one of the tags is admitted
//   - Require() with no tags: declared but empty; everything is denied
type RoleRequirement struct {
	declared bool
	tags     []RoleTag
}

// Public declares an unrestricted operation.
func Public() RoleRequirement {
	return RoleRequirement{}
}

// Require declares an operation restricted to the given role tags.
// Calling it without tags yields a requirement nobody satisfies.
func Require(tags ...RoleTag) RoleRequirement {
	return RoleRequirement{declared: true, tags: tags}
}

// Declared reports whether the operation declared any restriction.
func (r RoleRequirement) Declared() bool {
	return r.declared
}

// Tags returns the declared role tags.
func (r RoleRequirement) Tags() []RoleTag {
	return r.tags
}

// Authorize resolves an actor and a role requirement into allow/deny.
// It is a pure predicate with no side effects and must be evaluated before
// any mutation or privileged read of the guarded operation.
//
// Rules, in order:
//   - No restriction declared: granted, even for anonymous actors
//   - Restriction declared but actor absent: denied
//   - TagAny among the required tags: granted for any authenticated actor
//   - Otherwise: granted iff the actor's role matches one of the tags
func Authorize(actor *user.User, required RoleRequirement) bool {
	if !required.declared {
		return true
	}

	if actor == nil {
		return false
	}

	for _, tag := range required.tags {
		if tag.Matches(actor.Role()) {
			return true
		}
	}
	return false
}
