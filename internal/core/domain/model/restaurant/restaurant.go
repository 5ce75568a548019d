package restaurant

import (
	"errors"
	"strings"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through the NewRestaurant or RestoreRestaurant factory methods.
var ErrRestaurantIsNotConstructed = errors.New(
	"Restaurant must be created via NewRestaurant or RestoreRestaurant constructor",
)

// Restaurant is the aggregate root for a place customers order from.
//
// Restaurant follows these invariants:
//   - Must have a name and an address
//   - Belongs to exactly one owning user
//   - The category reference is optional; deleting a category nulls the
//     reference without deleting the restaurant
type Restaurant struct {
	id         int64
	name       string
	coverImage string
	address    string
	ownerID    int64
	categoryID *int64

	guard guard.ConstructorGuard
}

// NewRestaurant creates a new, unpersisted Restaurant with validation.
func NewRestaurant(name, coverImage, address string, ownerID int64, categoryID *int64) (*Restaurant, error) {
	r := &Restaurant{
		coverImage: coverImage,
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setName(name),
		r.setAddress(address),
		r.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence.
func RestoreRestaurant(id int64, name, coverImage, address string, ownerID int64, categoryID *int64) (*Restaurant, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	r, err := NewRestaurant(name, coverImage, address, ownerID, categoryID)
	if err != nil {
		return nil, err
	}

	r.id = id
	return r, nil
}

// Validate ensures the Restaurant instance was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the storage identifier, or zero for an unpersisted restaurant.
func (r *Restaurant) ID() int64 {
	return r.id
}

// Name returns the restaurant name.
func (r *Restaurant) Name() string {
	return r.name
}

// CoverImage returns the cover image reference, possibly empty.
func (r *Restaurant) CoverImage() string {
	return r.coverImage
}

// Address returns the restaurant address.
func (r *Restaurant) Address() string {
	return r.address
}

// OwnerID returns the identifier of the owning user.
func (r *Restaurant) OwnerID() int64 {
	return r.ownerID
}

// CategoryID returns the category reference, or nil when uncategorized.
func (r *Restaurant) CategoryID() *int64 {
	return r.categoryID
}

// Rename changes the restaurant name.
func (r *Restaurant) Rename(name string) error {
	return r.setName(name)
}

// ChangeCoverImage replaces the cover image reference. An empty value
// clears it.
func (r *Restaurant) ChangeCoverImage(coverImage string) {
	r.coverImage = coverImage
}

// Relocate changes the restaurant address.
func (r *Restaurant) Relocate(address string) error {
	return r.setAddress(address)
}

// ChangeCategory moves the restaurant to another category, or out of any
// category when nil.
func (r *Restaurant) ChangeCategory(categoryID *int64) {
	r.categoryID = categoryID
}

// MarkPersisted records the identifier assigned by storage.
func (r *Restaurant) MarkPersisted(id int64) error {
	if r.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

func (r *Restaurant) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return errs.NewValueIsRequiredError("ownerID")
	}
	r.ownerID = ownerID
	return nil
}
