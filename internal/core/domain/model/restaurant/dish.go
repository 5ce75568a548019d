package restaurant

import (
	"errors"
	"strings"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through the NewDish or RestoreDish factory methods.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish constructor")

// Choice is one concrete value within an option axis, optionally carrying its
// own extra surcharge.
type Choice struct {
	Name  string `json:"name"`
	Extra *int64 `json:"extra,omitempty"`
}

// Option is a named customization axis on a dish. An option carries either a
// flat Extra surcharge or a list of Choices. When both are set the flat Extra
// takes precedence during pricing and the choices are ignored.
type Option struct {
	Name    string   `json:"name"`
	Extra   *int64   `json:"extra,omitempty"`
	Choices []Choice `json:"choices,omitempty"`
}

// Dish is a menu entry on a restaurant.
//
// Dish follows these invariants:
//   - Must have a name and a description
//   - The base price is a non-negative amount in integer base units
//   - Belongs to exactly one restaurant and is deleted with it
//   - The option schema is an ordered list of named options
type Dish struct {
	id           int64
	name         string
	price        int64
	description  string
	photo        string
	restaurantID int64
	options      []Option

	guard guard.ConstructorGuard
}

// NewDish creates a new, unpersisted Dish with validation.
func NewDish(name string, price int64, description, photo string, restaurantID int64, options []Option) (*Dish, error) {
	d := &Dish{
		photo:   photo,
		options: options,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setName(name),
		d.setPrice(price),
		d.setDescription(description),
		d.setRestaurantID(restaurantID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDish reconstructs a Dish from persistence.
func RestoreDish(id int64, name string, price int64, description, photo string, restaurantID int64, options []Option) (*Dish, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	d, err := NewDish(name, price, description, photo, restaurantID, options)
	if err != nil {
		return nil, err
	}

	d.id = id
	return d, nil
}

// Validate ensures the Dish instance was properly constructed.
func (d *Dish) Validate() error {
	if d == nil {
		return ErrDishIsNotConstructed
	}
	return d.guard.Validate(ErrDishIsNotConstructed)
}

// ID returns the storage identifier, or zero for an unpersisted dish.
func (d *Dish) ID() int64 {
	return d.id
}

// Name returns the dish name.
func (d *Dish) Name() string {
	return d.name
}

// Price returns the base price in integer base units.
func (d *Dish) Price() int64 {
	return d.price
}

// Description returns the dish description.
func (d *Dish) Description() string {
	return d.description
}

// Photo returns the photo reference, possibly empty.
func (d *Dish) Photo() string {
	return d.photo
}

// RestaurantID returns the identifier of the owning restaurant.
func (d *Dish) RestaurantID() int64 {
	return d.restaurantID
}

// Options returns the ordered option schema.
func (d *Dish) Options() []Option {
	return d.options
}

// FindOption looks up an option on the schema by name.
// Returns nil when no option with that name exists.
func (d *Dish) FindOption(name string) *Option {
	for i := range d.options {
		if d.options[i].Name == name {
			return &d.options[i]
		}
	}
	return nil
}

// FindChoice looks up a choice by name within the option.
// Returns nil when no choice with that name exists.
func (o *Option) FindChoice(name string) *Choice {
	for i := range o.Choices {
		if o.Choices[i].Name == name {
			return &o.Choices[i]
		}
	}
	return nil
}

// MarkPersisted records the identifier assigned by storage.
func (d *Dish) MarkPersisted(id int64) error {
	if d.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dish) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			errors.New("price must not be negative"))
	}
	d.price = price
	return nil
}

func (d *Dish) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	d.description = description
	return nil
}

func (d *Dish) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsRequiredError("restaurantID")
	}
	d.restaurantID = restaurantID
	return nil
}
