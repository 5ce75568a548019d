package order

import (
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
)

// ItemOption is one customization selected by the customer for an order line.
// Name references an option on the dish's schema. Choice names the chosen
// value when the option uses a choice list, and is empty when the option's
// flat surcharge applies.
type ItemOption struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// Item is an immutable order line: a dish reference plus the options the
// customer selected at order time. Items carry no back-reference to their
// order and never change after order assembly.
type Item struct {
	id      int64
	dishID  int64
	options []ItemOption
}

// NewItem creates an order line for the given dish and selections.
func NewItem(dishID int64, options []ItemOption) (Item, error) {
	if dishID <= 0 {
		return Item{}, errs.NewValueIsRequiredError("dishID")
	}

	return Item{
		dishID:  dishID,
		options: options,
	}, nil
}

// RestoreItem reconstructs an order line from persistence.
func RestoreItem(id, dishID int64, options []ItemOption) (Item, error) {
	if id <= 0 {
		return Item{}, errs.NewValueIsRequiredError("id")
	}

	item, err := NewItem(dishID, options)
	if err != nil {
		return Item{}, err
	}

	item.id = id
	return item, nil
}

// ID returns the storage identifier, or zero for an unpersisted item.
func (i Item) ID() int64 {
	return i.id
}

// DishID returns the identifier of the ordered dish.
func (i Item) DishID() int64 {
	return i.dishID
}

// Options returns the customer's selections for this line.
func (i Item) Options() []ItemOption {
	return i.options
}
