package restaurant

import (
	"errors"
	"strings"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through the NewCategory or RestoreCategory factory methods.
var ErrCategoryIsNotConstructed = errors.New(
	"Category must be created via NewCategory or RestoreCategory constructor",
)

// Category groups restaurants under a normalized name. The slug is the unique
// key: "Korean BBQ " and "korean bbq" both resolve to slug "korean-bbq", so
// find-or-create lookups are idempotent over equivalent raw names.
type Category struct {
	id   int64
	name string
	slug string

	guard guard.ConstructorGuard
}

// SlugFromName derives the unique category key from a raw name:
// trimmed, lowercased, spaces replaced with hyphens.
func SlugFromName(rawName string) string {
	name := strings.ToLower(strings.TrimSpace(rawName))
	return strings.ReplaceAll(name, " ", "-")
}

// NewCategory creates a category from a raw name, normalizing both the
// display name and the slug.
func NewCategory(rawName string) (*Category, error) {
	name := strings.ToLower(strings.TrimSpace(rawName))
	if name == "" {
		return nil, errs.NewValueIsRequiredError("category name")
	}

	return &Category{
		name:  name,
		slug:  SlugFromName(rawName),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreCategory reconstructs a Category from persistence.
func RestoreCategory(id int64, name, slug string) (*Category, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if slug == "" {
		return nil, errs.NewValueIsRequiredError("slug")
	}

	return &Category{
		id:    id,
		name:  name,
		slug:  slug,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Category instance was properly constructed.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// ID returns the storage identifier, or zero for an unpersisted category.
func (c *Category) ID() int64 {
	return c.id
}

// Name returns the normalized display name.
func (c *Category) Name() string {
	return c.name
}

// Slug returns the unique normalized key.
func (c *Category) Slug() string {
	return c.slug
}

// MarkPersisted records the identifier assigned by storage.
func (c *Category) MarkPersisted(id int64) error {
	if c.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	c.id = id
	return nil
}
