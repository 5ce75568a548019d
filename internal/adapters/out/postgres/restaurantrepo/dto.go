// Package restaurantrepo provides data transfer objects and mapping functions
// for the restaurant catalog: restaurants, their categories, and their dishes.
package restaurantrepo

import (
	"time"

	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/userrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/restaurant"
)

// CategoryDTO represents the database structure for persisting categories.
// The slug carries the unique index; the display name is free-form.
type CategoryDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null"`
	Slug string `gorm:"uniqueIndex;not null"`
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// RestaurantDTO represents the database structure for persisting restaurants.
// Deleting an owner removes their restaurants; deleting a category detaches
// its restaurants instead of removing them.
type RestaurantDTO struct {
	ID         int64            `gorm:"primaryKey;autoIncrement"`
	Name       string           `gorm:"not null;index"`
	CoverImage string           ``
	Address    string           `gorm:"not null"`
	OwnerID    int64            `gorm:"not null;index"`
	Owner      *userrepo.UserDTO `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CategoryID *int64           `gorm:"index"`
	Category   *CategoryDTO     `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO represents the database structure for persisting dishes. The option
// tree is stored as a JSON document; options are read and priced as a whole,
// never queried relationally.
type DishDTO struct {
	ID           int64               `gorm:"primaryKey;autoIncrement"`
	Name         string              `gorm:"not null"`
	Price        int64               `gorm:"not null"`
	Description  string              ``
	Photo        string              ``
	RestaurantID int64               `gorm:"not null;index"`
	Restaurant   *RestaurantDTO      `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Options      []restaurant.Option `gorm:"serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for dish entities.
func (DishDTO) TableName() string {
	return "dishes"
}

func categoryFromDomain(aggregate *restaurant.Category) CategoryDTO {
	return CategoryDTO{
		ID:   aggregate.ID(),
		Name: aggregate.Name(),
		Slug: aggregate.Slug(),
	}
}

func categoryToDomain(dto CategoryDTO) (*restaurant.Category, error) {
	return restaurant.RestoreCategory(dto.ID, dto.Name, dto.Slug)
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:         aggregate.ID(),
		Name:       aggregate.Name(),
		CoverImage: aggregate.CoverImage(),
		Address:    aggregate.Address(),
		OwnerID:    aggregate.OwnerID(),
		CategoryID: aggregate.CategoryID(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	return restaurant.RestoreRestaurant(
		dto.ID, dto.Name, dto.CoverImage, dto.Address, dto.OwnerID, dto.CategoryID,
	)
}

func dishFromDomain(aggregate *restaurant.Dish) DishDTO {
	return DishDTO{
		ID:           aggregate.ID(),
		Name:         aggregate.Name(),
		Price:        aggregate.Price(),
		Description:  aggregate.Description(),
		Photo:        aggregate.Photo(),
		RestaurantID: aggregate.RestaurantID(),
		Options:      aggregate.Options(),
	}
}

func dishToDomain(dto DishDTO) (*restaurant.Dish, error) {
	return restaurant.RestoreDish(
		dto.ID, dto.Name, dto.Price, dto.Description, dto.Photo, dto.RestaurantID, dto.Options,
	)
}
