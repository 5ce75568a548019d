// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders keep nullable references to the customer, driver,
// and restaurant so that deleting any of those never erases order history;
// items are snapshots and are removed only together with their order.
package orderrepo

import (
	"time"

	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/restaurantrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/userrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           int64                          `gorm:"primaryKey;autoIncrement"`
	CustomerID   *int64                         `gorm:"index"`
	Customer     *userrepo.UserDTO              `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	DriverID     *int64                         `gorm:"index"`
	Driver       *userrepo.UserDTO              `gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL"`
	RestaurantID *int64                         `gorm:"index"`
	Restaurant   *restaurantrepo.RestaurantDTO  `gorm:"foreignKey:RestaurantID;constraint:OnDelete:SET NULL"`
	Total        *int64                         ``
	Status       string                         `gorm:"not null;index"`
	Items        []OrderItemDTO                 `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one dish selection of an order. The dish id is a
// plain column, not a foreign key: an item is a snapshot of what was ordered
// and must survive later menu edits or dish deletion.
type OrderItemDTO struct {
	ID      int64              `gorm:"primaryKey;autoIncrement"`
	OrderID int64              `gorm:"not null;index"`
	DishID  int64              `gorm:"not null"`
	Options []order.ItemOption `gorm:"serializer:json"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:      item.ID(),
			OrderID: aggregate.ID(),
			DishID:  item.DishID(),
			Options: item.Options(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID(),
		CustomerID:   aggregate.CustomerID(),
		DriverID:     aggregate.DriverID(),
		RestaurantID: aggregate.RestaurantID(),
		Total:        aggregate.Total(),
		Status:       aggregate.Status().String(),
		Items:        items,
	}
}

func toDomain(dto OrderDTO, restaurantOwnerID *int64) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.RestoreItem(itemDTO.ID, itemDTO.DishID, itemDTO.Options)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.DriverID,
		dto.RestaurantID,
		restaurantOwnerID,
		items,
		dto.Total,
		status,
	)
}
