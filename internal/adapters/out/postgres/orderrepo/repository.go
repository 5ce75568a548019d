package orderrepo

import (
	"context"
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/restaurantrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its items and records the assigned
// ids on the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.MarkPersisted(dto.ID); err != nil {
		return err
	}

	itemIDs := make([]int64, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemIDs = append(itemIDs, itemDTO.ID)
	}

	return aggregate.SetItemIDs(itemIDs)
}

// Update persists the mutable part of an order: its status and driver.
// Items and monetary totals are immutable after placement and are never
// written again.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"status":    aggregate.Status().String(),
			"driver_id": aggregate.DriverID(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID())
	}

	return nil
}

// Get retrieves an order by id, with its items and the owner of its
// restaurant. The owner is denormalized onto the aggregate so visibility
// checks never need a second round trip.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id)
		}
		return nil, err
	}

	ownerID, err := r.restaurantOwner(ctx, dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, ownerID)
}

func (r *GormOrderRepository) restaurantOwner(ctx context.Context, restaurantID *int64) (*int64, error) {
	if restaurantID == nil {
		return nil, nil
	}

	var ownerID int64
	err := r.db.WithContext(ctx).Model(&restaurantrepo.RestaurantDTO{}).
		Select("owner_id").Where("id = ?", *restaurantID).Scan(&ownerID).Error
	if err != nil {
		return nil, err
	}
	if ownerID == 0 {
		return nil, nil
	}

	return &ownerID, nil
}
