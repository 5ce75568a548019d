package restaurantrepo

import (
	"context"
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/restaurant"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Add saves a new restaurant and records the assigned id on the aggregate.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.MarkPersisted(dto.ID)
}

// Get retrieves a restaurant by id.
func (r *GormRestaurantRepository) Get(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurantID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOwner retrieves every restaurant the user owns, sorted by id.
func (r *GormRestaurantRepository) GetByOwner(ctx context.Context, ownerID int64) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	err := r.db.WithContext(ctx).Order("id").Find(&dtos, "owner_id = ?", ownerID).Error
	if err != nil {
		return nil, err
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		rest, restErr := toDomain(dto)
		if restErr != nil {
			return nil, restErr
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, nil
}

// Update persists changes to an existing restaurant.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"name":        aggregate.Name(),
			"cover_image": aggregate.CoverImage(),
			"address":     aggregate.Address(),
			"category_id": aggregate.CategoryID(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurantID", aggregate.ID())
	}

	return nil
}

// Delete removes a restaurant by id. The dish cascade and the order
// set-null run at the storage layer.
func (r *GormRestaurantRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&RestaurantDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurantID", id)
	}

	return nil
}

// GormCategoryRepository implements ports.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// GetOrCreate resolves a raw category name to its category row, creating it
// on first use. A concurrent insert of the same slug loses the unique-index
// race and falls back to reading the winner's row.
func (r *GormCategoryRepository) GetOrCreate(ctx context.Context, rawName string) (*restaurant.Category, error) {
	slug := restaurant.SlugFromName(rawName)

	category, err := r.GetBySlug(ctx, slug)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	aggregate, err := restaurant.NewCategory(rawName)
	if err != nil {
		return nil, err
	}

	dto := categoryFromDomain(aggregate)
	if createErr := r.db.WithContext(ctx).Create(&dto).Error; createErr != nil {
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return r.GetBySlug(ctx, slug)
		}
		return nil, createErr
	}

	if err = aggregate.MarkPersisted(dto.ID); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// GetBySlug retrieves a category by its normalized slug.
func (r *GormCategoryRepository) GetBySlug(ctx context.Context, slug string) (*restaurant.Category, error) {
	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("slug", slug)
		}
		return nil, err
	}

	return categoryToDomain(dto)
}

// GormDishRepository implements ports.DishRepository using GORM.
type GormDishRepository struct {
	db *gorm.DB
}

// NewGormDishRepository creates a new GORM dish repository.
func NewGormDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{db: db}
}

// Add saves a new dish and records the assigned id on the aggregate.
func (r *GormDishRepository) Add(ctx context.Context, aggregate *restaurant.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := dishFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.MarkPersisted(dto.ID)
}

// Get retrieves a dish by id.
func (r *GormDishRepository) Get(ctx context.Context, id int64) (*restaurant.Dish, error) {
	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dishID", id)
		}
		return nil, err
	}

	return dishToDomain(dto)
}
