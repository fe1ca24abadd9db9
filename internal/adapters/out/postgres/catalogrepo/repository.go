package catalogrepo

import (
	"context"
	"errors"

	"grouporders/internal/core/domain/model/catalog"
	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddRestaurant saves a new restaurant and assigns the generated identity.
func (r *GormCatalogRepository) AddRestaurant(ctx context.Context, aggregate *catalog.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddMenuItem saves a new menu item and assigns the generated identity.
func (r *GormCatalogRepository) AddMenuItem(ctx context.Context, aggregate *catalog.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetRestaurantByName retrieves a restaurant by exact name match.
func (r *GormCatalogRepository) GetRestaurantByName(ctx context.Context, name string) (*catalog.Restaurant, error) {
	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", name)
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

// GetMenuItemByName retrieves a menu item by exact name match within a restaurant.
func (r *GormCatalogRepository) GetMenuItemByName(
	ctx context.Context,
	restaurantID kernel.ID,
	name string,
) (*catalog.MenuItem, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "restaurant_id = ? AND name = ?", restaurantID.Value(), name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", name)
		}
		return nil, err
	}

	return menuItemToDomain(dto)
}

// CountRestaurants reports the number of stored restaurants.
func (r *GormCatalogRepository) CountRestaurants(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RestaurantDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
