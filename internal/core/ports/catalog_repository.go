package ports

import (
	"context"

	"grouporders/internal/core/domain/model/catalog"
	"grouporders/internal/core/domain/model/kernel"
)

// CatalogRepository defines the persistence contract for the restaurant
// catalog. Lookups are exact name matches; menu item lookups are scoped to
// one restaurant, since dish names are only unique per restaurant.
type CatalogRepository interface {
	// AddRestaurant persists a new restaurant and assigns its storage identity.
	AddRestaurant(ctx context.Context, aggregate *catalog.Restaurant) error

	// AddMenuItem persists a new menu item and assigns its storage identity.
	AddMenuItem(ctx context.Context, aggregate *catalog.MenuItem) error

	// GetRestaurantByName retrieves a restaurant by exact name match.
	// Returns errs.ObjectNotFoundError when no restaurant carries the name.
	GetRestaurantByName(ctx context.Context, name string) (*catalog.Restaurant, error)

	// GetMenuItemByName retrieves a menu item by exact name match within the
	// given restaurant. Returns errs.ObjectNotFoundError when the restaurant
	// offers no such dish.
	GetMenuItemByName(ctx context.Context, restaurantID kernel.ID, name string) (*catalog.MenuItem, error)

	// CountRestaurants reports the number of stored restaurants.
	// Used by the seeding flow to make the bootstrap idempotent.
	CountRestaurants(ctx context.Context) (int64, error)
}
