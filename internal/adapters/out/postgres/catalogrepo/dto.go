// Package catalogrepo provides GORM persistence for the restaurant catalog:
// restaurants and their menu items.
package catalogrepo

import (
	"grouporders/internal/core/domain/model/catalog"
	"grouporders/internal/core/domain/model/kernel"
)

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"index;not null"`
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the database structure for persisting menu items.
// Lookups are by (restaurant_id, name), so both columns are indexed together.
type MenuItemDTO struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64   `gorm:"index:idx_menu_items_restaurant_name;not null"`
	Name         string  `gorm:"index:idx_menu_items_restaurant_name;not null"`
	Price        float64 `gorm:"not null"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantFromDomain(aggregate *catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:   aggregate.ID().Value(),
		Name: aggregate.Name(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreRestaurant(id, dto.Name)
}

func menuItemFromDomain(aggregate *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           aggregate.ID().Value(),
		RestaurantID: aggregate.RestaurantID().Value(),
		Name:         aggregate.Name(),
		Price:        aggregate.Price().Amount(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.NewID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreMenuItem(id, restaurantID, dto.Name, price)
}
