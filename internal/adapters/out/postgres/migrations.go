package postgres

import (
	"grouporders/internal/adapters/out/postgres/catalogrepo"
	"grouporders/internal/adapters/out/postgres/grouporderrepo"
	"grouporders/internal/adapters/out/postgres/orderrepo"
	"grouporders/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the five tables of the persisted state layout.
// Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&grouporderrepo.GroupOrderDTO{},
	)
}
