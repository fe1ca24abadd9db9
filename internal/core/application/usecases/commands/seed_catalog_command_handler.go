package commands

import (
	"context"

	"grouporders/internal/core/domain/model/catalog"
	"grouporders/internal/core/domain/model/kernel"
)

// seedMenuItem pairs a dish with its catalog price for the bootstrap data.
type seedMenuItem struct {
	name  string
	price float64
}

// seedRestaurants is the fixed bootstrap catalog: three restaurants with two
// dishes each.
var seedRestaurants = []struct {
	name  string
	items []seedMenuItem
}{
	{name: "Restauracja A", items: []seedMenuItem{
		{name: "Zurek", price: 10.99},
		{name: "Schabowy", price: 12.50},
	}},
	{name: "Restauracja B", items: []seedMenuItem{
		{name: "Rosol", price: 15.75},
		{name: "Mielony", price: 18.00},
	}},
	{name: "Restauracja C", items: []seedMenuItem{
		{name: "Pomidorowa", price: 9.99},
		{name: "Bigos", price: 11.25},
	}},
}

// SeedCatalogCommandHandler inserts the bootstrap catalog once.
// The check-and-insert runs in one transaction; a non-empty restaurants
// table means the catalog was seeded before and the handler does nothing.
type SeedCatalogCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewSeedCatalogCommandHandler creates a handler for the catalog bootstrap.
func NewSeedCatalogCommandHandler(uowFactory CatalogUoWFactory) SeedCatalogCommandHandler {
	return SeedCatalogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle seeds the catalog when it is empty.
func (h *SeedCatalogCommandHandler) Handle(ctx context.Context, cmd SeedCatalogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()

	count, err := catalogRepo.CountRestaurants(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		// Already seeded; deferred rollback releases the transaction.
		return nil
	}

	for _, seed := range seedRestaurants {
		restaurant, restaurantErr := catalog.NewRestaurant(seed.name)
		if restaurantErr != nil {
			return restaurantErr
		}

		if err = catalogRepo.AddRestaurant(ctx, restaurant); err != nil {
			return err
		}

		for _, item := range seed.items {
			price, priceErr := kernel.NewPrice(item.price)
			if priceErr != nil {
				return priceErr
			}

			menuItem, itemErr := catalog.NewMenuItem(restaurant.ID(), item.name, price)
			if itemErr != nil {
				return itemErr
			}

			if err = catalogRepo.AddMenuItem(ctx, menuItem); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}
