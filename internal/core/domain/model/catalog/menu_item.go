package catalog

import (
	"errors"

	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
	// created through NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New(
		"MenuItem must be created via NewMenuItem or RestoreMenuItem",
	)
)

// MenuItem is a dish offered by exactly one restaurant. Menu items are seed
// data and immutable after creation. The price stored here is the catalog
// price; orders copy it at submission time and keep their own snapshot.
type MenuItem struct {
	id           kernel.ID
	restaurantID kernel.ID
	name         string
	price        kernel.Price

	isConstructed bool
}

// NewMenuItem creates a not-yet-persisted MenuItem belonging to the given restaurant.
func NewMenuItem(restaurantID kernel.ID, name string, price kernel.Price) (*MenuItem, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &MenuItem{
		restaurantID:  restaurantID,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistence.
func RestoreMenuItem(id, restaurantID kernel.ID, name string, price kernel.Price) (*MenuItem, error) {
	if err := errors.Join(id.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &MenuItem{
		id:            id,
		restaurantID:  restaurantID,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

// Validate ensures the MenuItem was created through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's identity. Zero value until persisted.
func (m *MenuItem) ID() kernel.ID {
	return m.id
}

// RestaurantID returns the identity of the owning restaurant.
func (m *MenuItem) RestaurantID() kernel.ID {
	return m.restaurantID
}

// Name returns the menu item's name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the current catalog price.
func (m *MenuItem) Price() kernel.Price {
	return m.price
}

// AssignID attaches the storage-assigned identity to a newly persisted menu item.
func (m *MenuItem) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if m.id.Validate() == nil {
		return errs.NewValueIsInvalidError("id is already assigned")
	}

	m.id = id
	return nil
}
