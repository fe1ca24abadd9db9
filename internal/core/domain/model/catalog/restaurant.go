package catalog

import (
	"errors"

	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
	// not created through NewRestaurant or RestoreRestaurant.
	ErrRestaurantIsNotConstructed = errors.New(
		"Restaurant must be created via NewRestaurant or RestoreRestaurant",
	)
)

// Restaurant is a catalog entry. Restaurants are static seed data and are
// immutable after creation; orders reference them by exact name.
type Restaurant struct {
	id   kernel.ID
	name string

	isConstructed bool
}

// NewRestaurant creates a not-yet-persisted Restaurant.
func NewRestaurant(name string) (*Restaurant, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Restaurant{
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence.
func RestoreRestaurant(id kernel.ID, name string) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Restaurant{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's identity. Zero value until persisted.
func (r *Restaurant) ID() kernel.ID {
	return r.id
}

// Name returns the restaurant's name.
func (r *Restaurant) Name() string {
	return r.name
}

// AssignID attaches the storage-assigned identity to a newly persisted restaurant.
func (r *Restaurant) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if r.id.Validate() == nil {
		return errs.NewValueIsInvalidError("id is already assigned")
	}

	r.id = id
	return nil
}
