package order

import (
	"errors"
	"fmt"

	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents one user's single-item request. It is the aggregate root
// that carries the order through intake, grouping, and status propagation.
//
// Order follows these invariants:
//   - Must reference a user and a menu item that existed at creation time
//   - The price is snapshotted at creation and never recomputed, even when
//     the catalog price changes later
//   - Only orders in StatusNew can be attached to a group order
//   - The group order reference is set together with the move out of StatusNew
//
// The alternate restaurant is informational metadata only; grouping is done
// strictly by preferred restaurant name.
type Order struct {
	// id is the storage-assigned identity; zero until the order is persisted
	id kernel.ID

	// userID references the submitting user
	userID kernel.ID

	// preferredRestaurantName is the grouping key
	preferredRestaurantName string

	// alternateRestaurantName is carried for display only
	alternateRestaurantName string

	// menuItemID references the ordered dish
	menuItemID kernel.ID

	// price is the menu item price snapshotted at creation
	price kernel.Price

	// status is the current lifecycle label
	status Status

	// groupOrderID references the containing group order (nil while ungrouped)
	groupOrderID *kernel.ID

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly submitted Order in StatusNew with no group
// assignment. The ID is assigned by the repository on Add.
//
// Parameters:
//   - userID: identity of the resolved or newly created user
//   - preferredRestaurantName: restaurant the order was resolved against
//   - alternateRestaurantName: fallback restaurant, informational only
//   - menuItemID: identity of the resolved menu item
//   - price: the menu item's catalog price at submission time
func NewOrder(
	userID kernel.ID,
	preferredRestaurantName string,
	alternateRestaurantName string,
	menuItemID kernel.ID,
	price kernel.Price,
) (*Order, error) {
	o := &Order{
		alternateRestaurantName: alternateRestaurantName,
		price:                   price,
		status:                  StatusNew,
		isConstructed:           true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setPreferredRestaurantName(preferredRestaurantName),
		o.setMenuItemID(menuItemID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status
// and group assignment.
func RestoreOrder(
	id kernel.ID,
	userID kernel.ID,
	preferredRestaurantName string,
	alternateRestaurantName string,
	menuItemID kernel.ID,
	price kernel.Price,
	status Status,
	groupOrderID *kernel.ID,
) (*Order, error) {
	o := &Order{
		alternateRestaurantName: alternateRestaurantName,
		price:                   price,
		isConstructed:           true,
	}

	if err := errors.Join(
		id.Validate(),
		o.setUserID(userID),
		o.setPreferredRestaurantName(preferredRestaurantName),
		o.setMenuItemID(menuItemID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if groupOrderID != nil {
		if err := groupOrderID.Validate(); err != nil {
			return nil, err
		}
	}

	o.id = id
	o.status = status
	o.groupOrderID = groupOrderID
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identity. Zero value until persisted.
func (o *Order) ID() kernel.ID {
	return o.id
}

// UserID returns the identity of the submitting user.
func (o *Order) UserID() kernel.ID {
	return o.userID
}

// PreferredRestaurantName returns the grouping key restaurant name.
func (o *Order) PreferredRestaurantName() string {
	return o.preferredRestaurantName
}

// AlternateRestaurantName returns the informational fallback restaurant name.
func (o *Order) AlternateRestaurantName() string {
	return o.alternateRestaurantName
}

// MenuItemID returns the identity of the ordered menu item.
func (o *Order) MenuItemID() kernel.ID {
	return o.menuItemID
}

// Price returns the price snapshotted at creation time.
func (o *Order) Price() kernel.Price {
	return o.price
}

// Status returns the current lifecycle label.
func (o *Order) Status() Status {
	return o.status
}

// GroupOrder returns the identity of the containing group order.
// Returns nil while the order is ungrouped.
func (o *Order) GroupOrder() *kernel.ID {
	return o.groupOrderID
}

// AssignToGroup attaches the order to a group order, moving it from
// StatusNew to StatusGrouped.
//
// Returns an error when the order is not in StatusNew or the group order
// identity is invalid.
func (o *Order) AssignToGroup(groupOrderID kernel.ID) error {
	if err := groupOrderID.Validate(); err != nil {
		return err
	}
	if !o.status.IsNew() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order cannot be assigned to a group", o.status))
	}

	o.groupOrderID = &groupOrderID
	o.status = StatusGrouped
	return nil
}

// OverrideStatus overwrites the order's status with the label propagated
// from its group order. Any non-empty label is accepted; no transition
// rules apply to propagated statuses.
func (o *Order) OverrideStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// AssignID attaches the storage-assigned identity to a newly persisted order.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id.Validate() == nil {
		return errs.NewValueIsInvalidError("id is already assigned")
	}

	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setPreferredRestaurantName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("preferredRestaurantName")
	}
	o.preferredRestaurantName = name
	return nil
}

func (o *Order) setMenuItemID(menuItemID kernel.ID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	o.menuItemID = menuItemID
	return nil
}
