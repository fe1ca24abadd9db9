package grouporder

import (
	"errors"
	"time"

	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/core/domain/model/order"
	"grouporders/internal/pkg/errs"
)

var (
	// ErrGroupOrderIsNotConstructed is returned when a GroupOrder instance was
	// not created through NewGroupOrder or RestoreGroupOrder.
	ErrGroupOrderIsNotConstructed = errors.New(
		"GroupOrder must be created via NewGroupOrder or RestoreGroupOrder",
	)
)

// GroupOrder is a batch of same-restaurant orders created together by one
// grouping run so they can be fulfilled as one unit. The grouping run never
// creates empty groups: a group order exists only because at least one
// pending order wanted its restaurant.
//
// Its restaurant name equals the preferred restaurant name of every member
// order by construction.
type GroupOrder struct {
	// id is the storage-assigned identity; zero until persisted
	id kernel.ID

	// restaurantName is the restaurant all member orders prefer
	restaurantName string

	// orderDate is the date of the grouping run that created the batch
	orderDate time.Time

	// status is the current lifecycle label, propagated to members on change
	status order.Status

	// isConstructed ensures the group order was created via a constructor
	isConstructed bool
}

// NewGroupOrder creates a not-yet-persisted GroupOrder in StatusNew, dated at
// the given grouping run date.
func NewGroupOrder(restaurantName string, orderDate time.Time) (*GroupOrder, error) {
	if restaurantName == "" {
		return nil, errs.NewValueIsRequiredError("restaurantName")
	}
	if orderDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("orderDate")
	}

	return &GroupOrder{
		restaurantName: restaurantName,
		orderDate:      orderDate,
		status:         order.StatusNew,
		isConstructed:  true,
	}, nil
}

// RestoreGroupOrder reconstructs a GroupOrder from persistence.
func RestoreGroupOrder(
	id kernel.ID,
	restaurantName string,
	orderDate time.Time,
	status order.Status,
) (*GroupOrder, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if restaurantName == "" {
		return nil, errs.NewValueIsRequiredError("restaurantName")
	}
	if orderDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("orderDate")
	}

	return &GroupOrder{
		id:             id,
		restaurantName: restaurantName,
		orderDate:      orderDate,
		status:         status,
		isConstructed:  true,
	}, nil
}

// Validate ensures the GroupOrder was created through a constructor.
func (g *GroupOrder) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrGroupOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two group orders by their identity.
func (g *GroupOrder) IsEqual(other *GroupOrder) bool {
	return other != nil && g.id.IsEqual(other.id)
}

// ID returns the group order's identity. Zero value until persisted.
func (g *GroupOrder) ID() kernel.ID {
	return g.id
}

// RestaurantName returns the restaurant all member orders prefer.
func (g *GroupOrder) RestaurantName() string {
	return g.restaurantName
}

// OrderDate returns the date of the grouping run that created the batch.
func (g *GroupOrder) OrderDate() time.Time {
	return g.orderDate
}

// Status returns the current lifecycle label.
func (g *GroupOrder) Status() order.Status {
	return g.status
}

// ChangeStatus overwrites the group order's status with the given label.
// Any non-empty label is accepted; the caller propagates the same label to
// every member order.
func (g *GroupOrder) ChangeStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	g.status = status
	return nil
}

// AssignID attaches the storage-assigned identity to a newly persisted group order.
func (g *GroupOrder) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if g.id.Validate() == nil {
		return errs.NewValueIsInvalidError("id is already assigned")
	}

	g.id = id
	return nil
}
