// Package orderrepo provides GORM persistence for the order aggregate,
// handling the conversion between domain entities and database rows.
package orderrepo

import (
	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
// Status and group_order_id are indexed because the grouping run selects by
// status and status propagation selects by group.
type OrderDTO struct {
	ID                      int64  `gorm:"primaryKey;autoIncrement"`
	UserID                  int64  `gorm:"index;not null"`
	PreferredRestaurantName string `gorm:"not null"`
	AlternateRestaurantName string `gorm:"not null"`
	MenuItemID              int64  `gorm:"not null"`
	MenuItemPrice           float64
	Status                  string `gorm:"index;not null"`
	GroupOrderID            *int64 `gorm:"index"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var groupOrderID *int64
	if id := aggregate.GroupOrder(); id != nil {
		raw := id.Value()
		groupOrderID = &raw
	}

	return OrderDTO{
		ID:                      aggregate.ID().Value(),
		UserID:                  aggregate.UserID().Value(),
		PreferredRestaurantName: aggregate.PreferredRestaurantName(),
		AlternateRestaurantName: aggregate.AlternateRestaurantName(),
		MenuItemID:              aggregate.MenuItemID().Value(),
		MenuItemPrice:           aggregate.Price().Amount(),
		Status:                  aggregate.Status().String(),
		GroupOrderID:            groupOrderID,
	}
}

// toDomain converts a database row to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.NewID(dto.MenuItemID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.MenuItemPrice)
	if err != nil {
		return nil, err
	}

	var groupOrderID *kernel.ID
	if dto.GroupOrderID != nil {
		gID, groupErr := kernel.NewID(*dto.GroupOrderID)
		if groupErr != nil {
			return nil, groupErr
		}
		groupOrderID = &gID
	}

	return order.RestoreOrder(
		id,
		userID,
		dto.PreferredRestaurantName,
		dto.AlternateRestaurantName,
		menuItemID,
		price,
		order.Status(dto.Status),
		groupOrderID,
	)
}
