// Package grouporderrepo provides GORM persistence for the group order aggregate.
package grouporderrepo

import (
	"time"

	"grouporders/internal/core/domain/model/grouporder"
	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/core/domain/model/order"
)

// GroupOrderDTO represents the database structure for persisting group orders.
// The order_date column is indexed for the recent group orders report.
type GroupOrderDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	RestaurantName string    `gorm:"not null"`
	OrderDate      time.Time `gorm:"index;not null"`
	Status         string    `gorm:"not null"`
}

// TableName specifies the database table name for group orders.
func (GroupOrderDTO) TableName() string {
	return "group_orders"
}

// fromDomain converts a group order aggregate to its database representation.
func fromDomain(aggregate *grouporder.GroupOrder) GroupOrderDTO {
	return GroupOrderDTO{
		ID:             aggregate.ID().Value(),
		RestaurantName: aggregate.RestaurantName(),
		OrderDate:      aggregate.OrderDate(),
		Status:         aggregate.Status().String(),
	}
}

// toDomain converts a database row to a group order aggregate.
func toDomain(dto GroupOrderDTO) (*grouporder.GroupOrder, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return grouporder.RestoreGroupOrder(id, dto.RestaurantName, dto.OrderDate, order.Status(dto.Status))
}
