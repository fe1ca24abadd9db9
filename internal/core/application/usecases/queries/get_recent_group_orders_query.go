// Package queries contains read operations in the CQRS architecture.
// Query handlers read directly from the database with raw SQL and return
// flat read models; they never mutate state.
package queries

import (
	"errors"
	"time"

	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/core/domain/model/order"
	"grouporders/internal/pkg/guard"
)

var (
	ErrGetRecentGroupOrdersQueryIsNotConstructed = errors.New(
		"GetRecentGroupOrdersQuery must be created via NewGetRecentGroupOrdersQuery constructor",
	)
)

// recentGroupOrdersLimit caps the report at the ten most recently dated groups.
const recentGroupOrdersLimit = 10

// GetRecentGroupOrdersQuery retrieves the most recently dated group orders,
// each annotated with the member count and the sum of the members'
// snapshotted prices.
//
// Example:
//
//	query := NewGetRecentGroupOrdersQuery()
//	handler := NewGetRecentGroupOrdersQueryHandler(db)
//
//	groups, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get recent group orders: %w", err)
//	}
//
//	for _, g := range groups {
//	    fmt.Printf("%s: %d items, %s total\n", g.RestaurantName, g.ItemCount, g.TotalPrice)
//	}
type GetRecentGroupOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRecentGroupOrdersQuery creates a query for the recent group orders report.
func NewGetRecentGroupOrdersQuery() GetRecentGroupOrdersQuery {
	return GetRecentGroupOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRecentGroupOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentGroupOrdersQueryIsNotConstructed)
}

// GetRecentGroupOrdersQueryResponse is one row of the recent group orders
// report. TotalPrice and ItemCount are zero for a group with no members.
type GetRecentGroupOrdersQueryResponse struct {
	ID             kernel.ID
	RestaurantName string
	OrderDate      time.Time
	Status         order.Status
	TotalPrice     kernel.Price
	ItemCount      int
}
