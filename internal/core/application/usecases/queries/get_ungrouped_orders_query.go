package queries

import (
	"errors"

	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/pkg/guard"
)

var (
	ErrGetUngroupedOrdersQueryIsNotConstructed = errors.New(
		"GetUngroupedOrdersQuery must be created via NewGetUngroupedOrdersQuery constructor",
	)
)

// GetUngroupedOrdersQuery retrieves every order still in status "new",
// annotated with the submitting user's name and the ordered dish name.
//
// Example:
//
//	query := NewGetUngroupedOrdersQuery()
//	handler := NewGetUngroupedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get ungrouped orders: %w", err)
//	}
//
//	fmt.Printf("%d orders awaiting grouping\n", len(orders))
type GetUngroupedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUngroupedOrdersQuery creates a query for the ungrouped orders report.
func NewGetUngroupedOrdersQuery() GetUngroupedOrdersQuery {
	return GetUngroupedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUngroupedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUngroupedOrdersQueryIsNotConstructed)
}

// GetUngroupedOrdersQueryResponse is one row of the ungrouped orders report.
type GetUngroupedOrdersQueryResponse struct {
	ID                      kernel.ID
	UserName                string
	PreferredRestaurantName string
	AlternateRestaurantName string
	MenuItemName            string
	Price                   kernel.Price
}
