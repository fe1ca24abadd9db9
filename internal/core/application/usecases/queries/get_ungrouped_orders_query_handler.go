package queries

import (
	"context"

	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUngroupedOrdersQueryHandler produces the ungrouped orders report from
// the database, joining orders with their users and menu items.
type GetUngroupedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUngroupedOrdersQueryHandler creates a handler for the ungrouped
// orders report. Requires a GORM database connection for query execution.
func NewGetUngroupedOrdersQueryHandler(db *gorm.DB) GetUngroupedOrdersQueryHandler {
	return GetUngroupedOrdersQueryHandler{db: db}
}

// Handle executes the report query.
// Returns every order in status "new" ordered by order id ascending.
func (h GetUngroupedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUngroupedOrdersQuery,
) ([]GetUngroupedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUngroupedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			u.name,
			o.preferred_restaurant_name,
			o.alternate_restaurant_name,
			m.name,
			o.menu_item_price
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN menu_items m ON m.id = o.menu_item_id
		WHERE o.status = ?
		ORDER BY o.id
	`, order.StatusNew).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUngroupedOrdersQueryResponse
		var id int64
		var price float64

		err = rows.Scan(
			&id,
			&orderResp.UserName,
			&orderResp.PreferredRestaurantName,
			&orderResp.AlternateRestaurantName,
			&orderResp.MenuItemName,
			&price,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		snapshot, priceErr := kernel.NewPrice(price)
		if priceErr != nil {
			return nil, priceErr
		}
		orderResp.Price = snapshot

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
