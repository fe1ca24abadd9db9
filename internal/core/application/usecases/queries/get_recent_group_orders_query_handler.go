package queries

import (
	"context"
	"time"

	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRecentGroupOrdersQueryHandler produces the recent group orders report
// from the database with a single aggregate query.
type GetRecentGroupOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRecentGroupOrdersQueryHandler creates a handler for the recent group
// orders report. Requires a GORM database connection for query execution.
func NewGetRecentGroupOrdersQueryHandler(db *gorm.DB) GetRecentGroupOrdersQueryHandler {
	return GetRecentGroupOrdersQueryHandler{db: db}
}

// Handle executes the report query.
// Returns up to ten group orders by date descending with id descending as
// the tie-break. The price sum is coalesced to zero so a memberless group
// reports 0/0 rather than NULL.
func (h GetRecentGroupOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRecentGroupOrdersQuery,
) ([]GetRecentGroupOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groups := make([]GetRecentGroupOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			g.id,
			g.restaurant_name,
			g.order_date,
			g.status,
			COALESCE(SUM(o.menu_item_price), 0) AS total_price,
			COUNT(o.id) AS item_count
		FROM group_orders g
		LEFT JOIN orders o ON o.group_order_id = g.id
		GROUP BY g.id, g.restaurant_name, g.order_date, g.status
		ORDER BY g.order_date DESC, g.id DESC
		LIMIT ?
	`, recentGroupOrdersLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var groupResp GetRecentGroupOrdersQueryResponse
		var id int64
		var orderDate time.Time
		var status string
		var totalPrice float64

		err = rows.Scan(
			&id,
			&groupResp.RestaurantName,
			&orderDate,
			&status,
			&totalPrice,
			&groupResp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		groupID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		groupResp.ID = groupID

		total, priceErr := kernel.NewPrice(totalPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		groupResp.TotalPrice = total

		groupResp.OrderDate = orderDate
		groupResp.Status = order.Status(status)
		groups = append(groups, groupResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
