package ports

import (
	"context"

	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns its storage identity.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identity.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAllInNewStatus retrieves every order with status "new", regardless of
	// which intake batch created it. The grouping run partitions this set.
	GetAllInNewStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllByGroupOrder retrieves every order assigned to the given group
	// order. Used by status propagation.
	GetAllByGroupOrder(ctx context.Context, groupOrderID kernel.ID) ([]*order.Order, error)
}
