package ports

import (
	"context"

	"grouporders/internal/core/domain/model/grouporder"
	"grouporders/internal/core/domain/model/kernel"
)

// GroupOrderRepository defines the persistence contract for group order aggregates.
type GroupOrderRepository interface {
	// Add persists a new group order and assigns its storage identity.
	Add(ctx context.Context, aggregate *grouporder.GroupOrder) error

	// Update persists changes to an existing group order aggregate.
	Update(ctx context.Context, aggregate *grouporder.GroupOrder) error

	// Get retrieves a group order by its identity.
	// Returns errs.ObjectNotFoundError for an unknown identity.
	Get(ctx context.Context, id kernel.ID) (*grouporder.GroupOrder, error)
}
