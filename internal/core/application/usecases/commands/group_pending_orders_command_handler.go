package commands

import (
	"context"
	"sort"
	"time"

	"grouporders/internal/core/domain/model/grouporder"
	"grouporders/internal/core/domain/model/order"
)

// GroupPendingOrdersCommandHandler runs the grouping engine: it partitions
// all orders in status "new" by preferred restaurant name and creates one
// group order per non-empty partition, attaching every member in the same
// transaction.
//
// A restaurant with zero pending orders never produces a group order, and
// re-running the command is safe: grouped orders leave "new" status and are
// excluded from future runs.
type GroupPendingOrdersCommandHandler struct {
	uowFactory GroupingUoWFactory
	now        func() time.Time
}

// NewGroupPendingOrdersCommandHandler creates a handler for grouping runs.
// Requires a GroupingUoWFactory for coordinating updates across order and
// group order repositories.
func NewGroupPendingOrdersCommandHandler(uowFactory GroupingUoWFactory) GroupPendingOrdersCommandHandler {
	return GroupPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// NewGroupPendingOrdersCommandHandlerWithClock creates a handler with an
// injected clock. Used by tests to fix the group order date.
func NewGroupPendingOrdersCommandHandlerWithClock(
	uowFactory GroupingUoWFactory,
	now func() time.Time,
) GroupPendingOrdersCommandHandler {
	return GroupPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle executes one grouping run.
// The pending set is read first; each restaurant partition is then grouped
// in its own transaction, the natural atomicity unit for a grouping run.
// Partition contents are deterministic for a fixed pending set; only the
// creation order across restaurants is an implementation detail (sorted
// here for stable runs).
func (h *GroupPendingOrdersCommandHandler) Handle(ctx context.Context, cmd GroupPendingOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pending, err := h.uowFactory.Create().OrderRepository().GetAllInNewStatus(ctx)
	if err != nil {
		return err
	}

	partitions := make(map[string][]*order.Order)
	for _, o := range pending {
		name := o.PreferredRestaurantName()
		partitions[name] = append(partitions[name], o)
	}

	names := make([]string, 0, len(partitions))
	for name := range partitions {
		names = append(names, name)
	}
	sort.Strings(names)

	orderDate := h.now().UTC().Truncate(24 * time.Hour)
	for _, name := range names {
		if err = h.groupRestaurant(ctx, name, orderDate, partitions[name]); err != nil {
			return err
		}
	}

	return nil
}

// groupRestaurant creates one group order for a restaurant and attaches all
// of its pending orders within a single transaction.
func (h *GroupPendingOrdersCommandHandler) groupRestaurant(
	ctx context.Context,
	restaurantName string,
	orderDate time.Time,
	members []*order.Order,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	group, err := grouporder.NewGroupOrder(restaurantName, orderDate)
	if err != nil {
		return err
	}

	if err = uow.GroupOrderRepository().Add(ctx, group); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	for _, member := range members {
		if err = member.AssignToGroup(group.ID()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, member); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
