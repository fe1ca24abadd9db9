package commands

import (
	"context"
)

// ChangeGroupOrderStatusCommandHandler propagates a status change from a
// group order to all of its member orders in one transaction.
//
// An unknown group order identity surfaces as errs.ObjectNotFoundError from
// the repository lookup rather than passing as a no-op, so callers can tell
// a mistyped identity from a successful change.
type ChangeGroupOrderStatusCommandHandler struct {
	uowFactory GroupingUoWFactory
}

// NewChangeGroupOrderStatusCommandHandler creates a handler for status propagation.
// Requires a GroupingUoWFactory for coordinating updates across group order
// and order repositories.
func NewChangeGroupOrderStatusCommandHandler(uowFactory GroupingUoWFactory) ChangeGroupOrderStatusCommandHandler {
	return ChangeGroupOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the group order's status and overwrites the status of every
// member order with the same label. Both writes happen in one transaction,
// so a failure leaves neither applied.
func (h *ChangeGroupOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeGroupOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	groupRepo := uow.GroupOrderRepository()
	group, err := groupRepo.Get(ctx, cmd.GroupOrderID())
	if err != nil {
		return err
	}

	if err = group.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = groupRepo.Update(ctx, group); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	members, err := orderRepo.GetAllByGroupOrder(ctx, group.ID())
	if err != nil {
		return err
	}

	for _, member := range members {
		if err = member.OverrideStatus(cmd.Status()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, member); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
