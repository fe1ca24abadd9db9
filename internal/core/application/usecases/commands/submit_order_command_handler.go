package commands

import (
	"context"
	"errors"

	"grouporders/internal/core/domain/model/order"
	"grouporders/internal/core/domain/model/user"
	"grouporders/internal/pkg/errs"
)

// SubmitOrderCommandHandler handles the intake of one order record.
// Resolves or creates the user, resolves the preferred restaurant and the
// menu item against the catalog, and creates an order with the item's
// current price snapshotted.
//
// Resolution failures surface as errs.ObjectNotFoundError so callers can
// skip the record and keep processing a batch; any other error is a storage
// failure and aborts the record.
type SubmitOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for order intake.
// Requires an IntakeUoWFactory for transactional persistence.
func NewSubmitOrderCommandHandler(uowFactory IntakeUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one intake record inside a single transaction.
// The user lookup is resolve-or-create; restaurant and menu item lookups are
// exact name matches and a miss leaves the record unprocessed.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
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

	submitter, err := h.resolveUser(ctx, uow, cmd.UserName())
	if err != nil {
		return err
	}

	catalogRepo := uow.CatalogRepository()
	restaurant, err := catalogRepo.GetRestaurantByName(ctx, cmd.PreferredRestaurantName())
	if err != nil {
		return err
	}

	item, err := catalogRepo.GetMenuItemByName(ctx, restaurant.ID(), cmd.MenuItemName())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		submitter.ID(),
		cmd.PreferredRestaurantName(),
		cmd.AlternateRestaurantName(),
		item.ID(),
		item.Price(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveUser finds the user by exact name or creates one on first sight.
func (h *SubmitOrderCommandHandler) resolveUser(
	ctx context.Context,
	uow IntakeUoW,
	name string,
) (*user.User, error) {
	userRepo := uow.UserRepository()

	existing, err := userRepo.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := user.NewUser(name)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
