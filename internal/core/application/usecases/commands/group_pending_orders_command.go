package commands

import (
	"errors"

	"grouporders/internal/pkg/guard"
)

var (
	ErrGroupPendingOrdersCommandIsNotConstructed = errors.New(
		"GroupPendingOrdersCommand must be created via NewGroupPendingOrdersCommand constructor",
	)
)

// GroupPendingOrdersCommand triggers one grouping run over all orders in
// status "new". This is a parameterless command; the set of orders it
// operates on is determined at execution time.
//
// Example:
//
//	handler := NewGroupPendingOrdersCommandHandler(uowFactory)
//	cmd := NewGroupPendingOrdersCommand()
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("grouping run failed: %w", err)
//	}
type GroupPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewGroupPendingOrdersCommand creates a command for one grouping run.
func NewGroupPendingOrdersCommand() GroupPendingOrdersCommand {
	return GroupPendingOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c GroupPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrGroupPendingOrdersCommandIsNotConstructed)
}
