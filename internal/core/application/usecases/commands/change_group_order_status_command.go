package commands

import (
	"errors"

	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/core/domain/model/order"
	"grouporders/internal/pkg/guard"
)

var (
	ErrChangeGroupOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeGroupOrderStatusCommand must be created via NewChangeGroupOrderStatusCommand constructor",
	)
)

// ChangeGroupOrderStatusCommand represents a coordinator retagging a group
// order. The new status is an open label: any non-empty string is accepted
// and propagated verbatim to every member order.
//
// Example:
//
//	groupID, _ := kernel.NewID(7)
//	cmd, err := NewChangeGroupOrderStatusCommand(groupID, "confirmed")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewChangeGroupOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errs.ErrObjectNotFound when the group order does not exist
//	    return err
//	}
type ChangeGroupOrderStatusCommand struct { //nolint:recvcheck //using for validation
	groupOrderID kernel.ID
	status       order.Status

	guard guard.ConstructorGuard
}

// NewChangeGroupOrderStatusCommand creates a command to retag a group order.
// Validates that the group order identity is valid and the status non-empty.
func NewChangeGroupOrderStatusCommand(
	groupOrderID kernel.ID,
	status order.Status,
) (ChangeGroupOrderStatusCommand, error) {
	cmd := ChangeGroupOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setGroupOrderID(groupOrderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeGroupOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeGroupOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeGroupOrderStatusCommandIsNotConstructed)
}

// GroupOrderID returns the identity of the group order to retag.
func (c ChangeGroupOrderStatusCommand) GroupOrderID() kernel.ID {
	return c.groupOrderID
}

// Status returns the new status label.
func (c ChangeGroupOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeGroupOrderStatusCommand) setGroupOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.groupOrderID = id
	return nil
}

func (c *ChangeGroupOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
