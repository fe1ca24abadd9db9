package commands

import (
	"errors"

	"grouporders/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrPreferredRestaurantIsRequired = errors.New("preferred restaurant name is required")
	ErrMenuItemNameIsRequired        = errors.New("menu item name is required")
)

// SubmitOrderCommand represents one intake record: a user ordering a single
// menu item from a preferred restaurant, with an alternate restaurant as
// informational fallback.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand("Alice", "Restauracja A", "Restauracja B", "Zurek")
//	if err != nil {
//	    return fmt.Errorf("invalid intake record: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	userName                string
	preferredRestaurantName string
	alternateRestaurantName string
	menuItemName            string

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command for one intake record.
// The preferred restaurant and menu item names must be non-empty because the
// handler resolves them against the catalog. The user name and alternate
// restaurant are carried verbatim and may be blank: an unknown user is
// created on submit and the alternate is informational metadata only.
func NewSubmitOrderCommand(
	userName string,
	preferredRestaurantName string,
	alternateRestaurantName string,
	menuItemName string,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		userName:                userName,
		alternateRestaurantName: alternateRestaurantName,
		guard:                   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPreferredRestaurantName(preferredRestaurantName),
		cmd.setMenuItemName(menuItemName),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// UserName returns the submitting user's name.
func (c SubmitOrderCommand) UserName() string {
	return c.userName
}

// PreferredRestaurantName returns the restaurant to resolve the item against.
func (c SubmitOrderCommand) PreferredRestaurantName() string {
	return c.preferredRestaurantName
}

// AlternateRestaurantName returns the informational fallback restaurant.
func (c SubmitOrderCommand) AlternateRestaurantName() string {
	return c.alternateRestaurantName
}

// MenuItemName returns the ordered dish name.
func (c SubmitOrderCommand) MenuItemName() string {
	return c.menuItemName
}

func (c *SubmitOrderCommand) setPreferredRestaurantName(name string) error {
	if name == "" {
		return ErrPreferredRestaurantIsRequired
	}
	c.preferredRestaurantName = name
	return nil
}

func (c *SubmitOrderCommand) setMenuItemName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}
	c.menuItemName = name
	return nil
}
