package commands

import (
	"errors"

	"grouporders/internal/pkg/guard"
)

var (
	ErrSeedCatalogCommandIsNotConstructed = errors.New(
		"SeedCatalogCommand must be created via NewSeedCatalogCommand constructor",
	)
)

// SeedCatalogCommand triggers the one-time catalog bootstrap: three
// restaurants with two menu items each. Re-running it against an already
// seeded catalog is a no-op.
type SeedCatalogCommand struct {
	guard guard.ConstructorGuard
}

// NewSeedCatalogCommand creates a command for the catalog bootstrap.
func NewSeedCatalogCommand() SeedCatalogCommand {
	return SeedCatalogCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SeedCatalogCommand) Validate() error {
	return c.guard.Validate(ErrSeedCatalogCommandIsNotConstructed)
}
