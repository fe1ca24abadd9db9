package ports

import (
	"context"

	"grouporders/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Users are looked up by exact, case-sensitive name; the first order seen
// under a new name creates the user.
type UserRepository interface {
	// Add persists a new user and assigns its storage identity.
	Add(ctx context.Context, aggregate *user.User) error

	// GetByName retrieves a user by exact name match.
	// Returns errs.ObjectNotFoundError when no user carries the name.
	GetByName(ctx context.Context, name string) (*user.User, error)
}
