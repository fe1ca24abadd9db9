package user

import (
	"errors"

	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User represents a person placing orders. Users are created on the first
// order submitted under a new name and are never deleted; the exact
// (case-sensitive) name is the sole identity key. A blank name is a valid
// identity like any other, intake records carry the name verbatim.
type User struct {
	// id is the storage-assigned identity; zero until the user is persisted
	id kernel.ID

	// name is the unique, case-sensitive user name
	name string

	// isConstructed ensures the user was created via a constructor
	isConstructed bool
}

// NewUser creates a not-yet-persisted User. The ID is assigned by the
// repository on Add.
func NewUser(name string) (*User, error) {
	return &User{
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id kernel.ID, name string) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their identity.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's identity. Zero value until persisted.
func (u *User) ID() kernel.ID {
	return u.id
}

// Name returns the user's name.
func (u *User) Name() string {
	return u.name
}

// AssignID attaches the storage-assigned identity to a newly persisted user.
// Returns an error when the user already carries an identity.
func (u *User) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if u.id.Validate() == nil {
		return errs.NewValueIsInvalidError("id is already assigned")
	}

	u.id = id
	return nil
}
