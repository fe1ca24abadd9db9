// Package userrepo provides GORM persistence for the user aggregate.
package userrepo

import (
	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting users.
// The name column is indexed because it is the sole lookup key.
type UserDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"index;not null"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
// A not-yet-persisted user maps to a zero ID, which lets the database
// assign the autoincrement key on insert.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:   aggregate.ID().Value(),
		Name: aggregate.Name(),
	}
}

// toDomain converts a database row to a user aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name)
}
