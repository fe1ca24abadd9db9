package kernel

import (
	"fmt"
	"strconv"

	"grouporders/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not initialized through NewID.
// This error is returned when validating a zero-value ID, which is the state
// of an aggregate that has not been persisted yet.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object wrapping the positive integer identity assigned to
// every persisted entity by the storage layer. The zero value is invalid and
// marks an aggregate that has not been saved yet.
//
// ID is immutable and safe to copy.
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id.String()) // "42"
type ID struct {
	value int64
}

// NewID creates an ID from a storage-assigned integer key.
// Returns an error for zero or negative values.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive integer", value))
	}
	return ID{value: value}, nil
}

// Value returns the underlying integer key.
func (i ID) Value() int64 {
	return i.value
}

// String returns the decimal representation of the ID.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual compares two IDs for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks that the ID was constructed via NewID.
// Returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value == 0 {
		return ErrIDIsNotConstructed
	}
	if i.value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive integer", i.value))
	}
	return nil
}
