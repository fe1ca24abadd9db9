package order

import (
	"grouporders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order or group order.
//
// The status set is deliberately open: the core itself only ever assigns
// StatusNew and StatusGrouped, but the coordinator may push any non-empty
// label (for example "confirmed" or "delivered") onto a group order, and
// that label propagates verbatim to every member order. Restricting the
// vocabulary to a closed enum would reject labels operators legitimately use.
type Status string

const (
	// StatusNew is the initial status of a freshly submitted order and of a
	// freshly created group order. Only orders in this status are considered
	// by the grouping run.
	StatusNew Status = "new"

	// StatusGrouped is assigned to an order when the grouping run attaches it
	// to a group order.
	StatusGrouped Status = "grouped"
)

// Validate checks that the status carries a non-empty label.
// Any non-empty string is a valid status.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// IsNew reports whether the status is the initial "new" state.
func (s Status) IsNew() bool {
	return s == StatusNew
}

// String returns the status label.
func (s Status) String() string {
	return string(s)
}
