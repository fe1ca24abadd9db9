// Package order provides the Order aggregate and the open Status type for
// the group ordering system.
//
// The package includes:
//   - Order: one user's single-item request with a preferred and an alternate
//     restaurant and a price snapshotted at submission time
//   - Status: an open string label; the core assigns "new" and "grouped",
//     the coordinator may propagate any other non-empty label
//
// Key business rules:
//   - Orders are created in status "new" with no group assignment
//   - Grouping attaches an order to a group order and moves it to "grouped"
//     in one step; the group reference and the departure from "new" always
//     happen together
//   - Status propagation from a group order overwrites member statuses
//     without transition rules
//   - The snapshotted price never changes after creation
package order
