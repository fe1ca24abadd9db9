// Package kernel contains the shared value objects of the domain model:
// ID, the storage-assigned integer identity of persisted entities, and
// Price, the immutable money snapshot carried by orders.
//
// Both types are immutable, validated on construction, and safe to copy.
package kernel
