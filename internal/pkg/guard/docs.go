// Package guard implements the constructor guard pattern used by commands,
// queries and domain value objects to reject zero-value instances that bypass
// their constructors.
package guard
