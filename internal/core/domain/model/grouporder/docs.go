// Package grouporder provides the GroupOrder aggregate: a batch of
// same-restaurant orders created by one grouping run and tracked through an
// open status lifecycle. Status changes on a group order propagate to every
// member order.
package grouporder
