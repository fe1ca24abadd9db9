// Package user provides the User aggregate. A user is created implicitly on
// the first order submitted under a new name and is identified by that exact
// name from then on.
package user
