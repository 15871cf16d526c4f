// Package records defines the User and Person records and the queries run
// over slices of them.
//
// Users are handled by pointer: a *User is the identity, and the few
// operations that change a user (for example [StampBirthdates]) change it in
// place. Slices passed to this package must not contain nil users.
package records
