// Package account implements the user directory.
//
// A user record is nothing but an externally supplied identifier; the
// directory supports create, delete, and lookup. Existence is checked
// through the store so duplicate creates and deletes of missing users
// fail with typed errors.
package account
