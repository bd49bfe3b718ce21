// Package common defines the sentinel errors shared across the store, auth,
// and handler layers. Callers should match them with errors.Is.
package common

import "errors"

var (
	// ErrNotFound covers both a missing record and a record the caller does
	// not own. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// Signup/login errors.
	ErrUsernameTaken = errors.New("username taken")
	ErrUserNotFound  = errors.New("user not found")

	// ErrValidation marks user-input errors that redisplay the form.
	ErrValidation = errors.New("validation error")
)
