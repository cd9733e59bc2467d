// Package common defines sentinel errors shared across the service layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Registration: an identity already exists for the submitted email.
	ErrorUserExists = errors.New("user already exists")

	// Login: unknown email and wrong password collapse into this single
	// error so the API cannot be used to enumerate accounts.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid, malformed or expired token).
	ErrorInvalidToken = errors.New("invalid token")

	// Generic internal flow control.
	ErrorInternal = errors.New("internal error")
)
