// Package common defines shared constants and sentinel errors used across
// client and server layers of TaskKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorAlreadyExists = errors.New("already exists")

	// Auth errors (invalid, expired or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Credential flow errors. Login failures deliberately share one message
	// so callers cannot tell a missing account from a wrong password.
	ErrorFieldsRequired        = errors.New("name, email, and password are required")
	ErrorEmailPasswordRequired = errors.New("email and password are required")
	ErrorPasswordMismatch      = errors.New("password and confirm password do not match")
	ErrorEmailInUse            = errors.New("email already in use")
	ErrorInvalidCredentials    = errors.New("invalid email or password")

	// Task flow errors. ErrorTaskNotFound covers both a missing row and a
	// row owned by someone else.
	ErrorTitleRequired = errors.New("title is required")
	ErrorInvalidStatus = errors.New("invalid or missing status")
	ErrorTaskNotFound  = errors.New("task not found or access denied")
)
