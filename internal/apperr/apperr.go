// Package apperr holds the error categories every store operation can fail with.
// Handlers map these onto HTTP statuses; nothing here is retried.
package apperr

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccessDenied       = errors.New("access denied")
	ErrDuplicateName      = errors.New("name already exists")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
