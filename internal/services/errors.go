package services

import "errors"

// Terminal error kinds surfaced by the services. The handlers map these to
// HTTP statuses; anything else is treated as an internal error.
var (
	ErrConflict      = errors.New("resource already exists")
	ErrUnauthorized  = errors.New("invalid or missing credentials")
	ErrForbidden     = errors.New("operation not permitted")
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidScheme = errors.New("invalid URL scheme")
)
