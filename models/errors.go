package models

import "errors"

// Error strings double as the "detail" field of error responses, so they keep
// the exact wording clients already depend on.
var (
	ErrInvalidRequest         = errors.New("invalid request body")
	ErrInvalidID              = errors.New("invalid id")
	ErrEmailAlreadyRegistered = errors.New("Email already registered")
	ErrUserNotFound           = errors.New("User not found")
	ErrSongNotFound           = errors.New("Music not found")
)
