package client

import "errors"

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrConflict         = errors.New("already exists")
	ErrValidation       = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrTooManyAttempts  = errors.New("too many attempts")
	ErrNotAuthenticated = errors.New("not logged in")
)
