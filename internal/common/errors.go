// Package common defines shared constants and sentinel errors used across
// client and server layers of careerhub. Callers should use errors.Is to
// match these values; concrete errors wrap them with a human-readable detail.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("invalid credentials")
	ErrorValidation   = errors.New("validation error")

	// Too many failed logins for one email in the throttle window.
	ErrTooManyAttempts = errors.New("too many login attempts")

	// Auth errors (invalid or malformed token).
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
