package models

import "time"

// RefreshToken is the server-side record of an issued refresh token.
// Only the SHA-256 of the opaque token is stored.
type RefreshToken struct {
	UserID    string
	TokenHash string
	Expires   time.Time
}
