// Package refreshtokens declares the server-side repository contract for
// refresh tokens and provides Postgres and MongoDB implementations.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking refresh tokens.
// Tokens are addressed by their SHA-256 hash; the plaintext is never stored.
type Repository interface {
	// Create stores a new refresh token for userID with an expiry of now+validity.
	Create(ctx context.Context, userID string, tokenHash string, validity time.Duration) error

	// Consume atomically removes the token and returns what was stored, so
	// a token can be redeemed at most once. Returns common.ErrorNotFound when
	// the token is absent or was already consumed.
	Consume(ctx context.Context, tokenHash string) (*models.RefreshToken, error)

	// Delete removes a refresh token by its hash. Deleting a non-existent
	// token is not an error.
	Delete(ctx context.Context, tokenHash string) error
}
