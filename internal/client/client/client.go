package client

import (
	"context"

	"github.com/dmitrijs2005/careerhub/internal/client/models"
)

// RegisterParams is the registration form as typed by the user.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type Client interface {
	Close() error
	Register(ctx context.Context, p RegisterParams) (*models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	GetCurrentUser(ctx context.Context) (*models.Profile, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error

	// SetTokens primes the client with a session restored from disk.
	SetTokens(accessToken, refreshToken string)
	// OnTokensRefreshed registers fn to be called after a transparent refresh.
	OnTokensRefreshed(fn func(accessToken, refreshToken string))
}
