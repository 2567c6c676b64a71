// Package session keeps the client's authentication state: the tokens and
// the cached identity written after a successful Register or Login.
//
// A Store is the only place that state lives. Callers receive it explicitly
// and never read the underlying storage themselves.
package session

import (
	"context"

	"github.com/dmitrijs2005/careerhub/internal/client/models"
)

type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Store is the read/write/clear contract for the cached session.
type Store interface {
	// Load returns nil without error when nothing is cached.
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	// UpdateTokens replaces the tokens and keeps the cached identity.
	UpdateTokens(ctx context.Context, accessToken, refreshToken string) error
	Clear(ctx context.Context) error
}

// CurrentState derives the state from what st holds. A non-empty access
// token is the only requirement for StateAuthenticated.
func CurrentState(ctx context.Context, st Store) (State, error) {
	s, err := st.Load(ctx)
	if err != nil {
		return StateAnonymous, err
	}
	if s.Authenticated() {
		return StateAuthenticated, nil
	}
	return StateAnonymous, nil
}
