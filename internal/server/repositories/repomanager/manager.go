// Package repomanager groups the repositories behind one handle that can
// also run schema migrations and scope work to a transaction.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/careerhub/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/careerhub/internal/server/repositories/users"
)

// Repositories vends repositories bound to one connection or transaction.
type Repositories interface {
	Users() users.Repository
	RefreshTokens() refreshtokens.Repository
}

type RepositoryManager interface {
	Repositories

	// WithTx runs fn with repositories bound to a single transaction.
	// The transaction is rolled back when fn returns an error.
	WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error

	RunMigrations(ctx context.Context) error
	Close(ctx context.Context) error
}
