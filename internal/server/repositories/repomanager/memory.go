package repomanager

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/server/models"
	"github.com/dmitrijs2005/careerhub/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/careerhub/internal/server/repositories/users"
)

// MemoryRepositoryManager vends process-local repositories. Nothing
// survives a restart.
//
// WithTx serializes transactional callers and, when fn fails, undoes the
// writes fn made through the repositories it was given.
type MemoryRepositoryManager struct {
	users         *users.MemoryRepository
	refreshTokens *refreshtokens.MemoryRepository
	txMu          sync.Mutex
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:         users.NewMemoryRepository(),
		refreshTokens: refreshtokens.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	tx := &memoryTx{m: m}
	if err := fn(ctx, tx); err != nil {
		tx.rollback(ctx)
		return err
	}
	return nil
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *MemoryRepositoryManager) Close(ctx context.Context) error {
	return nil
}

// memoryTx records an undo step for every successful write.
type memoryTx struct {
	m    *MemoryRepositoryManager
	undo []func(ctx context.Context)
}

func (tx *memoryTx) Users() users.Repository                 { return txUsers{tx} }
func (tx *memoryTx) RefreshTokens() refreshtokens.Repository { return txTokens{tx} }

func (tx *memoryTx) rollback(ctx context.Context) {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i](ctx)
	}
}

type txUsers struct{ tx *memoryTx }

func (u txUsers) Create(ctx context.Context, user *models.User) (*models.User, error) {
	created, err := u.tx.m.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	id := created.ID
	u.tx.undo = append(u.tx.undo, func(ctx context.Context) { u.tx.m.users.Remove(ctx, id) })
	return created, nil
}

func (u txUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.tx.m.users.GetByEmail(ctx, email)
}

func (u txUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	return u.tx.m.users.GetByID(ctx, id)
}

type txTokens struct{ tx *memoryTx }

func (t txTokens) Create(ctx context.Context, userID string, tokenHash string, validity time.Duration) error {
	if err := t.tx.m.refreshTokens.Create(ctx, userID, tokenHash, validity); err != nil {
		return err
	}
	t.tx.undo = append(t.tx.undo, func(ctx context.Context) { _ = t.tx.m.refreshTokens.Delete(ctx, tokenHash) })
	return nil
}

func (t txTokens) Consume(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	tok, err := t.tx.m.refreshTokens.Consume(ctx, tokenHash)
	if err != nil {
		return nil, err
	}
	saved := *tok
	t.tx.undo = append(t.tx.undo, func(ctx context.Context) { t.tx.m.refreshTokens.Put(ctx, saved) })
	return tok, nil
}

// Delete is not undone: the token may not have existed.
func (t txTokens) Delete(ctx context.Context, tokenHash string) error {
	return t.tx.m.refreshTokens.Delete(ctx, tokenHash)
}
