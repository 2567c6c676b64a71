package refreshtokens

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/common"
	"github.com/dmitrijs2005/careerhub/internal/server/models"
)

// MemoryRepository keeps refresh tokens in process memory. Expired entries
// are left for the caller to delete, as with the SQL backend.
type MemoryRepository struct {
	mu     sync.Mutex
	tokens map[string]models.RefreshToken
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: map[string]models.RefreshToken{}, now: time.Now}
}

func (r *MemoryRepository) Create(ctx context.Context, userID string, tokenHash string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[tokenHash] = models.RefreshToken{
		UserID:    userID,
		TokenHash: tokenHash,
		Expires:   r.now().Add(validity),
	}
	return nil
}

// Put stores t as-is, replacing any token with the same hash.
func (r *MemoryRepository) Put(ctx context.Context, t models.RefreshToken) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[t.TokenHash] = t
}

func (r *MemoryRepository) Consume(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[tokenHash]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.tokens, tokenHash)
	return &t, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, tokenHash)
	return nil
}
