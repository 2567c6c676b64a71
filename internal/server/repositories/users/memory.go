package users

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/common"
	"github.com/dmitrijs2005/careerhub/internal/server/models"
)

// MemoryRepository keeps users in process memory. It is used by the
// "memory" storage driver for local runs and tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    map[string]models.User{},
		byEmail: map[string]string{},
		now:     time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, fmt.Errorf("%w: email %s", common.ErrorAlreadyExists, user.Email)
	}
	if _, ok := r.byID[user.ID]; ok {
		return nil, fmt.Errorf("%w: id %s", common.ErrorAlreadyExists, user.ID)
	}

	now := r.now().UTC()
	if user.Expertise == nil {
		user.Expertise = []string{}
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	stored.Expertise = append([]string{}, user.Expertise...)
	r.byID[user.ID] = stored
	r.byEmail[user.Email] = user.ID
	return user, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.copyOf(id)
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.copyOf(id)
}

// Remove drops the user with id. Unknown ids are ignored.
func (r *MemoryRepository) Remove(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.byID[id]; ok {
		delete(r.byEmail, u.Email)
		delete(r.byID, id)
	}
}

func (r *MemoryRepository) copyOf(id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u.Expertise = append([]string{}, u.Expertise...)
	return &u, nil
}
