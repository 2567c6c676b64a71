package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/careerhub/internal/client/models"
)

// MemoryStore holds the session in process memory only.
type MemoryStore struct {
	mu   sync.Mutex
	sess *models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(context.Context) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.sess.Authenticated() {
		return nil, nil
	}
	cp := *m.sess
	return &cp, nil
}

func (m *MemoryStore) Save(_ context.Context, s *models.Session) error {
	if s == nil {
		return errNilSession
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.sess = &cp
	return nil
}

func (m *MemoryStore) UpdateTokens(_ context.Context, accessToken, refreshToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		m.sess = &models.Session{}
	}
	m.sess.AccessToken, m.sess.RefreshToken = accessToken, refreshToken
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = nil
	return nil
}
