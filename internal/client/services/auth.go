// Package services contains application services for the careerhub client.
// This file defines the authentication service: register, login, logout and
// the current-user fetch, each keeping the session store in step with the
// server.
package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/dmitrijs2005/careerhub/internal/client/client"
	"github.com/dmitrijs2005/careerhub/internal/client/models"
	"github.com/dmitrijs2005/careerhub/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register, Login: call the server and, on success, write the session.
//     On failure the store is left untouched.
//   - Logout: revoke the refresh token (best effort) and clear the session.
//   - Me: fetch the current user and refresh the cached identity.
//   - Restore: load a session cached by an earlier run into the client.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Register(ctx context.Context, p client.RegisterParams) (*models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.Profile, error)
	Restore(ctx context.Context) (*models.Session, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store. Tokens refreshed by the client are written back to store.
func NewAuthService(c client.Client, store session.Store) AuthService {
	a := &authService{client: c, store: store}
	c.OnTokensRefreshed(func(accessToken, refreshToken string) {
		if err := store.UpdateTokens(context.Background(), accessToken, refreshToken); err != nil {
			log.Printf("failed to persist refreshed tokens: %v", err)
		}
	})
	return a
}

func (a *authService) Register(ctx context.Context, p client.RegisterParams) (*models.Session, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	if p.Name == "" || p.Email == "" || p.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", client.ErrValidation)
	}

	s, err := a.client.Register(ctx, p)
	if err != nil {
		return nil, err
	}
	return s, a.save(ctx, s)
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", client.ErrValidation)
	}

	s, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s, a.save(ctx, s)
}

func (a *authService) save(ctx context.Context, s *models.Session) error {
	if err := a.store.Save(ctx, s); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// Logout clears the cached session even when the server cannot be reached.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		log.Printf("server logout failed: %v", err)
	}
	return a.store.Clear(ctx)
}

func (a *authService) Me(ctx context.Context) (*models.Profile, error) {
	s, err := a.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !s.Authenticated() {
		return nil, client.ErrNotAuthenticated
	}

	p, err := a.client.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	// tokens may have been rotated during the call
	if cur, err := a.store.Load(ctx); err == nil && cur != nil {
		s = cur
	}
	s.Identity = p.Identity
	if err := a.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return p, nil
}

func (a *authService) Restore(ctx context.Context) (*models.Session, error) {
	s, err := a.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s != nil {
		a.client.SetTokens(s.AccessToken, s.RefreshToken)
	}
	return s, nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
