package cli

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/client/client"
	"github.com/dmitrijs2005/careerhub/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	a, fa, out := newTestApp(t, "")
	stubInputs(t, "secret1", "Asha", "asha@example.com", "")

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, client.RegisterParams{Name: "Asha", Email: "asha@example.com", Password: "secret1"}, fa.regParams)
	assert.Contains(t, out.String(), "Welcome, Asha (standard)")
	assert.True(t, a.isLoggedIn(context.Background()))
}

func TestRegister_ConflictShowsMessageAndStaysAnonymous(t *testing.T) {
	a, fa, out := newTestApp(t, "")
	fa.regErr = fmt.Errorf("%w: user already exists", client.ErrConflict)
	stubInputs(t, "other1", "Bimal", "asha@example.com", "")

	err := a.Register(context.Background())
	require.ErrorIs(t, err, client.ErrConflict)
	assert.Contains(t, out.String(), "Registration failed: already exists: user already exists")
	assert.False(t, a.isLoggedIn(context.Background()))
}

func TestLogin_SuccessAndFailure(t *testing.T) {
	a, fa, out := newTestApp(t, "")
	fa.loginErr = fmt.Errorf("%w: invalid credentials", client.ErrUnauthorized)
	stubInputs(t, "wrong", "asha@example.com")

	require.Error(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "Login failed: unauthorized: invalid credentials")
	assert.False(t, a.isLoggedIn(context.Background()))

	fa.loginErr = nil
	stubInputs(t, "secret1", "asha@example.com")
	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "secret1", fa.loginPass)
	assert.True(t, a.isLoggedIn(context.Background()))
}

func TestLogin_Unavailable(t *testing.T) {
	a, fa, out := newTestApp(t, "")
	fa.loginErr = client.ErrUnavailable
	stubInputs(t, "secret1", "asha@example.com")

	require.Error(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "server unavailable, try again later")
}

func TestLogout(t *testing.T) {
	a, fa, out := newTestApp(t, "")
	require.NoError(t, fa.store.Save(context.Background(), asha()))

	require.NoError(t, a.Logout(context.Background()))
	assert.Contains(t, out.String(), "Logged out")
	assert.False(t, a.isLoggedIn(context.Background()))
}

func TestMe(t *testing.T) {
	a, fa, out := newTestApp(t, "")
	fa.meResp = &models.Profile{
		Identity:  models.Identity{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: "mentor"},
		Expertise: []string{"go", "design"},
		Bio:       "hello",
		CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, a.Me(context.Background()))
	s := out.String()
	assert.Contains(t, s, "Asha <asha@example.com>")
	assert.Contains(t, s, "expertise: go, design")
	assert.Contains(t, s, "member since 2025-01-02")

	out.Reset()
	fa.meErr = client.ErrNotAuthenticated
	require.Error(t, a.Me(context.Background()))
	assert.Contains(t, out.String(), "please log in first")
}
