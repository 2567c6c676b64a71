package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/careerhub/internal/client/models"
	"github.com/dmitrijs2005/careerhub/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct{ session.MemoryStore }

func (*brokenStore) Load(context.Context) (*models.Session, error) {
	return nil, errors.New("disk gone")
}

func TestNavigate_ProtectedRouteRedirectsWhenAnonymous(t *testing.T) {
	r := NewRouter(session.NewMemoryStore())

	for _, rt := range Routes {
		if !rt.Protected {
			continue
		}
		d, err := r.Navigate(context.Background(), rt.Path)
		require.NoError(t, err)
		assert.True(t, d.Redirected, rt.Path)
		assert.Equal(t, LoginPath, d.Route.Path, rt.Path)
		assert.Nil(t, d.Identity)
		assert.Equal(t, rt.Path, d.Requested)
	}
}

func TestNavigate_PublicRoutesRenderWhenAnonymous(t *testing.T) {
	r := NewRouter(session.NewMemoryStore())

	for _, p := range []string{HomePath, LoginPath, RegisterPath} {
		d, err := r.Navigate(context.Background(), p)
		require.NoError(t, err)
		assert.False(t, d.Redirected)
		assert.Equal(t, p, d.Route.Path)
	}
}

func TestNavigate_LoginThenLogout(t *testing.T) {
	ctx := context.Background()
	st := session.NewMemoryStore()
	r := NewRouter(st)

	d, err := r.Navigate(ctx, "/dashboard")
	require.NoError(t, err)
	require.True(t, d.Redirected)

	require.NoError(t, st.Save(ctx, &models.Session{
		AccessToken: "A1",
		Identity:    models.Identity{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: "standard"},
	}))

	d, err = r.Navigate(ctx, "/dashboard")
	require.NoError(t, err)
	assert.False(t, d.Redirected)
	assert.Equal(t, "/dashboard", d.Route.Path)
	require.NotNil(t, d.Identity)
	assert.Equal(t, "Asha", d.Identity.Name)

	require.NoError(t, st.Clear(ctx))

	d, err = r.Navigate(ctx, "/dashboard")
	require.NoError(t, err)
	assert.True(t, d.Redirected)
	assert.Equal(t, LoginPath, d.Route.Path)
}

func TestNavigate_TokenPresenceIsTheOnlyGate(t *testing.T) {
	ctx := context.Background()
	st := session.NewMemoryStore()
	require.NoError(t, st.Save(ctx, &models.Session{AccessToken: "not-a-jwt"}))

	d, err := NewRouter(st).Navigate(ctx, "/forum")
	require.NoError(t, err)
	assert.False(t, d.Redirected)
}

func TestNavigate_UnknownAndUnnormalizedPaths(t *testing.T) {
	r := NewRouter(session.NewMemoryStore())
	ctx := context.Background()

	d, err := r.Navigate(ctx, "/nowhere")
	require.NoError(t, err)
	assert.True(t, d.Redirected)
	assert.Equal(t, HomePath, d.Route.Path)

	d, err = r.Navigate(ctx, "Community/?tab=new")
	require.NoError(t, err)
	assert.Equal(t, "/community", d.Requested)
	assert.Equal(t, LoginPath, d.Route.Path)
}

func TestNavigate_StoreError(t *testing.T) {
	_, err := NewRouter(&brokenStore{}).Navigate(context.Background(), "/forum")
	assert.ErrorContains(t, err, "disk gone")
}
