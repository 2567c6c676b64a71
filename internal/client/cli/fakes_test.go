package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/careerhub/internal/client/client"
	"github.com/dmitrijs2005/careerhub/internal/client/config"
	"github.com/dmitrijs2005/careerhub/internal/client/models"
	"github.com/dmitrijs2005/careerhub/internal/client/session"
)

// fakeAuth is an in-memory services.AuthService writing to a real store.
type fakeAuth struct {
	store session.Store

	regParams client.RegisterParams
	regErr    error

	loginEmail, loginPass string
	loginErr              error
	loginCalls            int

	meResp *models.Profile
	meErr  error

	pingErr error
	closed  bool
}

func asha() *models.Session {
	return &models.Session{
		AccessToken:  "A1",
		RefreshToken: "R1",
		Identity:     models.Identity{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: "standard"},
	}
}

func (f *fakeAuth) Register(ctx context.Context, p client.RegisterParams) (*models.Session, error) {
	f.regParams = p
	if f.regErr != nil {
		return nil, f.regErr
	}
	s := asha()
	s.Identity.Name = p.Name
	return s, f.store.Save(ctx, s)
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.Session, error) {
	f.loginCalls++
	f.loginEmail, f.loginPass = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	s := asha()
	return s, f.store.Save(ctx, s)
}

func (f *fakeAuth) Logout(ctx context.Context) error { return f.store.Clear(ctx) }

func (f *fakeAuth) Me(context.Context) (*models.Profile, error) { return f.meResp, f.meErr }

func (f *fakeAuth) Restore(ctx context.Context) (*models.Session, error) { return f.store.Load(ctx) }

func (f *fakeAuth) Ping(context.Context) error { return f.pingErr }

func (f *fakeAuth) Close(context.Context) error {
	f.closed = true
	return nil
}

// stubInputs feeds answers to the text prompts in order and a fixed password.
func stubInputs(t *testing.T, password string, answers ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ *bufio.Reader, _ string, _ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func newTestApp(t *testing.T, input string) (*App, *fakeAuth, *bytes.Buffer) {
	t.Helper()
	st := session.NewMemoryStore()
	fa := &fakeAuth{store: st}
	var out bytes.Buffer
	c := &config.Config{}
	c.LoadDefaults()
	return newApp(c, fa, st, bufio.NewReader(strings.NewReader(input)), &out), fa, &out
}
