package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/client/client"
	"github.com/dmitrijs2005/careerhub/internal/client/config"
	"github.com/dmitrijs2005/careerhub/internal/client/guard"
	"github.com/dmitrijs2005/careerhub/internal/client/services"
	"github.com/dmitrijs2005/careerhub/internal/client/session"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	store       session.Store
	router      *guard.Router
	db          *sql.DB
	reader      *bufio.Reader
	out         io.Writer

	mu   sync.Mutex
	Mode Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewAuthClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	as := services.NewAuthService(apiClient, store)

	app := newApp(c, as, store, bufio.NewReader(os.Stdin), os.Stdout)
	app.db = db
	return app, nil
}

func newApp(c *config.Config, as services.AuthService, store session.Store, r *bufio.Reader, w io.Writer) *App {
	return &App{
		config:      c,
		authService: as,
		store:       store,
		router:      guard.NewRouter(store),
		reader:      r,
		out:         w,
	}
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

// Run restores any cached session and blocks in the REPL until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	if s, err := a.authService.Restore(ctx); err != nil {
		log.Printf("failed to restore session: %v", err)
	} else if s != nil {
		log.Printf("Restored session for %s", s.Identity.Email)
	}

	a.Root(ctx)
}

func (a *App) close(ctx context.Context) {
	if err := a.authService.Close(ctx); err != nil {
		log.Printf("close client: %v", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("close database: %v", err)
		}
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	st, err := session.CurrentState(ctx, a.store)
	if err != nil {
		log.Printf("session error: %v", err)
		return false
	}
	return st == session.StateAuthenticated
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
