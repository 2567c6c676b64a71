// Package guard decides, per navigation, whether a view may render.
//
// The only input is the session store: a protected route renders when an
// access token is cached, and otherwise the navigation is redirected to the
// login view. The token is never verified here.
package guard

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/dmitrijs2005/careerhub/internal/client/models"
	"github.com/dmitrijs2005/careerhub/internal/client/session"
)

const (
	HomePath     = "/"
	LoginPath    = "/login"
	RegisterPath = "/register"
)

type Route struct {
	Path      string
	Title     string
	Protected bool
}

// Routes is the client's view table.
var Routes = []Route{
	{Path: HomePath, Title: "Home"},
	{Path: LoginPath, Title: "Login"},
	{Path: RegisterPath, Title: "Register"},
	{Path: "/community", Title: "Community", Protected: true},
	{Path: "/career-options", Title: "Career options", Protected: true},
	{Path: "/forum", Title: "Forum", Protected: true},
	{Path: "/ruhi", Title: "Ruhi", Protected: true},
	{Path: "/marketplace", Title: "Marketplace", Protected: true},
	{Path: "/dashboard", Title: "Dashboard", Protected: true},
	{Path: "/day-in-life", Title: "A day in the life", Protected: true},
	{Path: "/skill-assessment", Title: "Skill assessment", Protected: true},
}

// Decision is the outcome of one navigation.
type Decision struct {
	// Requested is the normalized path that was asked for.
	Requested string
	// Route is the view to render.
	Route Route
	// Redirected is set when Route differs from the requested view.
	Redirected bool
	// Identity is the cached identity, nil while anonymous.
	Identity *models.Identity
}

type Router struct {
	store  session.Store
	routes map[string]Route
}

func NewRouter(store session.Store) *Router {
	r := &Router{store: store, routes: make(map[string]Route, len(Routes))}
	for _, rt := range Routes {
		r.routes[rt.Path] = rt
	}
	return r
}

// Navigate resolves p against the route table. Unknown paths land on the
// home view.
func (r *Router) Navigate(ctx context.Context, p string) (Decision, error) {
	requested := normalize(p)

	rt, ok := r.routes[requested]
	if !ok {
		return Decision{Requested: requested, Route: r.routes[HomePath], Redirected: true}, nil
	}

	s, err := r.store.Load(ctx)
	if err != nil {
		return Decision{}, fmt.Errorf("guard: %w", err)
	}

	d := Decision{Requested: requested, Route: rt}
	if s.Authenticated() {
		id := s.Identity
		d.Identity = &id
		return d, nil
	}

	if rt.Protected {
		d.Route = r.routes[LoginPath]
		d.Redirected = true
	}
	return d, nil
}

func normalize(p string) string {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(strings.ToLower(p))
}
