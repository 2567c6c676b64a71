package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/careerhub/internal/client/guard"
)

// Routes lists the view table.
func (a *App) Routes(ctx context.Context) error {
	for _, r := range guard.Routes {
		lock := ""
		if r.Protected {
			lock = " (login required)"
		}
		fmt.Fprintf(a.out, "  %-18s %s%s\n", r.Path, r.Title, lock)
	}
	return nil
}

// Open navigates to path. A protected view opened while anonymous shows the
// login view instead; once the login succeeds the original view is shown.
func (a *App) Open(ctx context.Context, path string) error {
	d, err := a.router.Navigate(ctx, path)
	if err != nil {
		fmt.Fprintf(a.out, "Navigation failed: %v\n", err)
		return err
	}

	if d.Redirected && d.Route.Path == guard.LoginPath {
		a.render(d)
		if err := a.Login(ctx); err != nil {
			return nil
		}
		if d, err = a.router.Navigate(ctx, d.Requested); err != nil {
			return err
		}
	}

	a.render(d)
	return nil
}

func (a *App) render(d guard.Decision) {
	fmt.Fprintf(a.out, "== %s ==\n", d.Route.Title)
	if d.Identity != nil {
		fmt.Fprintf(a.out, "Signed in as %s <%s>, %s\n", d.Identity.Name, d.Identity.Email, d.Identity.Role)
	}
}
