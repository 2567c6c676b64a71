package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/dmitrijs2005/careerhub/internal/client/client"
	"github.com/dmitrijs2005/careerhub/internal/client/models"
	"github.com/dmitrijs2005/careerhub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// Register prompts for name, email, password and an optional role, then
// creates the account. On success the session is cached and the user is
// greeted; on failure the server's message is shown.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := getSimpleText(a.reader, "Enter role (standard or mentor, empty for standard)", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	s, err := a.authService.Register(ctx, client.RegisterParams{
		Name:     name,
		Email:    email,
		Password: string(password),
		Role:     role,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", describe(err))
		return err
	}

	a.greet(s)
	return nil
}

// Login prompts for credentials and authenticates. A failed attempt leaves
// the session untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	s, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", describe(err))
		return err
	}

	a.greet(s)
	return nil
}

// Logout forgets the cached session.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("Logout failed: %v", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Me shows the account as the server currently sees it.
func (a *App) Me(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	p, err := a.authService.Me(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot fetch profile: %s\n", describe(err))
		return err
	}

	fmt.Fprintf(a.out, "%s <%s>\n", p.Name, p.Email)
	fmt.Fprintf(a.out, "  id:        %s\n", p.ID)
	fmt.Fprintf(a.out, "  role:      %s\n", p.Role)
	if len(p.Expertise) > 0 {
		fmt.Fprintf(a.out, "  expertise: %s\n", strings.Join(p.Expertise, ", "))
	}
	if p.Bio != "" {
		fmt.Fprintf(a.out, "  bio:       %s\n", p.Bio)
	}
	fmt.Fprintf(a.out, "  member since %s\n", p.CreatedAt.Format("2006-01-02"))
	return nil
}

func (a *App) greet(s *models.Session) {
	fmt.Fprintf(a.out, "Welcome, %s (%s)\n", s.Identity.Name, s.Identity.Role)
}

// describe turns an error into the line shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, client.ErrNotAuthenticated):
		return "please log in first"
	}
	return err.Error()
}
