// Package models defines client-side data models used by the careerhub client.
package models

import "time"

// Identity is the cached copy of the signed-in account, kept for display.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// Session is what a successful Register or Login leaves on the client.
type Session struct {
	AccessToken  string
	RefreshToken string
	Identity     Identity
}

// Authenticated reports whether s carries an access token. Token validity is
// not checked.
func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != ""
}

// Profile is the full public account as returned by GetCurrentUser.
type Profile struct {
	Identity
	Expertise []string
	Bio       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
