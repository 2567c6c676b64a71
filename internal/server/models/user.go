// Package models holds the server-side domain records.
package models

import "time"

// User is the persisted account record. PasswordHash never leaves the server.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Expertise    []string
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the projection of User that is safe to hand to clients.
type PublicUser struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	Expertise []string
	Bio       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) Public() *PublicUser {
	expertise := u.Expertise
	if expertise == nil {
		expertise = []string{}
	}
	return &PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Expertise: expertise,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
