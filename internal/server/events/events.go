// Package events publishes account domain events to a message broker.
package events

import (
	"context"
	"time"
)

// UserRegistered is emitted once per successful registration.
type UserRegistered struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
	At     time.Time `json:"at"`
}

type Publisher interface {
	PublishUserRegistered(ctx context.Context, e UserRegistered) error
	Close() error
}

// Noop drops every event.
type Noop struct{}

func (Noop) PublishUserRegistered(context.Context, UserRegistered) error { return nil }
func (Noop) Close() error                                                { return nil }
