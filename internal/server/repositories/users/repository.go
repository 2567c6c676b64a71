// Package users declares the persistence contract for user accounts and
// provides Postgres and MongoDB implementations of it.
package users

import (
	"context"

	"github.com/dmitrijs2005/careerhub/internal/server/models"
)

// Repository stores and looks up user accounts. Email uniqueness is enforced
// by the backing store; a duplicate insert yields common.ErrorAlreadyExists.
type Repository interface {
	// Create inserts user and fills its timestamps from the store.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns common.ErrorNotFound when no account has the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns common.ErrorNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
