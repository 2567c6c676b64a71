package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/careerhub/internal/client/models"
	"github.com/dmitrijs2005/careerhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/careerhub/internal/dbx"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserID       = "user_id"
	keyUserName     = "user_name"
	keyUserEmail    = "user_email"
	keyUserRole     = "user_role"
)

var sessionKeys = []string{keyAccessToken, keyRefreshToken, keyUserID, keyUserName, keyUserEmail, keyUserRole}

var errNilSession = errors.New("session is nil")

// SQLiteStore keeps the session in the metadata table of the local database.
type SQLiteStore struct {
	db *sql.DB
	// repo binds the metadata repository to the db or to a transaction.
	repo func(dbx.DBTX) metadata.Repository
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db:   db,
		repo: func(db dbx.DBTX) metadata.Repository { return metadata.NewSQLiteRepository(db) },
	}
}

func (s *SQLiteStore) Load(ctx context.Context) (*models.Session, error) {
	values, err := s.repo(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	sess := &models.Session{
		AccessToken:  string(values[keyAccessToken]),
		RefreshToken: string(values[keyRefreshToken]),
		Identity: models.Identity{
			ID:    string(values[keyUserID]),
			Name:  string(values[keyUserName]),
			Email: string(values[keyUserEmail]),
			Role:  string(values[keyUserRole]),
		},
	}
	if !sess.Authenticated() {
		return nil, nil
	}
	return sess, nil
}

// Save replaces the cached session. All keys are written in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, sess *models.Session) error {
	if sess == nil {
		return errNilSession
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).SetAll(ctx, map[string][]byte{
			keyAccessToken:  []byte(sess.AccessToken),
			keyRefreshToken: []byte(sess.RefreshToken),
			keyUserID:       []byte(sess.Identity.ID),
			keyUserName:     []byte(sess.Identity.Name),
			keyUserEmail:    []byte(sess.Identity.Email),
			keyUserRole:     []byte(sess.Identity.Role),
		})
	})
}

func (s *SQLiteStore) UpdateTokens(ctx context.Context, accessToken, refreshToken string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).SetAll(ctx, map[string][]byte{
			keyAccessToken:  []byte(accessToken),
			keyRefreshToken: []byte(refreshToken),
		})
	})
}

// Clear removes the tokens and the identity together.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		for _, k := range sessionKeys {
			if err := repo.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
}
