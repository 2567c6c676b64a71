package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/careerhub/internal/common"
	"github.com/dmitrijs2005/careerhub/internal/dbx"
	"github.com/dmitrijs2005/careerhub/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation   = "23505"
	pgInvalidTextFormat = "22P02"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	expertise := user.Expertise
	if expertise == nil {
		expertise = []string{}
	}
	expertiseJSON, err := json.Marshal(expertise)
	if err != nil {
		return nil, fmt.Errorf("encode expertise: %w", err)
	}

	query :=
		`INSERT INTO users (id, name, email, password_hash, role, expertise, bio)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role.String(), expertiseJSON, user.Bio).
		Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: email %s", common.ErrorAlreadyExists, user.Email)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.Expertise = expertise
	return user, nil
}

const selectUser = `SELECT id, name, email, password_hash, role, expertise, bio, created_at, updated_at FROM users`

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE email = $1`, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE id = $1`, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	var (
		user      models.User
		role      string
		expertise []byte
	)

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &role, &expertise, &user.Bio,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		// a malformed uuid can never match a row
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextFormat {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if user.Role, err = models.ParseRole(role); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.Expertise = []string{}
	if len(expertise) > 0 {
		if err := json.Unmarshal(expertise, &user.Expertise); err != nil {
			return nil, fmt.Errorf("decode expertise: %w", err)
		}
	}

	return &user, nil
}
