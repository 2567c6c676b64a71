// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, the current-user lookup and
// issuing/refreshing JWTs plus server-stored refresh tokens.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/common"
	"github.com/dmitrijs2005/careerhub/internal/logging"
	"github.com/dmitrijs2005/careerhub/internal/server/auth"
	"github.com/dmitrijs2005/careerhub/internal/server/config"
	"github.com/dmitrijs2005/careerhub/internal/server/events"
	"github.com/dmitrijs2005/careerhub/internal/server/models"
	"github.com/dmitrijs2005/careerhub/internal/server/passwords"
	"github.com/dmitrijs2005/careerhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/careerhub/internal/server/throttle"
	"github.com/google/uuid"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterInput is the raw registration form. Role may be empty.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Tokens TokenPair
	User   *models.PublicUser
}

// Deps are the collaborators UserService needs besides storage.
type Deps struct {
	Hasher    passwords.Hasher
	Limiter   throttle.Limiter
	Publisher events.Publisher
	Logger    logging.Logger
}

// UserService provides the credential operations:
// - Register: create users
// - Login: verify credentials and mint tokens
// - GetCurrentUser: resolve an access token to the stored account
// - RefreshToken: rotate refresh tokens and mint new access tokens
// - Logout: revoke a refresh token
type UserService struct {
	repomanager                  repomanager.RepositoryManager
	hasher                       passwords.Hasher
	limiter                      throttle.Limiter
	publisher                    events.Publisher
	log                          logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	dummyHash                    string
	now                          func() time.Time
}

// NewUserService constructs a UserService using repositories and server config.
// Nil Limiter and Publisher fall back to no-op implementations.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config, deps Deps) (*UserService, error) {
	if deps.Hasher == nil {
		return nil, errors.New("password hasher is required")
	}
	if deps.Limiter == nil {
		deps.Limiter = throttle.Noop{}
	}
	if deps.Publisher == nil {
		deps.Publisher = events.Noop{}
	}

	// compared against when the email is unknown so both paths cost the same
	dummy, err := deps.Hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}

	return &UserService{
		repomanager:                  m,
		hasher:                       deps.Hasher,
		limiter:                      deps.Limiter,
		publisher:                    deps.Publisher,
		log:                          deps.Logger.With("module", "services.user"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		dummyHash:                    dummy,
		now:                          time.Now,
	}, nil
}

// Register validates in, creates the account and signs the user in.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)

	if name == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", common.ErrorValidation)
	}

	role, err := models.ParseRole(in.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	_, err = s.repomanager.Users().GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: user with this email already exists", common.ErrorAlreadyExists)
	case !errors.Is(err, common.ErrorNotFound):
		return nil, s.internal(ctx, "lookup by email", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, passwords.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
		}
		return nil, s.internal(ctx, "hash password", err)
	}

	var (
		user *models.User
		pair *TokenPair
	)
	err = s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		user, err = r.Users().Create(ctx, &models.User{
			ID:           uuid.NewString(),
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			Role:         role,
			Expertise:    []string{},
		})
		if err != nil {
			// a concurrent registration won the race on the unique index
			if errors.Is(err, common.ErrorAlreadyExists) {
				return fmt.Errorf("%w: user with this email already exists", common.ErrorAlreadyExists)
			}
			return s.internal(ctx, "create user", err)
		}

		pair, err = s.generateTokenPair(ctx, r, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID, "role", user.Role.String())

	ev := events.UserRegistered{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role.String(),
		At:     user.CreatedAt,
	}
	if err := s.publisher.PublishUserRegistered(ctx, ev); err != nil {
		s.log.Warn(ctx, "publish user.registered failed", "user_id", user.ID, "error", err)
	}

	return &AuthResult{Tokens: *pair, User: user.Public()}, nil
}

// Login verifies the credentials and returns a new TokenPair. Unknown email
// and wrong password produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	allowed, err := s.limiter.Allow(ctx, email)
	if err != nil {
		s.log.Warn(ctx, "login throttle unavailable", "error", err)
		allowed = true
	}
	if !allowed {
		return nil, common.ErrTooManyAttempts
	}

	user, err := s.repomanager.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = s.hasher.Compare(s.dummyHash, password)
			s.recordFailure(ctx, email)
			return nil, common.ErrorUnauthorized
		}
		return nil, s.internal(ctx, "lookup by email", err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return nil, s.internal(ctx, "compare password", err)
	}
	if !ok {
		s.recordFailure(ctx, email)
		return nil, common.ErrorUnauthorized
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.log.Warn(ctx, "reset login throttle", "error", err)
	}

	pair, err := s.generateTokenPair(ctx, s.repomanager, user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Tokens: *pair, User: user.Public()}, nil
}

// GetCurrentUser verifies accessToken and returns a fresh read of the account
// it is bound to.
func (s *UserService) GetCurrentUser(ctx context.Context, accessToken string) (*models.PublicUser, error) {
	if accessToken == "" {
		return nil, common.ErrMissingToken
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", common.ErrorNotFound)
		}
		return nil, s.internal(ctx, "lookup by id", err)
	}

	return user.Public(), nil
}

// RefreshToken redeems a refresh token and returns a fresh TokenPair. The
// token is consumed and its replacement stored in one transaction, so each
// token can be redeemed once. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, common.ErrMissingToken
	}
	tokenHash := hashToken(refreshToken)

	var (
		pair    *TokenPair
		expired bool
	)
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		token, err := r.RefreshTokens().Consume(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return s.internal(ctx, "consume refresh token", err)
		}

		// commit so the expired row stays deleted
		if token.Expires.Before(s.now()) {
			expired = true
			return nil
		}

		pair, err = s.generateTokenPair(ctx, r, token.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, common.ErrRefreshTokenExpired
	}
	return pair, nil
}

// Logout revokes refreshToken. Unknown tokens are ignored.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return fmt.Errorf("%w: refresh token is required", common.ErrorValidation)
	}
	if err := s.repomanager.RefreshTokens().Delete(ctx, hashToken(refreshToken)); err != nil {
		return s.internal(ctx, "delete refresh token", err)
	}
	return nil
}

// --- helpers below ---

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *UserService) recordFailure(ctx context.Context, email string) {
	if err := s.limiter.Fail(ctx, email); err != nil {
		s.log.Warn(ctx, "record failed login", "error", err)
	}
}

// internal logs err and returns the generic error callers are allowed to see.
func (s *UserService) internal(ctx context.Context, op string, err error) error {
	s.log.Error(ctx, op, "error", err)
	return common.ErrorInternal
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, r repomanager.Repositories, userID string) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, s.internal(ctx, "sign access token", err)
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, s.internal(ctx, "generate refresh token", err)
	}
	if err := r.RefreshTokens().Create(ctx, userID, hashToken(refresh), s.refreshTokenValidityDuration); err != nil {
		return nil, s.internal(ctx, "store refresh token", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
