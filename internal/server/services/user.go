// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and gating protected
// requests via access-token validation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/goboard/internal/common"
	"github.com/dmitrijs2005/goboard/internal/dbx"
	"github.com/dmitrijs2005/goboard/internal/server/auth"
	"github.com/dmitrijs2005/goboard/internal/server/config"
	"github.com/dmitrijs2005/goboard/internal/server/models"
	"github.com/dmitrijs2005/goboard/internal/server/repositories/repomanager"
)

// LoginResult bundles a freshly minted access token with the authenticated
// identity.
type LoginResult struct {
	AccessToken string
	User        *models.User
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint an access token
// - Authenticate: validate a token and re-resolve the identity
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	issuer      *auth.TokenIssuer
	validator   *auth.TokenValidator
}

// NewUserService constructs a UserService using repositories and server
// config. It fails when the token configuration is unusable (missing secret,
// unknown algorithm).
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*UserService, error) {
	issuer, err := auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.SigningAlgorithm, cfg.AccessTokenValidityDuration)
	if err != nil {
		return nil, err
	}
	validator, err := auth.NewTokenValidator([]byte(cfg.SecretKey), cfg.SigningAlgorithm)
	if err != nil {
		return nil, err
	}
	return &UserService{
		db:          db,
		repomanager: m,
		issuer:      issuer,
		validator:   validator,
	}, nil
}

// Register creates a new user. A username or email already taken yields
// common.ErrorConflict. The existence check runs before the hash so a
// duplicate registration never pays the bcrypt cost; it is only a fast path,
// the unique constraints on the users table decide races, surfacing as the
// same conflict error from Create.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {

	_, err := s.repomanager.Users(s.db).GetByUsernameOrEmail(ctx, username, email)
	if err == nil {
		return nil, common.ErrorConflict
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}

	// CPU-bound; keep it outside the transaction.
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var created *models.User
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err = s.repomanager.Users(tx).Create(ctx, &models.User{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
		})
		return err
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// Login verifies the provided credentials and, on success, returns a new
// access token plus the identity. Unknown username and wrong password both
// return common.ErrorUnauthorized with no distinguishing signal.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	token, err := s.issuer.Issue(user.Username)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{AccessToken: token, User: user}, nil
}

// Authenticate validates an access token and re-resolves its subject. A valid
// token whose user no longer exists is unauthorized; storage failures keep
// their own error category.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	subject, err := s.validator.Validate(tokenString)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
