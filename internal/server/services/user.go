// Package services contains the server-side business logic. This file
// implements UserService: account registration and credential login.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/cmartinr/reservasalas/internal/common"
	"github.com/cmartinr/reservasalas/internal/server/auth"
	"github.com/cmartinr/reservasalas/internal/server/config"
	"github.com/cmartinr/reservasalas/internal/server/models"
	"github.com/cmartinr/reservasalas/internal/server/repositories/users"
)

// UserService provides authentication-related operations:
//   - Register: create an account with a bcrypt-hashed password
//   - Login: verify credentials and mint a session token
//
// Unexpected repository failures are returned untouched so the transport
// layer can surface the underlying message, which the API contract
// requires. Expected outcomes map to common sentinel errors.
type UserService struct {
	repo                        users.Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService. The signing secret comes from
// config at construction time; there is no package-level secret.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new account. An email that is already registered
// yields common.ErrorUserExists regardless of the submitted password.
func (s *UserService) Register(ctx context.Context, email, password string) error {

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return common.ErrorUserExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
	return err
}

// Login verifies the submitted credentials and returns a session token
// bound to the account's id. An unknown email and a wrong password both
// yield common.ErrorInvalidCredentials so account existence cannot be
// probed.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", err
	}

	ok, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		// Corrupt stored hash: an integrity fault, not a wrong password.
		return "", err
	}
	if !ok {
		return "", common.ErrorInvalidCredentials
	}

	return auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
}
