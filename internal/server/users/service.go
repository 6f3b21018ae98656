// Package users implements account registration, credential verification,
// token issuance, and profile-owner operations.
package users

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/linkhub/internal/common"
	"github.com/dmitrijs2005/linkhub/internal/logging"
	"github.com/dmitrijs2005/linkhub/internal/server/auth"
	"github.com/dmitrijs2005/linkhub/internal/server/config"
)

type Service struct {
	repo                  Repository
	logger                logging.Logger
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		logger:                logger.With("module", "users"),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account. The password is bcrypt-hashed before it
// reaches the repository and is never logged. Duplicate usernames or emails
// surface as common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {

	if username == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		s.logger.Error(ctx, "error creating user", "error", err.Error())
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user registered", "username", user.Username)

	return user, nil
}

// Login verifies the email/password pair and, on success, issues a signed
// bearer token. An unknown email yields common.ErrorNotFound, a password
// mismatch common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		s.logger.Error(ctx, "error looking up user", "error", err.Error())
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetCurrentUser resolves a verified identity to its account record.
// The returned copy never carries the password hash.
func (s *Service) GetCurrentUser(ctx context.Context, id string) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	user.PasswordHash = ""
	return user, nil
}

// UpdateBio overwrites the caller's bio.
func (s *Service) UpdateBio(ctx context.Context, id string, bio string) error {
	err := s.repo.UpdateBio(ctx, id, bio)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}
