package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/core/ports"
	"github.com/musicadmin/content-api/internal/pkg/security"
)

// AdminAccount is the account guaranteed to exist after bootstrap.
type AdminAccount struct {
	Username string
	Email    string
	Password string
}

// Bootstrapper seeds the default admin account.
//
// It is meant to run once from a single process at startup. Two processes
// racing will both try to insert; the unique index on username rejects the
// loser and EnsureAdmin treats that as success.
type Bootstrapper struct {
	repo    ports.UserRepository
	account AdminAccount
	logger  zerolog.Logger
	hash    func(string) (string, error)
}

func NewBootstrapper(repo ports.UserRepository, account AdminAccount, logger zerolog.Logger) *Bootstrapper {
	return &Bootstrapper{repo: repo, account: account, logger: logger, hash: security.HashPassword}
}

// EnsureAdmin creates the admin account if it is missing. It reports whether
// an account was created by this call.
func (b *Bootstrapper) EnsureAdmin(ctx context.Context) (bool, error) {
	log := b.logger.With().Str("username", b.account.Username).Logger()

	_, err := b.repo.FindByUsername(ctx, b.account.Username)
	if err == nil {
		log.Info().Msg("admin user already exists")
		return false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		log.Error().Err(err).Msg("failed to look up admin user")
		return false, fmt.Errorf("bootstrap: find admin: %w", err)
	}

	hash, err := b.hash(b.account.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash admin password")
		return false, fmt.Errorf("bootstrap: hash password: %w", err)
	}

	now := time.Now().UTC()
	_, err = b.repo.Create(ctx, &domain.User{
		Username:     b.account.Username,
		Email:        b.account.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	switch {
	case errors.Is(err, domain.ErrUserExists):
		log.Warn().Msg("admin user created concurrently, keeping existing account")
		return false, nil
	case err != nil:
		log.Error().Err(err).Msg("failed to create admin user")
		return false, fmt.Errorf("bootstrap: create admin: %w", err)
	}

	log.Info().Msg("default admin user created")
	return true, nil
}
