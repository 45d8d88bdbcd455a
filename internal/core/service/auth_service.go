package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/core/ports"
	"github.com/musicadmin/content-api/internal/pkg/security"
)

// TokenIssuer signs identity tokens for authenticated users.
type TokenIssuer interface {
	Issue(subjectID, username string) (string, error)
}

// AuthService implements login against the admin credential store.
type AuthService struct {
	repo   ports.UserRepository
	tokens TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login verifies the credentials and returns a signed token. An unknown
// username and a wrong password both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info().Str("username", username).Msg("login rejected: unknown user")
			return "", nil, domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("username", username).Msg("login lookup failed")
		return "", nil, err
	}

	if !security.CheckPassword(user.PasswordHash, password) {
		s.logger.Info().Str("username", username).Msg("login rejected: wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("token signing failed")
		return "", nil, err
	}

	s.logger.Info().Str("username", username).Msg("login succeeded")
	return token, user, nil
}
