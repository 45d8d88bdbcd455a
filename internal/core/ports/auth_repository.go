package ports

import (
	"context"

	"github.com/musicadmin/content-api/internal/core/domain"
)

// UserRepository defines persistence for admin accounts.
type UserRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create returns domain.ErrUserExists when the username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
