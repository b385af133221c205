package repository

import (
	"context"

	"github.com/kavia-common/gaming-database/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// InsertIfAbsent inserts the user unless a row already exists with the
	// same username OR the same email. Returns true when a row was inserted.
	InsertIfAbsent(ctx context.Context, user domain.User) (bool, error)

	// GetByUsername returns the user with the given username, or
	// domain.ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetIDByUsername resolves a username to its row ID, or
	// domain.ErrUserNotFound.
	GetIDByUsername(ctx context.Context, username string) (int64, error)

	// Count returns the number of users
	Count(ctx context.Context) (int, error)
}
