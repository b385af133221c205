package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kavia-common/gaming-database/internal/domain"
	"github.com/kavia-common/gaming-database/internal/repository"
)

type userRepository struct {
	db repository.Executor
}

// NewUserRepository creates a new SQLite user repository
func NewUserRepository(db repository.Executor) repository.User {
	return &userRepository{db: db}
}

// InsertIfAbsent inserts the user unless the username or email is already
// taken. Guarding on both fields independently avoids partial unique
// constraint collisions when only one of them matches an existing row.
func (r *userRepository) InsertIfAbsent(ctx context.Context, user domain.User) (bool, error) {
	query := `
		INSERT INTO users (username, email, display_name, avatar_url, locale)
		SELECT ?, ?, ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM users WHERE username = ? OR email = ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		user.Username, user.Email, user.DisplayName, nullString(user.AvatarURL), user.Locale,
		user.Username, user.Email)
	if err != nil {
		return false, fmt.Errorf("failed to insert user %q: %w", user.Username, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

// GetByUsername returns the user with the given username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, email, display_name, avatar_url, locale, created_at
		FROM users WHERE username = ?
	`

	var (
		user        domain.User
		displayName sql.NullString
		avatarURL   sql.NullString
		createdAt   string
	)
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &displayName, &avatarURL, &user.Locale, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}

	user.DisplayName = displayName.String
	user.AvatarURL = ptrString(avatarURL)
	user.CreatedAt = parseTimestamp(createdAt)
	return &user, nil
}

// GetIDByUsername resolves a username to its row ID
func (r *userRepository) GetIDByUsername(ctx context.Context, username string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM users WHERE username = ?`, username).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve user %q: %w", username, err)
	}
	return id, nil
}

// Count returns the number of users
func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
