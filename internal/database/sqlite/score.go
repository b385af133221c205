package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kavia-common/gaming-database/internal/domain"
	"github.com/kavia-common/gaming-database/internal/repository"
)

type scoreRepository struct {
	db repository.Executor
}

// NewScoreRepository creates a new SQLite game score repository
func NewScoreRepository(db repository.Executor) repository.Score {
	return &scoreRepository{db: db}
}

// InsertIfAbsent inserts the score unless the exact (game, user, score)
// triple already exists
func (r *scoreRepository) InsertIfAbsent(ctx context.Context, score domain.GameScore) (bool, error) {
	query := `
		INSERT INTO game_scores (game_id, user_id, score, metadata)
		SELECT ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM game_scores WHERE game_id = ? AND user_id = ? AND score = ?
		)
	`

	res, err := r.db.ExecContext(ctx, query,
		score.GameID, score.UserID, score.Score, nullString(score.Metadata),
		score.GameID, score.UserID, score.Score)
	if err != nil {
		return false, fmt.Errorf("failed to insert score: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

// GetScore returns the score a user achieved in a game, resolved by
// natural keys
func (r *scoreRepository) GetScore(ctx context.Context, gameCode, username string) (*domain.GameScore, error) {
	query := `
		SELECT s.id, s.game_id, s.user_id, s.score, s.metadata, s.created_at
		FROM game_scores s
		JOIN games g ON g.id = s.game_id
		JOIN users u ON u.id = s.user_id
		WHERE g.code = ? AND u.username = ?
		ORDER BY s.score DESC
		LIMIT 1
	`

	var (
		score     domain.GameScore
		metadata  sql.NullString
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, query, gameCode, username).Scan(
		&score.ID, &score.GameID, &score.UserID, &score.Score, &metadata, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no score for game %q and user %q: %w", gameCode, username, sql.ErrNoRows)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	score.Metadata = ptrString(metadata)
	score.CreatedAt = parseTimestamp(createdAt)
	return &score, nil
}

// TopScores returns the highest scores for a game, best first. The
// composite (game_id, user_id, score DESC) index keeps this off a full
// table scan.
func (r *scoreRepository) TopScores(ctx context.Context, gameID int64, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT u.username, s.score
		FROM game_scores s
		JOIN users u ON u.id = s.user_id
		WHERE s.game_id = ?
		ORDER BY s.score DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top scores: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		if err := rows.Scan(&entry.Username, &entry.Score); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top scores: %w", err)
	}
	return entries, nil
}

// Count returns the number of scores
func (r *scoreRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM game_scores`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scores: %w", err)
	}
	return count, nil
}
