package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavia-common/gaming-database/internal/database"
	"github.com/kavia-common/gaming-database/internal/database/schema"
	"github.com/kavia-common/gaming-database/internal/domain"
)

// setupTestDB creates a fresh database with the full schema in a temp dir
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(schema.SchemaSQL)
	require.NoError(t, err)
	return db
}

func TestAppInfoUpsert(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewAppInfoRepository(db)

	require.NoError(t, repo.Upsert(ctx, "version", "1.0.0"))
	require.NoError(t, repo.Upsert(ctx, "version", "1.0.1"))

	info, err := repo.Get(ctx, "version")
	require.NoError(t, err)
	assert.Equal(t, "1.0.1", info.Value, "last write wins")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "upsert must not duplicate keys")
}

func TestUserInsertIfAbsent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	alice := domain.User{Username: "alice", Email: "alice@example.com", DisplayName: "Alice", Locale: "en"}

	inserted, err := repo.InsertIfAbsent(ctx, alice)
	require.NoError(t, err)
	assert.True(t, inserted)

	// Same username, different email: still absent-guarded.
	inserted, err = repo.InsertIfAbsent(ctx, domain.User{Username: "alice", Email: "other@example.com", Locale: "en"})
	require.NoError(t, err)
	assert.False(t, inserted, "username collision must be skipped")

	// Different username, same email.
	inserted, err = repo.InsertIfAbsent(ctx, domain.User{Username: "alicia", Email: "alice@example.com", Locale: "en"})
	require.NoError(t, err)
	assert.False(t, inserted, "email collision must be skipped")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserGetByUsername(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	_, err := repo.InsertIfAbsent(ctx, domain.User{Username: "bob", Email: "bob@example.com", DisplayName: "Bob", Locale: "en"})
	require.NoError(t, err)

	user, err := repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, "Bob", user.DisplayName)
	assert.Nil(t, user.AvatarURL)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetIDByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGameInsertIfAbsent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewGameRepository(db)

	quiz := domain.Game{Code: "quiz_master", Title: "Quiz Master", Category: "quiz", IsActive: true}

	inserted, err := repo.InsertIfAbsent(ctx, quiz)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertIfAbsent(ctx, quiz)
	require.NoError(t, err)
	assert.False(t, inserted, "duplicate code must be skipped")

	game, err := repo.GetByCode(ctx, "quiz_master")
	require.NoError(t, err)
	assert.True(t, game.IsActive)
	assert.Equal(t, "Quiz Master", game.Title)

	_, err = repo.GetByCode(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
}

func TestScoreInsertIfAbsentAndTopScores(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	games := NewGameRepository(db)
	scores := NewScoreRepository(db)

	_, err := users.InsertIfAbsent(ctx, domain.User{Username: "alice", Email: "alice@example.com", Locale: "en"})
	require.NoError(t, err)
	_, err = users.InsertIfAbsent(ctx, domain.User{Username: "bob", Email: "bob@example.com", Locale: "en"})
	require.NoError(t, err)
	_, err = games.InsertIfAbsent(ctx, domain.Game{Code: "quiz_master", Title: "Quiz Master", IsActive: true})
	require.NoError(t, err)

	aliceID, err := users.GetIDByUsername(ctx, "alice")
	require.NoError(t, err)
	bobID, err := users.GetIDByUsername(ctx, "bob")
	require.NoError(t, err)
	gameID, err := games.GetIDByCode(ctx, "quiz_master")
	require.NoError(t, err)

	inserted, err := scores.InsertIfAbsent(ctx, domain.GameScore{GameID: gameID, UserID: aliceID, Score: 850})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = scores.InsertIfAbsent(ctx, domain.GameScore{GameID: gameID, UserID: bobID, Score: 920})
	require.NoError(t, err)
	assert.True(t, inserted)

	// Exact triple already present.
	inserted, err = scores.InsertIfAbsent(ctx, domain.GameScore{GameID: gameID, UserID: bobID, Score: 920})
	require.NoError(t, err)
	assert.False(t, inserted)

	// A different score for the same pair is a new row.
	inserted, err = scores.InsertIfAbsent(ctx, domain.GameScore{GameID: gameID, UserID: bobID, Score: 1000})
	require.NoError(t, err)
	assert.True(t, inserted)

	top, err := scores.TopScores(ctx, gameID, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, domain.LeaderboardEntry{Username: "bob", Score: 1000}, top[0])
	assert.Equal(t, domain.LeaderboardEntry{Username: "bob", Score: 920}, top[1])
}

func TestScoreForeignKeysEnforced(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	scores := NewScoreRepository(db)

	// No users or games exist; with PRAGMA foreign_keys=ON this must fail.
	// The WHERE NOT EXISTS guard matches nothing, so force a direct insert.
	_, err := db.ExecContext(ctx,
		`INSERT INTO game_scores (game_id, user_id, score) VALUES (999, 999, 1)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY")

	count, err := scores.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestScoreCascadeDelete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	games := NewGameRepository(db)
	scores := NewScoreRepository(db)

	_, err := users.InsertIfAbsent(ctx, domain.User{Username: "alice", Email: "alice@example.com", Locale: "en"})
	require.NoError(t, err)
	_, err = games.InsertIfAbsent(ctx, domain.Game{Code: "quiz_master", Title: "Quiz Master", IsActive: true})
	require.NoError(t, err)

	userID, err := users.GetIDByUsername(ctx, "alice")
	require.NoError(t, err)
	gameID, err := games.GetIDByCode(ctx, "quiz_master")
	require.NoError(t, err)

	_, err = scores.InsertIfAbsent(ctx, domain.GameScore{GameID: gameID, UserID: userID, Score: 850})
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	require.NoError(t, err)

	count, err := scores.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "scores must cascade away with their user")
}

func TestAnalyticsInsertAllowsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	analytics := NewAnalyticsRepository(db)

	props := `{"difficulty":"medium"}`
	event := domain.AnalyticsEvent{EventType: "game_start", EventProps: &props}

	require.NoError(t, analytics.Insert(ctx, event))
	require.NoError(t, analytics.Insert(ctx, event))

	count, err := analytics.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "analytics events are append-only")
}

func TestAnalyticsSetNullOnParentDelete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	analytics := NewAnalyticsRepository(db)

	_, err := users.InsertIfAbsent(ctx, domain.User{Username: "chitra", Email: "chitra@example.in", Locale: "hi"})
	require.NoError(t, err)
	userID, err := users.GetIDByUsername(ctx, "chitra")
	require.NoError(t, err)

	require.NoError(t, analytics.Insert(ctx, domain.AnalyticsEvent{UserID: &userID, EventType: "game_start"}))

	_, err = db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	require.NoError(t, err)

	var got sql.NullInt64
	err = db.QueryRowContext(ctx, `SELECT user_id FROM analytics_events`).Scan(&got)
	require.NoError(t, err)
	assert.False(t, got.Valid, "user reference must null out, not cascade")

	count, err := analytics.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetScoreMissingRow(t *testing.T) {
	db := setupTestDB(t)
	scores := NewScoreRepository(db)

	_, err := scores.GetScore(context.Background(), "quiz_master", "bob")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
