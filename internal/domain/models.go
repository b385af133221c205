package domain

import "time"

// AppInfo is a key/value metadata row. Keys are unique; values are
// replaced on conflict (last write wins).
type AppInfo struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// User is a platform player. Username and email are both unique.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	Locale      string    `json:"locale"`
	CreatedAt   time.Time `json:"created_at"`
}

// Game is a playable title. Code is a stable slug like "quiz_master".
type Game struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// GameScore records a single score a user achieved in a game.
// Rows cascade away when either parent is deleted.
type GameScore struct {
	ID        int64     `json:"id"`
	GameID    int64     `json:"game_id"`
	UserID    int64     `json:"user_id"`
	Score     int64     `json:"score"`
	Metadata  *string   `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaderboardEntry is one row of a per-game top-N query.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

// AnalyticsEvent is an append-only telemetry row. User and game
// references are optional and null out when the parent is deleted.
type AnalyticsEvent struct {
	ID         int64     `json:"id"`
	UserID     *int64    `json:"user_id,omitempty"`
	GameID     *int64    `json:"game_id,omitempty"`
	EventType  string    `json:"event_type"`
	EventProps *string   `json:"event_props,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
