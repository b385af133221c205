package provision

import "github.com/kavia-common/gaming-database/internal/domain"

// appInfoSeeds are upserted on every run (last write wins).
var appInfoSeeds = []domain.AppInfo{
	{Key: "project_name", Value: "gaming_database"},
	{Key: "version", Value: "1.0.0"},
	{Key: "author", Value: "MyGov Games Platform"},
	{Key: "description", Value: "SQLite store for users, games, leaderboards, analytics."},
}

// userSeeds are inserted only when neither the username nor the email is
// already taken.
var userSeeds = []domain.User{
	{Username: "alice", Email: "alice@example.com", DisplayName: "Alice", Locale: "en"},
	{Username: "bob", Email: "bob@example.com", DisplayName: "Bob", Locale: "en"},
	{Username: "chitra", Email: "chitra@example.in", DisplayName: "Chitra", Locale: "hi"},
}

// gameSeeds are inserted only when the code is not already registered.
var gameSeeds = []domain.Game{
	{Code: "quiz_master", Title: "Quiz Master", Description: "A general knowledge quiz game.", Category: "quiz", IsActive: true},
	{Code: "civic_challenge", Title: "Civic Challenge", Description: "Learn about governance through mini challenges.", Category: "education", IsActive: true},
	{Code: "swachh_run", Title: "Swachh Run", Description: "Endless runner promoting cleanliness awareness.", Category: "arcade", IsActive: true},
}

// scoreSeed references its parents by natural key; IDs are resolved at
// seed time and the row is skipped when either lookup fails.
type scoreSeed struct {
	GameCode string
	Username string
	Score    int64
}

var scoreSeeds = []scoreSeed{
	{GameCode: "quiz_master", Username: "alice", Score: 850},
	{GameCode: "quiz_master", Username: "bob", Score: 920},
	{GameCode: "civic_challenge", Username: "alice", Score: 1200},
	{GameCode: "civic_challenge", Username: "chitra", Score: 1100},
	{GameCode: "swachh_run", Username: "bob", Score: 3000},
}

// eventSeed is appended on every run; analytics rows accumulate.
type eventSeed struct {
	Username  string
	GameCode  string
	EventType string
	Props     string
}

var eventSeeds = []eventSeed{
	{Username: "alice", GameCode: "quiz_master", EventType: "game_start", Props: `{"difficulty":"medium"}`},
	{Username: "bob", GameCode: "quiz_master", EventType: "game_end", Props: `{"score":920}`},
	{Username: "chitra", GameCode: "civic_challenge", EventType: "level_complete", Props: `{"level":1}`},
}
