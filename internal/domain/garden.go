package domain

import "time"

// VisitEntry is one row of the visitable-gardens listing: another
// user's plant, summarized for discovery.
type VisitEntry struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	PlantName string    `json:"plant_name"`
	Stage     Stage     `json:"stage"`
	Score     int       `json:"score"`
	WateredAt time.Time `json:"watered_at"`
}

// LeaderboardEntry is one ranked row of the daily leaderboard. Entries
// are recomputed on demand from plant scores, never stored.
type LeaderboardEntry struct {
	Rank      int       `json:"rank"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	PlantName string    `json:"plant_name"`
	Score     int       `json:"score"`
	WateredAt time.Time `json:"watered_at"`
}
