package models

import "time"

// LeaderboardEntry records a finished match: the winning team's name and
// final score. Append-only except for explicit admin deletion.
type LeaderboardEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TeamName  string    `gorm:"size:100;not null" json:"team_name"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
