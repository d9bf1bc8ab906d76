package models

import (
	"time"
)

// ScoredEntry is one analyzed submission from the dashboard.
type ScoredEntry struct {
	ID        string    `json:"id" db:"id"`
	Text      string    `json:"text" db:"entry_text"`
	Score     int       `json:"score" db:"score"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
