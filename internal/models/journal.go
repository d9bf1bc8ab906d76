package models

import (
	"time"
)

type JournalEntry struct {
	ID             string    `json:"id" db:"id"`
	Text           string    `json:"text" db:"entry_text"`
	SentimentScore int       `json:"sentiment_score" db:"sentiment_score"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
