package models

// DailyAggregate is the running mean of every score recorded under one date key.
type DailyAggregate struct {
	DateKey      string  `json:"date" db:"date_key"`
	AverageScore float64 `json:"score" db:"average_score"`
	EntryCount   int     `json:"entries" db:"entry_count"`
}

// HistorySeries keeps aggregates in the order their date keys were first seen.
type HistorySeries []DailyAggregate
