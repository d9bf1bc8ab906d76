package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mindguard/internal/models"
)

// EntryLog is the append-only list of analyzed submissions.
type EntryLog struct {
	mu      sync.RWMutex
	entries []models.ScoredEntry
	logger  *zap.Logger
}

func NewEntryLog(logger *zap.Logger) *EntryLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntryLog{logger: logger}
}

// Append stores entry, filling in a missing ID or timestamp, and returns
// the stored value.
func (el *EntryLog) Append(entry models.ScoredEntry) models.ScoredEntry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	el.mu.Lock()
	el.entries = append(el.entries, entry)
	el.mu.Unlock()

	el.logger.Debug("entry appended", zap.String("id", entry.ID), zap.Int("score", entry.Score))
	return entry
}

// All returns the log in insertion order.
func (el *EntryLog) All() []models.ScoredEntry {
	el.mu.RLock()
	defer el.mu.RUnlock()

	out := make([]models.ScoredEntry, len(el.entries))
	copy(out, el.entries)
	return out
}

// Recent returns up to limit entries, newest first. A limit <= 0 returns all.
func (el *EntryLog) Recent(limit int) []models.ScoredEntry {
	el.mu.RLock()
	defer el.mu.RUnlock()

	return newestFirst(el.entries, limit)
}

func (el *EntryLog) Len() int {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return len(el.entries)
}

func newestFirst[T any](items []T, limit int) []T {
	n := len(items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]T, 0, n)
	for i := len(items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, items[i])
	}
	return out
}
