package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mindguard/internal/models"
)

type JournalStorage struct {
	mu      sync.RWMutex
	entries []models.JournalEntry
	logger  *zap.Logger
}

func NewJournalStorage(logger *zap.Logger) *JournalStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JournalStorage{logger: logger}
}

func (js *JournalStorage) CreateEntry(entry *models.JournalEntry) error {
	op := "internal/storage/journal.go CreateEntry"

	if strings.TrimSpace(entry.Text) == "" {
		return fmt.Errorf("Failure to create entry in %s: %w", op, ErrBlankText)
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	js.mu.Lock()
	js.entries = append(js.entries, *entry)
	js.mu.Unlock()

	js.logger.Debug("journal entry created", zap.String("op", op), zap.String("id", entry.ID))
	return nil
}

// GetEntries returns up to limit entries, newest first. A limit <= 0
// returns every entry.
func (js *JournalStorage) GetEntries(limit int) []models.JournalEntry {
	js.mu.RLock()
	defer js.mu.RUnlock()

	return newestFirst(js.entries, limit)
}

// All returns the journal in the order entries were written.
func (js *JournalStorage) All() []models.JournalEntry {
	js.mu.RLock()
	defer js.mu.RUnlock()

	out := make([]models.JournalEntry, len(js.entries))
	copy(out, js.entries)
	return out
}

func (js *JournalStorage) Len() int {
	js.mu.RLock()
	defer js.mu.RUnlock()
	return len(js.entries)
}
