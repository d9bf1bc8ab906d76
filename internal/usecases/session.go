package usecases

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"mindguard/internal/export"
	"mindguard/internal/models"
	"mindguard/internal/mood"
	"mindguard/internal/sentiment"
	"mindguard/internal/storage"
)

var ErrEmptyText = errors.New("text is empty")

// Delays emulate scoring latency. A started operation always waits the
// full delay and then commits; there is no way to cancel it.
type Delays struct {
	Analyze time.Duration
	Journal time.Duration
}

type AnalysisResult struct {
	Sentiment  sentiment.Result      `json:"sentiment"`
	Entry      models.ScoredEntry    `json:"entry"`
	Day        models.DailyAggregate `json:"day"`
	Mood       models.Mood           `json:"mood"`
	Suggestion string                `json:"suggestion"`
}

// Session ties the per-entity stores of one user session together.
type Session struct {
	analyzer sentiment.Analyzer
	history  *storage.HistoryStore
	entries  *storage.EntryLog
	journal  *storage.JournalStorage
	settings *storage.SettingsStore
	delays   Delays
	now      func() time.Time
	wait     func(time.Duration)
	logger   *zap.Logger
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithWait replaces the function used to sit out the delays.
func WithWait(wait func(time.Duration)) Option {
	return func(s *Session) { s.wait = wait }
}

func WithSeedHistory(seed models.HistorySeries) Option {
	return func(s *Session) { s.history = storage.NewHistoryStore(s.logger, seed) }
}

func WithSettings(settings models.Settings) Option {
	return func(s *Session) { s.settings = storage.NewSettingsStore(settings) }
}

func NewSession(analyzer sentiment.Analyzer, delays Delays, logger *zap.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		analyzer: analyzer,
		entries:  storage.NewEntryLog(logger),
		journal:  storage.NewJournalStorage(logger),
		delays:   delays,
		now:      time.Now,
		wait:     time.Sleep,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.history == nil {
		s.history = storage.NewHistoryStore(logger, nil)
	}
	if s.settings == nil {
		s.settings = storage.NewSettingsStore(models.Settings{Notifications: true, Theme: models.ThemeDark})
	}
	return s
}

// Analyze scores text after the analyze delay, folds the score into
// today's aggregate and appends it to the entry log.
func (s *Session) Analyze(text string) (AnalysisResult, error) {
	op := "internal/usecases/session.go Analyze"

	if strings.TrimSpace(text) == "" {
		return AnalysisResult{}, fmt.Errorf("%s: %w", op, ErrEmptyText)
	}

	s.wait(s.delays.Analyze)

	res := s.analyzer.Analyze(text)
	now := s.now()

	day := s.history.Record(storage.DateKey(now), res.Score)
	entry := s.entries.Append(models.ScoredEntry{
		Text:      text,
		Score:     res.Score,
		CreatedAt: now,
	})

	s.logger.Info("text analyzed",
		zap.String("op", op),
		zap.String("entry_id", entry.ID),
		zap.Int("score", res.Score),
		zap.String("date_key", day.DateKey))

	return AnalysisResult{
		Sentiment:  res,
		Entry:      entry,
		Day:        day,
		Mood:       mood.Classify(res.Score),
		Suggestion: mood.Suggest(res.Score),
	}, nil
}

// SaveJournal scores a journal entry after the journal delay and stores it.
// Journal entries do not feed the history chart.
func (s *Session) SaveJournal(text string) (models.JournalEntry, error) {
	op := "internal/usecases/session.go SaveJournal"

	if strings.TrimSpace(text) == "" {
		return models.JournalEntry{}, fmt.Errorf("%s: %w", op, ErrEmptyText)
	}

	s.wait(s.delays.Journal)

	res := s.analyzer.Analyze(text)
	entry := models.JournalEntry{
		Text:           text,
		SentimentScore: res.Score,
		CreatedAt:      s.now(),
	}
	if err := s.journal.CreateEntry(&entry); err != nil {
		s.logger.Error("journal save failed", zap.String("op", op), zap.Error(err))
		return models.JournalEntry{}, fmt.Errorf("%s: %w", op, err)
	}

	s.logger.Info("journal entry saved",
		zap.String("op", op),
		zap.String("entry_id", entry.ID),
		zap.Int("score", entry.SentimentScore))
	return entry, nil
}

func (s *Session) History() models.HistorySeries {
	return s.history.Series()
}

func (s *Session) Entries() []models.ScoredEntry {
	return s.entries.All()
}

// RecentEntries returns the last n analyses, newest first.
func (s *Session) RecentEntries(n int) []models.ScoredEntry {
	return s.entries.Recent(n)
}

// Journal returns journal entries newest first.
func (s *Session) Journal() []models.JournalEntry {
	return s.journal.GetEntries(0)
}

func (s *Session) Settings() models.Settings {
	return s.settings.Get()
}

func (s *Session) ToggleNotifications() models.Settings {
	return s.settings.ToggleNotifications()
}

func (s *Session) ToggleTheme() models.Settings {
	return s.settings.ToggleTheme()
}

func (s *Session) Snapshot() export.Snapshot {
	return export.Snapshot{
		ExportedAt: s.now(),
		History:    s.history.Series(),
		Entries:    s.entries.All(),
		Journal:    s.journal.All(),
		Settings:   s.settings.Get(),
	}
}
