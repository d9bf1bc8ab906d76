package storage

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"mindguard/internal/models"
)

// DateKeyLayout renders a calendar day as "Apr 19". There is no year, so
// the same day in different years lands in the same bucket.
const DateKeyLayout = "Jan 2"

func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// RecordScore folds score into the aggregate for dateKey and returns the
// updated series. The input series is not modified.
func RecordScore(series models.HistorySeries, dateKey string, score int) models.HistorySeries {
	out := make(models.HistorySeries, len(series), len(series)+1)
	copy(out, series)

	for i, agg := range out {
		if agg.DateKey != dateKey {
			continue
		}
		count := float64(agg.EntryCount)
		out[i].AverageScore = (agg.AverageScore*count + float64(score)) / (count + 1)
		out[i].EntryCount = agg.EntryCount + 1
		return out
	}

	return append(out, models.DailyAggregate{
		DateKey:      dateKey,
		AverageScore: float64(score),
		EntryCount:   1,
	})
}

// DemoHistory is the sample week the chart starts with when seeding is on.
func DemoHistory() models.HistorySeries {
	return models.HistorySeries{
		{DateKey: "Apr 19", AverageScore: 3, EntryCount: 4},
		{DateKey: "Apr 20", AverageScore: 1, EntryCount: 2},
		{DateKey: "Apr 21", AverageScore: -2, EntryCount: 3},
		{DateKey: "Apr 22", AverageScore: 4, EntryCount: 5},
		{DateKey: "Apr 23", AverageScore: 2, EntryCount: 3},
	}
}

// HistoryStore owns the per-day series. Updates are serialized so the
// running mean stays exact when recordings race.
type HistoryStore struct {
	mu     sync.RWMutex
	series models.HistorySeries
	logger *zap.Logger
}

func NewHistoryStore(logger *zap.Logger, seed models.HistorySeries) *HistoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	series := make(models.HistorySeries, 0, len(seed))
	for _, agg := range seed {
		if agg.EntryCount < 1 {
			logger.Warn("dropping seed aggregate without entries", zap.String("date_key", agg.DateKey))
			continue
		}
		series = append(series, agg)
	}
	return &HistoryStore{series: series, logger: logger}
}

// Record folds a score into dateKey and returns the aggregate it landed in.
func (hs *HistoryStore) Record(dateKey string, score int) models.DailyAggregate {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	hs.series = RecordScore(hs.series, dateKey, score)

	for _, agg := range hs.series {
		if agg.DateKey == dateKey {
			hs.logger.Debug("history recorded",
				zap.String("date_key", dateKey),
				zap.Int("score", score),
				zap.Float64("average", agg.AverageScore),
				zap.Int("entries", agg.EntryCount))
			return agg
		}
	}
	return models.DailyAggregate{}
}

// Series returns a copy of the series in first-seen order.
func (hs *HistoryStore) Series() models.HistorySeries {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	out := make(models.HistorySeries, len(hs.series))
	copy(out, hs.series)
	return out
}

func (hs *HistoryStore) Len() int {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	return len(hs.series)
}
