package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindguard/internal/models"
)

func TestEntryLog_AppendFillsIDAndTime(t *testing.T) {
	log := NewEntryLog(nil)

	a := log.Append(models.ScoredEntry{Text: "first", Score: 1})
	b := log.Append(models.ScoredEntry{Text: "second", Score: -1})

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Equal(t, 2, log.Len())
}

func TestEntryLog_KeepsGivenIDAndTime(t *testing.T) {
	log := NewEntryLog(nil)
	at := time.Date(2026, time.April, 19, 8, 0, 0, 0, time.UTC)

	got := log.Append(models.ScoredEntry{ID: "fixed", Text: "x", CreatedAt: at})

	assert.Equal(t, "fixed", got.ID)
	assert.Equal(t, at, got.CreatedAt)
}

func TestEntryLog_RecentNewestFirst(t *testing.T) {
	log := NewEntryLog(nil)
	for _, text := range []string{"a", "b", "c", "d"} {
		log.Append(models.ScoredEntry{Text: text})
	}

	texts := func(entries []models.ScoredEntry) []string {
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Text)
		}
		return out
	}

	assert.Equal(t, []string{"d", "c", "b"}, texts(log.Recent(3)))
	assert.Equal(t, []string{"d", "c", "b", "a"}, texts(log.Recent(0)))
	assert.Equal(t, []string{"d", "c", "b", "a"}, texts(log.Recent(10)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, texts(log.All()))
}

func TestJournalStorage_CreateEntry(t *testing.T) {
	js := NewJournalStorage(nil)

	entry := &models.JournalEntry{Text: "Today was calm", SentimentScore: 2}
	require.NoError(t, js.CreateEntry(entry))

	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.Equal(t, []models.JournalEntry{*entry}, js.All())
}

func TestJournalStorage_RejectsBlankText(t *testing.T) {
	js := NewJournalStorage(nil)

	err := js.CreateEntry(&models.JournalEntry{Text: "  \n\t"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBlankText))
	assert.Equal(t, 0, js.Len())
}

func TestJournalStorage_GetEntriesLimit(t *testing.T) {
	js := NewJournalStorage(nil)
	for _, text := range []string{"one", "two", "three"} {
		require.NoError(t, js.CreateEntry(&models.JournalEntry{Text: text}))
	}

	got := js.GetEntries(2)
	require.Len(t, got, 2)
	assert.Equal(t, "three", got[0].Text)
	assert.Equal(t, "two", got[1].Text)
}

func TestSettingsStore_Toggles(t *testing.T) {
	ss := NewSettingsStore(models.Settings{Notifications: true})
	assert.Equal(t, models.ThemeDark, ss.Get().Theme)

	assert.False(t, ss.ToggleNotifications().Notifications)
	assert.Equal(t, models.ThemeLight, ss.ToggleTheme().Theme)
	assert.Equal(t, models.ThemeDark, ss.ToggleTheme().Theme)
}

func TestSettingsStore_UnknownThemeFallsBack(t *testing.T) {
	ss := NewSettingsStore(models.Settings{Theme: "Light"})
	assert.Equal(t, models.ThemeLight, ss.Get().Theme)
	assert.Equal(t, models.ThemeDark, ss.ToggleTheme().Theme)

	ss = NewSettingsStore(models.Settings{Theme: "sepia"})
	assert.Equal(t, models.ThemeDark, ss.Get().Theme)
	assert.Equal(t, models.ThemeLight, ss.ToggleTheme().Theme)
}
