package storage

import (
	"sync"

	"mindguard/internal/models"
)

type SettingsStore struct {
	mu       sync.RWMutex
	settings models.Settings
}

func NewSettingsStore(initial models.Settings) *SettingsStore {
	initial.Theme = models.ParseTheme(string(initial.Theme))
	return &SettingsStore{settings: initial}
}

func (ss *SettingsStore) Get() models.Settings {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.settings
}

func (ss *SettingsStore) ToggleNotifications() models.Settings {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.settings.Notifications = !ss.settings.Notifications
	return ss.settings
}

func (ss *SettingsStore) ToggleTheme() models.Settings {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.settings.Theme == models.ThemeDark {
		ss.settings.Theme = models.ThemeLight
	} else {
		ss.settings.Theme = models.ThemeDark
	}
	return ss.settings
}
