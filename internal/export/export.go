// Package export turns a session into a portable snapshot for the
// "Export My Data" action.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"mindguard/internal/models"
)

type Snapshot struct {
	ExportedAt time.Time             `json:"exported_at"`
	History    models.HistorySeries  `json:"history"`
	Entries    []models.ScoredEntry  `json:"entries"`
	Journal    []models.JournalEntry `json:"journal"`
	Settings   models.Settings       `json:"settings"`
}

func WriteJSON(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("export: encode snapshot: %w", err)
	}
	return nil
}

// WriteFile writes the snapshot to path, replacing any previous export.
func WriteFile(path string, snap Snapshot) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("export: open %s: %w", path, err)
	}
	defer f.Close()

	return WriteJSON(f, snap)
}
