package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindguard/internal/config"
	"mindguard/internal/export"
	"mindguard/internal/models"
)

func setupCLI(t *testing.T, c *config.Config) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	cfg = c
	noDelay = true
	analyzeJSON = false
	analyzeExport = false
	t.Cleanup(func() {
		cfg = nil
		noDelay = false
		analyzeJSON = false
		analyzeExport = false
	})

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	return cmd, &out
}

func TestRunAnalyze_Args(t *testing.T) {
	cmd, out := setupCLI(t, &config.Config{Theme: "dark"})

	err := runAnalyze(cmd, []string{"What a wonderful day", "I feel sad"})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Very Positive")
	assert.Contains(t, text, "words: wonderful")
	assert.Contains(t, text, "Negative")
	assert.Contains(t, text, "Daily average")
	assert.Contains(t, text, "(2)")
}

func TestRunAnalyze_StdinSkipsBlankLines(t *testing.T) {
	cmd, out := setupCLI(t, &config.Config{Theme: "dark"})
	cmd.SetIn(strings.NewReader("good\n\n   \nbad\n"))
	analyzeJSON = true

	require.NoError(t, runAnalyze(cmd, nil))

	var snap export.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "good", snap.Entries[0].Text)
	assert.Equal(t, 3, snap.Entries[0].Score)
	assert.Equal(t, -3, snap.Entries[1].Score)
	require.Len(t, snap.History, 1)
	assert.Equal(t, 0.0, snap.History[0].AverageScore)
}

func TestRunAnalyze_StdinLongLine(t *testing.T) {
	cmd, out := setupCLI(t, &config.Config{Theme: "dark"})
	long := strings.Repeat("good ", 20000)
	cmd.SetIn(strings.NewReader(long + "\nbad"))
	analyzeJSON = true

	require.NoError(t, runAnalyze(cmd, nil))

	var snap export.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, strings.TrimSpace(long), snap.Entries[0].Text)
	assert.Equal(t, 60000, snap.Entries[0].Score)
	assert.Equal(t, "bad", snap.Entries[1].Text)
}

func TestBuildSession_NormalizesTheme(t *testing.T) {
	tests := []struct {
		theme string
		want  models.Theme
	}{
		{"Light", models.ThemeLight},
		{" DARK ", models.ThemeDark},
		{"solarized", models.ThemeDark},
		{"", models.ThemeDark},
	}
	for _, tt := range tests {
		session, err := buildSession(&config.Config{Theme: tt.theme}, zap.NewNop(), true)
		require.NoError(t, err)
		assert.Equal(t, tt.want, session.Settings().Theme, "theme %q", tt.theme)
	}
}

func TestRunAnalyze_SeededHistory(t *testing.T) {
	cmd, out := setupCLI(t, &config.Config{Theme: "dark", SeedDemo: true})

	require.NoError(t, runAnalyze(cmd, []string{"ok"}))

	assert.Contains(t, out.String(), "Apr 19")
	assert.Contains(t, out.String(), "Apr 23")
}

func TestRunAnalyze_ExtraLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sunshine: 4\n"), 0600))
	cmd, out := setupCLI(t, &config.Config{Theme: "dark", LexiconPath: path})

	require.NoError(t, runAnalyze(cmd, []string{"sunshine"}))

	assert.Contains(t, out.String(), "score   4")
}

func TestRunAnalyze_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	cmd, _ := setupCLI(t, &config.Config{Theme: "dark", ExportPath: path})
	analyzeExport = true

	require.NoError(t, runAnalyze(cmd, []string{"happy"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap export.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Len(t, snap.Entries, 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 40))
	assert.Equal(t, "ab...", truncate("abc", 2))
}
