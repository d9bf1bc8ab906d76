package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mindguard/internal/export"
	"mindguard/internal/ui"
)

func runInteractive(cmd *cobra.Command, args []string) error {
	session, err := buildSession(cfg, logger, noDelay)
	if err != nil {
		return err
	}

	exporter := func(snap export.Snapshot) (string, error) {
		return exportSnapshot(context.Background(), cfg, logger, snap)
	}

	model := ui.NewModel(session, exporter, logger, nil)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("ui exited with error", zap.Error(err))
		return err
	}
	return nil
}
