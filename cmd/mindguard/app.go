package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"mindguard/internal/config"
	"mindguard/internal/export"
	"mindguard/internal/models"
	"mindguard/internal/sentiment"
	"mindguard/internal/storage"
	"mindguard/internal/usecases"
)

func buildSession(cfg *config.Config, logger *zap.Logger, skipDelay bool) (*usecases.Session, error) {
	lex, err := sentiment.DefaultLexicon()
	if err != nil {
		return nil, err
	}
	if cfg.LexiconPath != "" {
		extra, err := sentiment.LoadLexicon(cfg.LexiconPath)
		if err != nil {
			return nil, err
		}
		lex.Merge(extra)
		logger.Info("extra lexicon loaded", zap.String("path", cfg.LexiconPath), zap.Int("words", len(extra)))
	}

	delays := usecases.Delays{Analyze: cfg.AnalyzeDelay, Journal: cfg.JournalDelay}
	if skipDelay {
		delays = usecases.Delays{}
	}

	opts := []usecases.Option{
		usecases.WithSettings(models.Settings{
			Notifications: cfg.Notifications,
			Theme:         models.ParseTheme(cfg.Theme),
		}),
	}
	if cfg.SeedDemo {
		opts = append(opts, usecases.WithSeedHistory(storage.DemoHistory()))
	}

	return usecases.NewSession(sentiment.NewLexiconAnalyzer(lex), delays, logger, opts...), nil
}

// exportSnapshot writes the JSON export and, with a DSN configured, copies
// the snapshot into Postgres as well.
func exportSnapshot(ctx context.Context, cfg *config.Config, logger *zap.Logger, snap export.Snapshot) (string, error) {
	if err := export.WriteFile(cfg.ExportPath, snap); err != nil {
		return "", err
	}
	dest := cfg.ExportPath

	if cfg.PostgresDSN == "" {
		return dest, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return dest, fmt.Errorf("unable to connect to db: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return dest, fmt.Errorf("unable to ping db: %w", err)
	}

	pe := storage.NewPostgresExporter(pool, logger)
	if err := pe.EnsureSchema(ctx); err != nil {
		return dest, err
	}
	if err := pe.Export(ctx, snap); err != nil {
		return dest, err
	}
	return dest + " and postgres", nil
}
