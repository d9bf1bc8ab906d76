package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"mindguard/internal/export"
)

// execer is the part of *pgxpool.Pool the exporter needs.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS mood_history (
	date_key      TEXT PRIMARY KEY,
	position      INTEGER NOT NULL,
	average_score DOUBLE PRECISION NOT NULL,
	entry_count   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS scored_entries (
	id         TEXT PRIMARY KEY,
	entry_text TEXT NOT NULL,
	score      INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS journal_entries (
	id              TEXT PRIMARY KEY,
	entry_text      TEXT NOT NULL,
	sentiment_score INTEGER NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL
);
`

// PostgresExporter copies a session snapshot into Postgres. It only
// writes; the session never reads back from the database.
type PostgresExporter struct {
	pool   execer
	logger *zap.Logger
}

func NewPostgresExporter(pool execer, logger *zap.Logger) *PostgresExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresExporter{
		pool:   pool,
		logger: logger,
	}
}

func (pe *PostgresExporter) EnsureSchema(ctx context.Context) error {
	op := "internal/storage/postgres.go EnsureSchema"

	if _, err := pe.pool.Exec(ctx, schemaSQL); err != nil {
		pe.logger.Error("Error with Exec method", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("%s: failed to create schema: %w", op, err)
	}
	return nil
}

func (pe *PostgresExporter) Export(ctx context.Context, snap export.Snapshot) error {
	op := "internal/storage/postgres.go Export"

	for i, agg := range snap.History {
		sql_query := `
		INSERT INTO mood_history (date_key, position, average_score, entry_count) VALUES ($1, $2, $3, $4)
		ON CONFLICT (date_key) DO UPDATE SET
		position = EXCLUDED.position,
		average_score = EXCLUDED.average_score,
		entry_count = EXCLUDED.entry_count
		`
		if _, err := pe.pool.Exec(ctx, sql_query, agg.DateKey, i, agg.AverageScore, agg.EntryCount); err != nil {
			return fmt.Errorf("%s: failed to save history %q: %w", op, agg.DateKey, err)
		}
	}

	for _, entry := range snap.Entries {
		sql_query := `
		INSERT INTO scored_entries (id, entry_text, score, created_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
		`
		if _, err := pe.pool.Exec(ctx, sql_query, entry.ID, entry.Text, entry.Score, entry.CreatedAt); err != nil {
			return fmt.Errorf("%s: failed to save entry %s: %w", op, entry.ID, err)
		}
	}

	for _, entry := range snap.Journal {
		sql_query := `
		INSERT INTO journal_entries (id, entry_text, sentiment_score, created_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
		`
		if _, err := pe.pool.Exec(ctx, sql_query, entry.ID, entry.Text, entry.SentimentScore, entry.CreatedAt); err != nil {
			return fmt.Errorf("%s: failed to save journal entry %s: %w", op, entry.ID, err)
		}
	}

	pe.logger.Info("snapshot exported to postgres",
		zap.Int("history", len(snap.History)),
		zap.Int("entries", len(snap.Entries)),
		zap.Int("journal", len(snap.Journal)))
	return nil
}
