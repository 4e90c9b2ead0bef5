package database

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS insight_reports (
	id              UUID PRIMARY KEY,
	view            TEXT NOT NULL,
	generated_at    TIMESTAMPTZ NOT NULL,
	sample_count    INTEGER NOT NULL,
	insights        JSONB NOT NULL,
	recommendations JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS insight_reports_generated_at_idx ON insight_reports (generated_at DESC);
`

func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return db, nil
}

// Migrate creates the archive table when missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
