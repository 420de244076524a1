package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for the calculation journal.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createJournalQuery := `
	CREATE TABLE IF NOT EXISTS calculation_journal (
		id BIGSERIAL PRIMARY KEY,
		request_id TEXT NOT NULL DEFAULT '',
		operation TEXT NOT NULL,
		start_lat DOUBLE PRECISION NOT NULL,
		start_long DOUBLE PRECISION NOT NULL,
		end_lat DOUBLE PRECISION NOT NULL,
		end_long DOUBLE PRECISION NOT NULL,
		unit_measure TEXT,
		convert_negative_angle BOOLEAN NOT NULL DEFAULT FALSE,
		result DOUBLE PRECISION NOT NULL,
		calculated_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_calculation_journal_operation_calculated_at
	ON calculation_journal(operation, calculated_at);
	`

	for _, q := range []string{createJournalQuery, createIndexQuery} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("init schema: exec statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
