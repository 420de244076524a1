package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"geo-calc-service/internal/domain"
	"geo-calc-service/internal/platform/obs"
)

// SQLCalculationJournal appends calculation records to a Postgres table.
type SQLCalculationJournal struct {
	DB *sql.DB
}

func NewSQLCalculationJournal(db *sql.DB) *SQLCalculationJournal {
	return &SQLCalculationJournal{DB: db}
}

func (s *SQLCalculationJournal) Record(ctx context.Context, rec domain.CalculationRecord) (err error) {
	defer obs.Time(ctx, "journal.sql.Record")(&err)

	if s.DB == nil {
		return errors.New("calculation journal: db is nil")
	}

	if rec.Operation == "" {
		return errors.New("record calculation: operation must not be empty")
	}

	// unit_measure only applies to distance records.
	var unit sql.NullString
	if rec.Unit != "" {
		unit = sql.NullString{String: string(rec.Unit), Valid: true}
	}

	q := `
	INSERT INTO calculation_journal (
		request_id, operation, start_lat, start_long, end_lat, end_long,
		unit_measure, convert_negative_angle, result, calculated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err = s.DB.ExecContext(ctx, q,
		rec.RequestID,
		string(rec.Operation),
		rec.Start.Lat, rec.Start.Lon,
		rec.End.Lat, rec.End.Lon,
		unit,
		rec.Normalized,
		rec.Result,
		rec.CalculatedAt,
	)
	if err != nil {
		return fmt.Errorf("record calculation op=%s: insert calculation_journal: %w", rec.Operation, err)
	}

	return nil
}
