package journal

import (
	"context"
	"geo-calc-service/internal/domain"
)

// NopJournal discards every record. Used when no journal backend is configured.
type NopJournal struct{}

func (NopJournal) Record(context.Context, domain.CalculationRecord) error { return nil }
