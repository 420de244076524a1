package ports

import (
	"context"
	"geo-calc-service/internal/domain"
)

// Contract for persisting computed results to an audit trail.
// Implementations must be safe for concurrent use.
type CalculationJournal interface {
	// Record a single computed result.
	Record(ctx context.Context, rec domain.CalculationRecord) error
}
