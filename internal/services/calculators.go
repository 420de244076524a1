package services

import (
	"context"
	"errors"
	"fmt"
	"geo-calc-service/internal/domain"
	"geo-calc-service/internal/platform/metrics"
	"geo-calc-service/internal/platform/obs"
	"geo-calc-service/internal/ports"
	"time"

	"go.uber.org/zap"
)

// recorder writes computed results to the journal. A journal failure is
// logged and counted but never surfaces to the caller.
type recorder struct {
	journal ports.CalculationJournal
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func newRecorder(journal ports.CalculationJournal, m *metrics.Metrics, logger *zap.Logger) recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return recorder{journal: journal, metrics: m, logger: logger, now: time.Now}
}

func (r recorder) record(ctx context.Context, rec domain.CalculationRecord) {
	r.metrics.ObserveCalculation(string(rec.Operation), "ok")

	if r.journal == nil {
		return
	}

	rec.RequestID = obs.RequestID(ctx)
	rec.CalculatedAt = r.now().UTC()

	if err := r.journal.Record(ctx, rec); err != nil {
		r.metrics.ObserveJournalError()
		r.logger.Warn("journal calculation failed",
			zap.String("req_id", rec.RequestID),
			zap.String("op", string(rec.Operation)),
			zap.Error(err),
		)
	}
}

// DistanceCalculator computes great-circle distances for the API boundary.
type DistanceCalculator struct {
	rec recorder
}

func NewDistanceCalculator(journal ports.CalculationJournal, m *metrics.Metrics, logger *zap.Logger) *DistanceCalculator {
	return &DistanceCalculator{rec: newRecorder(journal, m, logger)}
}

// Compute parses the raw unit selector and returns the haversine distance
// between start and end. The only failure is domain.ErrInvalidUnit.
func (c *DistanceCalculator) Compute(
	ctx context.Context,
	start domain.GeoPoint,
	end domain.GeoPoint,
	rawUnit string,
) (_ domain.DistanceResult, err error) {
	defer obs.Time(ctx, "calc.haversine_distance")(&err)

	unit, err := domain.ParseDistanceUnit(rawUnit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidUnit) {
			c.rec.metrics.ObserveCalculation(string(domain.OperationHaversineDistance), "invalid_unit")
		}
		return domain.DistanceResult{}, fmt.Errorf("compute distance: %w", err)
	}

	res, err := HaversineDistance(start, end, unit)
	if err != nil {
		return domain.DistanceResult{}, fmt.Errorf("compute distance: %w", err)
	}

	c.rec.record(ctx, domain.CalculationRecord{
		Operation: domain.OperationHaversineDistance,
		Start:     start,
		End:       end,
		Unit:      unit,
		Result:    res.Value,
	})

	return res, nil
}

// AzimuthCalculator computes initial bearings for the API boundary.
type AzimuthCalculator struct {
	rec recorder
}

func NewAzimuthCalculator(journal ports.CalculationJournal, m *metrics.Metrics, logger *zap.Logger) *AzimuthCalculator {
	return &AzimuthCalculator{rec: newRecorder(journal, m, logger)}
}

func (c *AzimuthCalculator) Compute(
	ctx context.Context,
	start domain.GeoPoint,
	end domain.GeoPoint,
	normalize bool,
) domain.AzimuthResult {
	defer obs.Time(ctx, "calc.azimuth_angle")(nil)

	res := InitialBearing(start, end, normalize)

	c.rec.record(ctx, domain.CalculationRecord{
		Operation:  domain.OperationAzimuthAngle,
		Start:      start,
		End:        end,
		Normalized: normalize,
		Result:     res.Degrees,
	})

	return res
}
