package journal

import (
	"context"
	"errors"
	"fmt"
	"geo-calc-service/internal/domain"
	"geo-calc-service/internal/platform/obs"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultStream = "calculations"

// RedisCalculationJournal appends calculation records to a capped Redis stream.
type RedisCalculationJournal struct {
	Client redis.Cmdable
	Stream string
	// Approximate upper bound on stream length; 0 disables trimming.
	MaxLen int64
}

func NewRedisCalculationJournal(client redis.Cmdable, stream string, maxLen int64) *RedisCalculationJournal {
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisCalculationJournal{Client: client, Stream: stream, MaxLen: maxLen}
}

func (r *RedisCalculationJournal) Record(ctx context.Context, rec domain.CalculationRecord) (err error) {
	defer obs.Time(ctx, "journal.redis.Record")(&err)

	if r.Client == nil {
		return errors.New("calculation journal: redis client is nil")
	}

	if rec.Operation == "" {
		return errors.New("record calculation: operation must not be empty")
	}

	args := &redis.XAddArgs{
		Stream: r.Stream,
		Values: streamValues(rec),
	}
	if r.MaxLen > 0 {
		args.MaxLen = r.MaxLen
		args.Approx = true
	}

	if err := r.Client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("record calculation op=%s: xadd %q: %w", rec.Operation, r.Stream, err)
	}

	return nil
}

func streamValues(rec domain.CalculationRecord) map[string]any {
	v := map[string]any{
		"request_id":    rec.RequestID,
		"operation":     string(rec.Operation),
		"start_lat":     formatFloat(rec.Start.Lat),
		"start_long":    formatFloat(rec.Start.Lon),
		"end_lat":       formatFloat(rec.End.Lat),
		"end_long":      formatFloat(rec.End.Lon),
		"result":        formatFloat(rec.Result),
		"calculated_at": rec.CalculatedAt.UTC().Format(time.RFC3339Nano),
	}

	switch rec.Operation {
	case domain.OperationHaversineDistance:
		v["unit_measure"] = string(rec.Unit)
	case domain.OperationAzimuthAngle:
		v["convert_negative_angle"] = strconv.FormatBool(rec.Normalized)
	}

	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
