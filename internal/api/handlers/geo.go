package handlers

import (
	"context"
	"errors"
	"geo-calc-service/internal/api/dto"
	"geo-calc-service/internal/domain"
	"geo-calc-service/internal/platform/obs"
	"net/http"

	"go.uber.org/zap"
)

const invalidUnitMessage = "Invalid unit_measure."

type DistanceComputer interface {
	Compute(ctx context.Context, start, end domain.GeoPoint, rawUnit string) (domain.DistanceResult, error)
}

type AzimuthComputer interface {
	Compute(ctx context.Context, start, end domain.GeoPoint, normalize bool) domain.AzimuthResult
}

// GeoHandler exposes the read-only calculation endpoints.
type GeoHandler struct {
	Distance DistanceComputer
	Azimuth  AzimuthComputer
	Logger   *zap.Logger
}

func points(q dto.CoordinatesQuery) (domain.GeoPoint, domain.GeoPoint) {
	return domain.GeoPoint{Lat: q.StartLat, Lon: q.StartLong},
		domain.GeoPoint{Lat: q.EndLat, Lon: q.EndLong}
}

// HaversineDistance serves GET /haversine_distance/.
// Coordinate problems are reported (422) before the unit is looked at (404).
func (h *GeoHandler) HaversineDistance(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q, issues, err := parseDistanceQuery(r.URL.Query())
	if err != nil {
		h.internalError(w, r, "parse distance query", err)
		return
	}
	if len(issues) > 0 {
		writeValidationError(w, r, issues)
		return
	}

	start, end := points(q.CoordinatesQuery)
	res, err := h.Distance.Compute(r.Context(), start, end, q.UnitMeasure)
	if errors.Is(err, domain.ErrInvalidUnit) {
		writeError(w, r, http.StatusNotFound, invalidUnitMessage)
		return
	}
	if err != nil {
		h.internalError(w, r, "compute distance", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{Distance: res.Value})
}

// AzimuthAngle serves GET /azimuth_angle/.
func (h *GeoHandler) AzimuthAngle(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q, issues, err := parseAzimuthQuery(r.URL.Query())
	if err != nil {
		h.internalError(w, r, "parse azimuth query", err)
		return
	}
	if len(issues) > 0 {
		writeValidationError(w, r, issues)
		return
	}

	start, end := points(q.CoordinatesQuery)
	res := h.Azimuth.Compute(r.Context(), start, end, q.ConvertNegativeAngle)

	writeJSON(w, r, http.StatusOK, dto.AzimuthResponse{AzimuthAngle: res.Degrees})
}

func (h *GeoHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger := h.Logger
	if logger == nil {
		logger = zap.L()
	}
	logger.Error(op+" failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}
