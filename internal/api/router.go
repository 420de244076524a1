package api

import (
	"geo-calc-service/internal/api/handlers"
	"geo-calc-service/internal/platform/metrics"
	"net/http"

	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	distance handlers.DistanceComputer,
	azimuth handlers.AzimuthComputer,
	m *metrics.Metrics,
	logger *zap.Logger,
) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	geoHandler := &handlers.GeoHandler{
		Distance: distance,
		Azimuth:  azimuth,
		Logger:   logger,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/haversine_distance/{$}", geoHandler.HaversineDistance)
	mux.HandleFunc("/azimuth_angle/{$}", geoHandler.AzimuthAngle)
	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}

	return observe(logger, m, mux)
}
