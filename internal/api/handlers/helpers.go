package handlers

import (
	"encoding/json"
	"geo-calc-service/internal/api/dto"
	"geo-calc-service/internal/platform/obs"
	"net/http"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Detail: msg})
}

func writeValidationError(w http.ResponseWriter, r *http.Request, issues []dto.ValidationIssue) {
	writeJSON(w, r, http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Detail: issues})
}

// allowGet rejects anything but GET (and HEAD) with 405.
func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
	return false
}
