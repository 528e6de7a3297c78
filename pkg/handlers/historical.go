package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/estimate"
)

// HistoricalHandler serves the seeded historical series for one
// senator. Everything here is deterministic synthetic data and is
// labeled as such in the payload.
type HistoricalHandler struct {
	logger *zap.Logger
}

// NewHistoricalHandler creates a HistoricalHandler.
func NewHistoricalHandler(logger *zap.Logger) *HistoricalHandler {
	return &HistoricalHandler{logger: logger.Named("historical_handler")}
}

// RegisterRoutes registers the historical route on the given mux.
func (h *HistoricalHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/historical/{bioguideId}", h.Historical)
}

// Historical handles GET /api/historical/{bioguideId}.
func (h *HistoricalHandler) Historical(w http.ResponseWriter, r *http.Request) {
	bioguideID := r.PathValue("bioguideId")
	if bioguideID == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "bioguideId is required")
		return
	}

	data := estimate.Historical(bioguideID)
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: data}); err != nil {
		h.logger.Error("Failed to encode historical data", zap.Error(err))
	}
}
