package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/services"
)

// SenatorsHandler serves the assembled senator list and per-senator
// profiles.
type SenatorsHandler struct {
	service services.SenatorService
	logger  *zap.Logger
}

// NewSenatorsHandler creates a SenatorsHandler.
func NewSenatorsHandler(service services.SenatorService, logger *zap.Logger) *SenatorsHandler {
	return &SenatorsHandler{service: service, logger: logger.Named("senators_handler")}
}

// RegisterRoutes registers senator routes on the given mux.
func (h *SenatorsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/senators", h.List)
	mux.HandleFunc("GET /api/senators/{bioguideId}", h.Profile)
}

// SenatorListResponse pairs the assembled collection with its rollup
// stats.
type SenatorListResponse struct {
	Senators any `json:"senators"`
	Stats    any `json:"stats"`
}

// List handles GET /api/senators with optional party/state/conflicts
// filters and a sort key.
func (h *SenatorsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	opts := services.ListOptions{
		Party:         query.Get("party"),
		State:         query.Get("state"),
		ConflictsOnly: query.Get("conflicts") == "true",
		Sort:          query.Get("sort"),
	}

	senators, stats, err := h.service.ListSenators(r.Context(), opts)
	if err != nil {
		h.logger.Error("Failed to assemble senator list", zap.Error(err))
		_ = ErrorResponse(w, statusForError(err), "Failed to fetch senators")
		return
	}

	response := SenatorListResponse{Senators: senators, Stats: stats}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to encode senator list", zap.Error(err))
	}
}

// Profile handles GET /api/senators/{bioguideId}.
func (h *SenatorsHandler) Profile(w http.ResponseWriter, r *http.Request) {
	bioguideID := r.PathValue("bioguideId")

	profile, err := h.service.GetProfile(r.Context(), bioguideID)
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Failed to assemble profile",
				zap.String("bioguide_id", bioguideID), zap.Error(err))
		}
		_ = ErrorResponse(w, status, "Failed to fetch senator profile")
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: profile}); err != nil {
		h.logger.Error("Failed to encode profile", zap.Error(err))
	}
}
