package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/auth"
	"github.com/civicforum/civic-engine/pkg/services"
)

// WatchlistHandler serves the authenticated watchlist CRUD and the
// trade alert feed. All routes assume the auth middleware has already
// placed claims in the context.
type WatchlistHandler struct {
	service services.WatchlistService
	logger  *zap.Logger
}

// NewWatchlistHandler creates a WatchlistHandler.
func NewWatchlistHandler(service services.WatchlistService, logger *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{service: service, logger: logger.Named("watchlist_handler")}
}

// Routes returns the handler's mux, to be mounted behind the auth
// middleware.
func (h *WatchlistHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/watchlist", h.List)
	mux.HandleFunc("POST /api/watchlist", h.Add)
	mux.HandleFunc("DELETE /api/watchlist", h.Remove)
	mux.HandleFunc("GET /api/watchlist/alerts", h.Alerts)
	return mux
}

func (h *WatchlistHandler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		_ = ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}

// List handles GET /api/watchlist.
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	entries, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to fetch watchlist", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch watchlist")
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: entries}); err != nil {
		h.logger.Error("Failed to encode watchlist", zap.Error(err))
	}
}

// Add handles POST /api/watchlist.
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var input services.AddWatchlistInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	entry, err := h.service.Add(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidInput):
			_ = ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrDuplicate):
			_ = ErrorResponse(w, http.StatusConflict, "Already in watchlist")
		default:
			h.logger.Error("Failed to add watchlist entry", zap.Error(err))
			_ = ErrorResponse(w, http.StatusInternalServerError, "Failed to add to watchlist")
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: entry}); err != nil {
		h.logger.Error("Failed to encode watchlist entry", zap.Error(err))
	}
}

// Remove handles DELETE /api/watchlist?politicianId=...
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	politicianID := r.URL.Query().Get("politicianId")
	err := h.service.Remove(r.Context(), userID, politicianID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidInput):
			_ = ErrorResponse(w, http.StatusBadRequest, "Invalid politician id")
		case errors.Is(err, apperrors.ErrNotFound):
			_ = ErrorResponse(w, http.StatusNotFound, "Not in watchlist")
		default:
			h.logger.Error("Failed to remove watchlist entry", zap.Error(err))
			_ = ErrorResponse(w, http.StatusInternalServerError, "Failed to remove from watchlist")
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: map[string]string{"status": "removed"}}); err != nil {
		h.logger.Error("Failed to encode removal response", zap.Error(err))
	}
}

// Alerts handles GET /api/watchlist/alerts.
func (h *WatchlistHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	alerts, err := h.service.Alerts(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to build alert feed", zap.Error(err))
		_ = ErrorResponse(w, statusForError(err), "Failed to fetch alerts")
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: alerts}); err != nil {
		h.logger.Error("Failed to encode alerts", zap.Error(err))
	}
}
