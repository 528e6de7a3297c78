package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/upstream"
)

// OpenSecretsQuerier is the client surface the proxy endpoint needs.
type OpenSecretsQuerier interface {
	Query(ctx context.Context, method, cid, cycle string) upstream.OpenSecretsResult
}

// OpenSecretsHandler proxies whitelisted campaign-finance queries.
type OpenSecretsHandler struct {
	client OpenSecretsQuerier
	logger *zap.Logger
}

// NewOpenSecretsHandler creates an OpenSecretsHandler.
func NewOpenSecretsHandler(client OpenSecretsQuerier, logger *zap.Logger) *OpenSecretsHandler {
	return &OpenSecretsHandler{client: client, logger: logger.Named("opensecrets_handler")}
}

// RegisterRoutes registers the proxy route on the given mux.
func (h *OpenSecretsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/opensecrets", h.Query)
}

// Query handles GET /api/opensecrets?method=...&cid=...&cycle=...
// Validation happens here, before anything reaches the upstream URL.
func (h *OpenSecretsHandler) Query(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	method := query.Get("method")
	cid := query.Get("cid")
	cycle := query.Get("cycle")
	if cycle == "" {
		cycle = "2024"
	}

	if !upstream.ValidOpenSecretsMethod(method) {
		_ = ErrorResponse(w, http.StatusBadRequest, "Invalid method")
		return
	}
	if !upstream.ValidOpenSecretsCycle(cycle) {
		_ = ErrorResponse(w, http.StatusBadRequest, "Invalid cycle")
		return
	}
	if cid != "" && !upstream.ValidCID(cid) {
		_ = ErrorResponse(w, http.StatusBadRequest, "Invalid CID format")
		return
	}

	result := h.client.Query(r.Context(), method, cid, cycle)
	response := ApiResponse{Success: true, Data: result.Data, Warning: result.Warning}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode opensecrets response", zap.Error(err))
	}
}
