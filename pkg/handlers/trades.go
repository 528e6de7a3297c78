package handlers

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/models"
	"github.com/civicforum/civic-engine/pkg/reconcile"
)

// TradeFeedSource is the trade client surface the feed endpoints need.
type TradeFeedSource interface {
	RecentTrades(ctx context.Context) ([]models.TradeRecord, int, models.Provenance, error)
	TradesForSenator(ctx context.Context, name string) ([]models.TradeRecord, models.TradeStats, models.Provenance, error)
	AllTrades(ctx context.Context) ([]models.TradeRecord, error)
}

// RosterSource resolves the canonical senator set for aggregation.
type RosterSource interface {
	CurrentSenators(ctx context.Context) ([]models.Legislator, error)
}

// TradesHandler serves the chamber-wide trade feed and per-senator
// trade lookups.
type TradesHandler struct {
	trades TradeFeedSource
	roster RosterSource
	logger *zap.Logger
}

// NewTradesHandler creates a TradesHandler.
func NewTradesHandler(trades TradeFeedSource, roster RosterSource, logger *zap.Logger) *TradesHandler {
	return &TradesHandler{trades: trades, roster: roster, logger: logger.Named("trades_handler")}
}

// RegisterRoutes registers trade routes on the given mux.
func (h *TradesHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/trades", h.Recent)
	mux.HandleFunc("GET /api/trades/{senator}", h.BySenator)
}

// TradeFeedResponse is the chamber-wide feed payload.
type TradeFeedResponse struct {
	Trades      []models.TradeRecord `json:"trades"`
	Total       int                  `json:"total"`
	Source      models.Provenance    `json:"source"`
	LastUpdated string               `json:"lastUpdated"`
}

// ActiveTraderEntry is one reconciled entity in the aggregation view.
type ActiveTraderEntry struct {
	BioguideID string `json:"bioguideId"`
	Name       string `json:"name"`
	Party      string `json:"party"`
	State      string `json:"stateAbbr"`
	TradeCount int    `json:"tradeCount"`
	Tickers    int    `json:"distinctTickers"`
}

// Recent handles GET /api/trades. With aggregate=1 the response is the
// per-entity rollup of reconciled active traders instead of raw rows.
func (h *TradesHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("aggregate") == "1" {
		h.aggregate(w, r)
		return
	}

	trades, total, source, err := h.trades.RecentTrades(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch trade feed", zap.Error(err))
		_ = ErrorResponse(w, statusForError(err), "Failed to fetch trades")
		return
	}

	response := TradeFeedResponse{
		Trades:      trades,
		Total:       total,
		Source:      source,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to encode trade feed", zap.Error(err))
	}
}

func (h *TradesHandler) aggregate(w http.ResponseWriter, r *http.Request) {
	senators, err := h.roster.CurrentSenators(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch roster for aggregation", zap.Error(err))
		_ = ErrorResponse(w, statusForError(err), "Failed to aggregate trades")
		return
	}
	trades, err := h.trades.AllTrades(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch trades for aggregation", zap.Error(err))
		_ = ErrorResponse(w, statusForError(err), "Failed to aggregate trades")
		return
	}

	active := reconcile.ActiveTraders(reconcile.AggregateByMatchedEntity(trades, senators))
	entries := make([]ActiveTraderEntry, 0, len(active))
	for id, stats := range active {
		entries = append(entries, ActiveTraderEntry{
			BioguideID: id,
			Name:       stats.Legislator.Name,
			Party:      string(stats.Legislator.Party),
			State:      stats.Legislator.StateAbbr,
			TradeCount: stats.Count,
			Tickers:    len(stats.Tickers),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TradeCount != entries[j].TradeCount {
			return entries[i].TradeCount > entries[j].TradeCount
		}
		return entries[i].BioguideID < entries[j].BioguideID
	})

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: entries}); err != nil {
		h.logger.Error("Failed to encode aggregation", zap.Error(err))
	}
}

// SenatorTradesResponse is the per-senator lookup payload.
type SenatorTradesResponse struct {
	Trades []models.TradeRecord `json:"trades"`
	Stats  models.TradeStats    `json:"stats"`
	Source models.Provenance    `json:"source"`
}

// BySenator handles GET /api/trades/{senator}, where the path segment
// is a URL-encoded free-text name.
func (h *TradesHandler) BySenator(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("senator")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	trades, stats, source, err := h.trades.TradesForSenator(r.Context(), name)
	if err != nil {
		h.logger.Error("Failed to fetch senator trades",
			zap.String("senator", name), zap.Error(err))
		_ = ErrorResponse(w, statusForError(err), "Failed to fetch trades")
		return
	}

	response := SenatorTradesResponse{Trades: trades, Stats: stats, Source: source}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to encode senator trades", zap.Error(err))
	}
}
