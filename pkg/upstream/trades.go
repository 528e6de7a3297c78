package upstream

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/cache"
	"github.com/civicforum/civic-engine/pkg/models"
	"github.com/civicforum/civic-engine/pkg/reconcile"
)

// recentTradeLimit caps the dashboard feed; the full dataset runs to
// tens of thousands of rows.
const recentTradeLimit = 100

// TradesClient serves disclosed securities transactions from the trade
// disclosure mirrors. Unlike most clients it never returns a fetch
// error to callers: when every mirror is down it serves the embedded
// fallback dataset and labels the result accordingly.
type TradesClient struct {
	resolver *Resolver
	cache    cache.Cache
	logger   *zap.Logger
	mirrors  []string
	ttl      time.Duration
}

func NewTradesClient(resolver *Resolver, store cache.Cache, logger *zap.Logger, mirrors []string, ttl time.Duration) *TradesClient {
	return &TradesClient{
		resolver: resolver,
		cache:    store,
		logger:   logger.Named("trades"),
		mirrors:  mirrors,
		ttl:      ttl,
	}
}

// RecentTrades returns the most recent disclosed trades along with the
// dataset's total row count and the provenance of what was served.
func (c *TradesClient) RecentTrades(ctx context.Context) ([]models.TradeRecord, int, models.Provenance, error) {
	raw, err := c.fetchAll(ctx)
	if err != nil {
		c.logger.Warn("Trade mirrors unavailable, serving fallback dataset", zap.Error(err))
		trades := toRecords(fallbackTrades)
		return trades, len(trades), models.SourceFallback, nil
	}

	recent := raw
	if len(recent) > recentTradeLimit {
		recent = recent[:recentTradeLimit]
	}
	return toRecords(recent), len(raw), models.SourceLive, nil
}

// TradesForSenator filters the dataset down to one senator's records by
// free-text name match. When the mirrors are down it falls back to the
// per-senator slate keyed by the name's last token, which may be empty.
func (c *TradesClient) TradesForSenator(ctx context.Context, name string) ([]models.TradeRecord, models.TradeStats, models.Provenance, error) {
	raw, err := c.fetchAll(ctx)
	if err != nil {
		c.logger.Warn("Trade mirrors unavailable, serving per-senator fallback",
			zap.String("senator", name), zap.Error(err))

		tokens := strings.Fields(name)
		lastName := name
		if len(tokens) > 0 {
			lastName = tokens[len(tokens)-1]
		}
		trades := toRecords(fallbackTradesBySenator[lastName])
		return trades, tradeStats(trades), models.SourceFallback, nil
	}

	matched := reconcile.FilterTradesForName(toRecords(raw), name)
	return matched, tradeStats(matched), models.SourceLive, nil
}

// AllTrades returns the full parsed dataset, erroring when no mirror
// responds. Used by rollups that need real data or nothing.
func (c *TradesClient) AllTrades(ctx context.Context) ([]models.TradeRecord, error) {
	raw, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return toRecords(raw), nil
}

func (c *TradesClient) fetchAll(ctx context.Context) ([]rawTrade, error) {
	const cacheKey = "upstream:trades:all"

	body, ok := c.cache.Get(ctx, cacheKey)
	if !ok {
		var err error
		body, err = c.resolver.Resolve(ctx, c.mirrors)
		if err != nil {
			return nil, err
		}
		c.cache.Set(ctx, cacheKey, body, c.ttl)
	}

	var trades []rawTrade
	if err := json.Unmarshal(body, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

func toRecords(raw []rawTrade) []models.TradeRecord {
	records := make([]models.TradeRecord, 0, len(raw))
	for _, t := range raw {
		// Unparseable amounts keep the raw string with zero bounds.
		band, _ := models.ParseAmountBand(t.Amount)
		records = append(records, models.TradeRecord{
			Senator:          t.Senator,
			Ticker:           t.Ticker,
			AssetDescription: t.AssetDescription,
			AssetType:        t.AssetType,
			Type:             t.Type,
			Amount:           band,
			TransactionDate:  t.TransactionDate,
			DisclosureDate:   t.DisclosureDate,
			PTRLink:          t.PTRLink,
			Owner:            t.Owner,
		})
	}
	return records
}

func tradeStats(trades []models.TradeRecord) models.TradeStats {
	stats := models.TradeStats{Total: len(trades)}
	for _, t := range trades {
		if t.IsPurchase() {
			stats.Purchases++
		}
		if t.IsSale() {
			stats.Sales++
		}
	}
	return stats
}
