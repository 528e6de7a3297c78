// Package repositories provides data access for persisted state. Only
// the watchlist is persisted; everything else the service returns is
// computed per request.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/database"
	"github.com/civicforum/civic-engine/pkg/models"
)

// uniqueViolation is the Postgres error code raised by the
// (user_id, politician_id) unique constraint.
const uniqueViolation = "23505"

// watchlistColumns is the watchlists table's column list in table
// order. All repository SQL is built from it, and the schema test
// checks every name against the migration DDL so the two cannot drift.
var watchlistColumns = []string{
	"id",
	"user_id",
	"politician_id",
	"politician_name",
	"party",
	"state",
	"chamber",
	"alerts_enabled",
	"created_at",
}

// insertColumns are the caller-supplied columns; id and created_at are
// database-generated and returned instead.
var insertColumns = watchlistColumns[1:8]

// WatchlistRepository provides data access for user watchlists.
type WatchlistRepository interface {
	Add(ctx context.Context, entry *models.WatchlistEntry) error
	ListByUser(ctx context.Context, userID string) ([]*models.WatchlistEntry, error)
	Remove(ctx context.Context, userID, politicianID string) error
}

type watchlistRepository struct {
	db *database.DB
}

// NewWatchlistRepository creates a new WatchlistRepository.
func NewWatchlistRepository(db *database.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

var _ WatchlistRepository = (*watchlistRepository)(nil)

func (r *watchlistRepository) Add(ctx context.Context, entry *models.WatchlistEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO watchlists (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`, strings.Join(insertColumns, ", "))

	err := r.db.Pool.QueryRow(ctx, query,
		entry.UserID,
		entry.PoliticianID,
		entry.PoliticianName,
		string(entry.Party),
		entry.State,
		entry.Chamber,
		entry.AlertsEnabled,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to add watchlist entry: %w", err)
	}

	return nil
}

func (r *watchlistRepository) ListByUser(ctx context.Context, userID string) ([]*models.WatchlistEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM watchlists
		WHERE user_id = $1
		ORDER BY created_at DESC`, strings.Join(watchlistColumns, ", "))

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	defer rows.Close()

	var entries []*models.WatchlistEntry
	for rows.Next() {
		var entry models.WatchlistEntry
		var party string
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.PoliticianID,
			&entry.PoliticianName,
			&party,
			&entry.State,
			&entry.Chamber,
			&entry.AlertsEnabled,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist entry: %w", err)
		}
		entry.Party = models.Party(party)
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read watchlist rows: %w", err)
	}

	return entries, nil
}

func (r *watchlistRepository) Remove(ctx context.Context, userID, politicianID string) error {
	query := `DELETE FROM watchlists WHERE user_id = $1 AND politician_id = $2`

	result, err := r.db.Pool.Exec(ctx, query, userID, politicianID)
	if err != nil {
		return fmt.Errorf("failed to remove watchlist entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
