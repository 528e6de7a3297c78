package repositories

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The repository SQL and the migration DDL must name the same columns.
// A rename on either side that misses the other fails every watchlist
// query with 42703 at runtime, so the column list is checked against
// the shipped migration here, without a database.
func TestWatchlistColumnsMatchMigration(t *testing.T) {
	ddl, err := os.ReadFile(filepath.Join("..", "..", "migrations", "000001_create_watchlists.up.sql"))
	require.NoError(t, err)

	for _, column := range watchlistColumns {
		pattern := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(column) + `\s`)
		assert.True(t, pattern.Match(ddl), "column %q not defined in migration DDL", column)
	}
}

func TestWatchlistMigrationColumnCount(t *testing.T) {
	ddl, err := os.ReadFile(filepath.Join("..", "..", "migrations", "000001_create_watchlists.up.sql"))
	require.NoError(t, err)

	// Every column defined in the table body must be one the repository
	// knows about, so additions also force a matching SQL update.
	body := regexp.MustCompile(`(?s)CREATE TABLE[^(]*\((.*?)\);`).FindSubmatch(ddl)
	require.NotNil(t, body)

	known := make(map[string]bool, len(watchlistColumns))
	for _, column := range watchlistColumns {
		known[column] = true
	}

	columnDef := regexp.MustCompile(`(?m)^\s*([a-z_]+)\s+(?:UUID|TEXT|CHAR|BOOLEAN|TIMESTAMPTZ)`)
	defs := columnDef.FindAllSubmatch(body[1], -1)
	require.Len(t, defs, len(watchlistColumns))
	for _, def := range defs {
		assert.True(t, known[string(def[1])], "migration defines column %q the repository does not select", def[1])
	}
}

func TestInsertColumnsExcludeGenerated(t *testing.T) {
	assert.NotContains(t, insertColumns, "id")
	assert.NotContains(t, insertColumns, "created_at")
	assert.Len(t, insertColumns, 7, "one placeholder per inserted column")
}
