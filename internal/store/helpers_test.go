package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/models"
)

func newTestDB(t *testing.T) (*DB, string) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "catalog.db")
	db, err := NewConnectSQLite(context.Background(), dsn, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	return db, dsn
}

// openSecondConnection opens an independent handle on the same file.
func openSecondConnection(t *testing.T, dsn string) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", withSQLiteParams(dsn))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func countRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func seedCatalog(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	b, err := db.NewBatch(ctx)
	require.NoError(t, err)

	_, err = b.UpsertMenu(ctx, models.Menu{ID: "m1", Label: "Crops"})
	require.NoError(t, err)
	_, err = b.UpsertMenu(ctx, models.Menu{ID: "m2", Label: "Animals"})
	require.NoError(t, err)
	_, err = b.UpsertMenuItem(ctx, models.MenuItem{ID: "i1", Label: "Maize", MenuID: "m1", Position: int64Ptr(2)})
	require.NoError(t, err)
	_, err = b.UpsertMenuItem(ctx, models.MenuItem{ID: "i2", Label: "Beans", MenuID: "m1", Position: int64Ptr(1)})
	require.NoError(t, err)
	_, err = b.UpsertMenuItem(ctx, models.MenuItem{
		ID: "i3", Label: "Maize planting", MenuID: "m1", ParentID: strPtr("i1"),
		Content: "Plant maize at the start of the rains", AttachmentID: strPtr("img-7"),
	})
	require.NoError(t, err)
	_, err = b.UpsertMenuItem(ctx, models.MenuItem{ID: "i4", Label: "Goats", MenuID: "m2"})
	require.NoError(t, err)

	require.NoError(t, b.Close())
}
