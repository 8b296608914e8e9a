//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hydro-command/internal/pkg/apikey"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestDevice(t *testing.T, db DBLike, deviceID string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO devices (id, name) VALUES ($1, $1) ON CONFLICT (id) DO NOTHING", deviceID)
	require.NoError(t, err)
}

// CreateTestAPIKey registers the device if needed and returns a plaintext key for it.
func CreateTestAPIKey(t *testing.T, db DBLike, deviceID string) string {
	t.Helper()
	CreateTestDevice(t, db, deviceID)

	key, err := apikey.Generate()
	require.NoError(t, err)

	_, err = db.Exec(context.Background(),
		"INSERT INTO device_api_keys (device_id, key_prefix, key_hash) VALUES ($1, $2, $3)",
		deviceID, key.Prefix, key.Hash)
	require.NoError(t, err)

	return key.Plaintext
}

func CountCommands(t *testing.T, db DBLike, deviceID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM device_commands WHERE device_id = $1 AND status = $2", deviceID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
