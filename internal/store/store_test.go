package store

import (
	"context"
	"database/sql"
	"testing"

	"githubActivityFeed/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestOpen_NothingConfigured(t *testing.T) {
	db, rdb, err := Open(context.Background(), &config.Config{})

	require.NoError(t, err)
	assert.Nil(t, db)
	assert.Nil(t, rdb)
	assert.NoError(t, Close(db, rdb))
}

func TestCreateTable_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	_, err = CreateTable(ctx, db)
	require.NoError(t, err)
	_, err = CreateTable(ctx, db)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO lookups (id, username, status, printed, skipped, error, fetched_at)
		VALUES ('1', 'alice', 200, 3, 0, '', '2024-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}
