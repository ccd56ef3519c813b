package store

import (
	"context"
	"database/sql"
	"fmt"

	"githubActivityFeed/internal/config"

	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
)

// Open connects the optional backends named in cfg. A backend that is not
// configured comes back nil.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, *redis.Client, error) {
	var (
		db  *sql.DB
		rdb *redis.Client
	)
	if cfg.HasHistory() {
		var err error
		db, err = sql.Open("sqlite3", cfg.HistoryDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("sql open: %w", err)
		}
		if _, err := CreateTable(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("create lookups table: %w", err)
		}
	}
	if cfg.HasCache() {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	return db, rdb, nil
}

// CreateTable is a no-op when the table already exists.
func CreateTable(ctx context.Context, db *sql.DB) (sql.Result, error) {
	sqlstmt := `CREATE TABLE IF NOT EXISTS lookups (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		status INTEGER,
		printed INTEGER,
		skipped INTEGER,
		error TEXT,
		fetched_at TEXT
);`
	return db.ExecContext(ctx, sqlstmt)
}

// Close releases whichever backends are open.
func Close(db *sql.DB, rdb *redis.Client) error {
	var err error
	if db != nil {
		err = db.Close()
	}
	if rdb != nil {
		if cerr := rdb.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
