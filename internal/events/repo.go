package events

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"githubActivityFeed/internal/model"

	"github.com/redis/go-redis/v9"
)

// HistoryLimit is how many lookups the history table keeps.
const HistoryLimit = 30

type RepoInterface interface {
	GetReport(ctx context.Context, username string) ([]byte, bool, error)
	SetReport(ctx context.Context, username string, data []byte, ttlseconds int) error
	SaveLookup(ctx context.Context, l *model.Lookup) error
	RecentLookups(ctx context.Context, limit int) ([]model.Lookup, error)
}

// Repo backs the report cache with redis and lookup history with sqlite.
// Either handle may be nil, which turns its methods into no-ops.
type Repo struct {
	db  *sql.DB
	Rdb *redis.Client
}

func NewRepo(db *sql.DB, Rdb *redis.Client) *Repo {
	return &Repo{db: db, Rdb: Rdb}
}

func reportKey(username string) string {
	return "report:" + strings.ToLower(username)
}

func (r *Repo) SetReport(ctx context.Context, username string, data []byte, ttlseconds int) error {
	if r.Rdb == nil || ttlseconds <= 0 {
		return nil
	}
	return r.Rdb.Set(ctx, reportKey(username), data, time.Duration(ttlseconds)*time.Second).Err()
}

func (r *Repo) GetReport(ctx context.Context, username string) ([]byte, bool, error) {
	if r.Rdb == nil {
		return nil, false, nil
	}
	val, err := r.Rdb.Get(ctx, reportKey(username)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(val), true, nil
}

func (r *Repo) SaveLookup(ctx context.Context, l *model.Lookup) error {
	if r.db == nil {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO lookups
		(id, username, status, printed, skipped, error, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Username, l.Status, l.Printed, l.Skipped, l.Error, l.FetchedAt,
	)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		DELETE FROM lookups
		WHERE id NOT IN (
			SELECT id FROM lookups
			ORDER BY fetched_at DESC, rowid DESC
			LIMIT ?
		)`, HistoryLimit)
	return err
}

// RecentLookups returns newest first.
func (r *Repo) RecentLookups(ctx context.Context, limit int) ([]model.Lookup, error) {
	if r.db == nil {
		return []model.Lookup{}, nil
	}
	if limit <= 0 || limit > HistoryLimit {
		limit = HistoryLimit
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, status, printed, skipped, error, fetched_at
		FROM lookups
		ORDER BY fetched_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lookups := []model.Lookup{}
	for rows.Next() {
		var l model.Lookup
		if err := rows.Scan(&l.ID, &l.Username, &l.Status, &l.Printed, &l.Skipped, &l.Error, &l.FetchedAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
