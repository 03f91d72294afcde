package progress

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

type sqliteStore struct{ db *sql.DB }

func openSQLite(ctx context.Context, path string) (*sqliteStore, error) {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	dbh, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// set WAL mode
	if _, err := dbh.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	if err := migrate(ctx, dbh); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	return &sqliteStore{db: dbh}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS topic_views (
  slug TEXT PRIMARY KEY,
  digest TEXT NOT NULL,
  views INTEGER NOT NULL,
  first_viewed TIMESTAMP NOT NULL,
  last_viewed TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_topic_views_last ON topic_views(last_viewed DESC);
`)
	return err
}

func (s *sqliteStore) Mark(ctx context.Context, slug, digest string, at time.Time) (Record, error) {
	at = at.UTC()
	_, err := s.db.ExecContext(ctx, `
INSERT INTO topic_views (slug, digest, views, first_viewed, last_viewed)
VALUES (?, ?, 1, ?, ?)
ON CONFLICT(slug) DO UPDATE SET
  digest = excluded.digest,
  views = topic_views.views + 1,
  last_viewed = excluded.last_viewed;
`, slug, digest, at, at)
	if err != nil {
		return Record{}, err
	}
	return s.Get(ctx, slug)
}

func (s *sqliteStore) Get(ctx context.Context, slug string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT slug, digest, views, first_viewed, last_viewed
FROM topic_views WHERE slug = ?;
`, slug)
	var r Record
	err := row.Scan(&r.Slug, &r.Digest, &r.Views, &r.FirstViewed, &r.LastViewed)
	if err == sql.ErrNoRows {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	return r, nil
}

func (s *sqliteStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT slug, digest, views, first_viewed, last_viewed
FROM topic_views ORDER BY slug;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Slug, &r.Digest, &r.Views, &r.FirstViewed, &r.LastViewed); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Reset(ctx context.Context, slug string) error {
	if slug == "" {
		_, err := s.db.ExecContext(ctx, `DELETE FROM topic_views;`)
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM topic_views WHERE slug = ?;`, slug)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sqliteStore) Close() error { return s.db.Close() }
