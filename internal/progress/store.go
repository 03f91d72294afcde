package progress

import (
	"context"
	"errors"
	"time"
)

// Record tracks reading progress for a single guide topic.
type Record struct {
	Slug        string    `json:"slug"`
	Digest      string    `json:"digest"`
	Views       int       `json:"views"`
	FirstViewed time.Time `json:"first_viewed"`
	LastViewed  time.Time `json:"last_viewed"`
}

// Stale reports whether the topic content changed since the last view.
func (r Record) Stale(digest string) bool {
	return r.Digest != "" && r.Digest != digest
}

// Store is the abstract progress-tracking interface.
type Store interface {
	// Mark records a view of slug at the given time, upserting the record
	// and bumping its view count.
	Mark(ctx context.Context, slug, digest string, at time.Time) (Record, error)
	Get(ctx context.Context, slug string) (Record, error)
	// List returns all records ordered by slug.
	List(ctx context.Context) ([]Record, error)
	// Reset deletes the record for slug, or every record when slug is empty.
	Reset(ctx context.Context, slug string) error
	Close() error
}

var ErrNotFound = errors.New("not found")

// Open returns a Store backed by SQLite at path, or an in-memory store
// when path is empty.
func Open(ctx context.Context, path string) (Store, error) {
	if path == "" {
		return newMemStore(), nil
	}
	return openSQLite(ctx, path)
}
