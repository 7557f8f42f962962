// Package pagecache stores fetched upstream pages in SQLite so repeated
// searches and download lookups don't hit the catalog again until the TTL
// passes.
package pagecache

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/shishobooks/archivist/pkg/models"
	"github.com/uptrace/bun"
)

type Cache struct {
	db  *bun.DB
	ttl time.Duration
	now func() time.Time
}

func New(db *bun.DB, ttl time.Duration) *Cache {
	return &Cache{db: db, ttl: ttl, now: time.Now}
}

// Get returns the cached page for url, or nil when there is no fresh copy.
func (c *Cache) Get(ctx context.Context, url string) (*models.CachedPage, error) {
	page := &models.CachedPage{}
	err := c.db.
		NewSelect().
		Model(page).
		Where("cp.url = ?", url).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}

	if page.Expired(c.ttl, c.now()) {
		logger.FromContext(ctx).Debug("cached page expired", logger.Data{"url": url})
		return nil, nil
	}

	return page, nil
}

// Put stores page, replacing any earlier copy of the same URL.
func (c *Cache) Put(ctx context.Context, page *models.CachedPage) error {
	if page.ID == uuid.Nil {
		page.ID = uuid.New()
	}
	if page.FetchedAt.IsZero() {
		page.FetchedAt = c.now()
	}
	page.FetchedAt = page.FetchedAt.UTC()

	_, err := c.db.
		NewInsert().
		Model(page).
		On("CONFLICT (url) DO UPDATE").
		Set("body = EXCLUDED.body").
		Set("content_type = EXCLUDED.content_type").
		Set("fetched_at = EXCLUDED.fetched_at").
		Exec(ctx)
	return errors.WithStack(err)
}

// Purge deletes every expired page and returns how many were removed.
func (c *Cache) Purge(ctx context.Context) (int, error) {
	cutoff := c.now().Add(-c.ttl).UTC()
	res, err := c.db.
		NewDelete().
		Model((*models.CachedPage)(nil)).
		Where("fetched_at <= ?", cutoff).
		Exec(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return int(n), nil
}
