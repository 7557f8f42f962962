package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE cached_pages (
				id TEXT PRIMARY KEY,
				url TEXT NOT NULL UNIQUE,
				body BLOB NOT NULL,
				content_type TEXT,
				fetched_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		// Index for purging expired pages
		_, err = db.Exec(`CREATE INDEX ix_cached_pages_fetched_at ON cached_pages(fetched_at)`)
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`DROP INDEX IF EXISTS ix_cached_pages_fetched_at`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`DROP TABLE IF EXISTS cached_pages`)
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
