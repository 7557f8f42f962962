package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type CachedPage struct {
	bun.BaseModel `bun:"table:cached_pages,alias:cp"`

	ID          uuid.UUID `bun:",pk,type:text" json:"id"`
	URL         string    `bun:",unique,notnull" json:"url"`
	Body        []byte    `bun:",notnull" json:"-"`
	ContentType string    `bun:",nullzero" json:"content_type"`
	FetchedAt   time.Time `bun:",notnull" json:"fetched_at"`
}

// Expired reports whether the page is older than ttl as of now.
func (p *CachedPage) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(p.FetchedAt) >= ttl
}
