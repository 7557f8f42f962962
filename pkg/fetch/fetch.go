// Package fetch is the HTTP client used for every request to the catalog and
// its mirrors. Requests are rate limited, carry a browser user agent, and are
// optionally served from a page cache.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/shishobooks/archivist/pkg/config"
	"github.com/shishobooks/archivist/pkg/errcodes"
	"github.com/shishobooks/archivist/pkg/models"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

const defaultMaxBodySize = 10 << 20

// Cache is the subset of the page cache the client needs.
type Cache interface {
	Get(ctx context.Context, url string) (*models.CachedPage, error)
	Put(ctx context.Context, page *models.CachedPage) error
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	cache      Cache

	// Larger bodies are rejected rather than truncated.
	maxBodySize int64
}

// New returns a client configured from cfg. cache may be nil.
func New(cfg *config.Config, cache Cache) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
		cache:      cache,

		maxBodySize: defaultMaxBodySize,
	}
}

// Get returns the body and content type of url. Non-2xx responses and
// transport failures come back as *errcodes.Error.
func (c *Client) Get(ctx context.Context, url string) (*models.CachedPage, error) {
	log := logger.FromContext(ctx)

	if c.cache != nil {
		page, err := c.cache.Get(ctx, url)
		if err != nil {
			log.Err(err).Warn("page cache read failed", logger.Data{"url": url})
		} else if page != nil {
			log.Debug("page cache hit", logger.Data{"url": url})
			return page, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}
		return nil, errcodes.UpstreamUnavailable(err)
	}
	defer resp.Body.Close()

	log.Debug("fetched page", logger.Data{
		"url":      url,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errcodes.UpstreamStatus(resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, errcodes.UpstreamUnavailable(err)
	}
	if int64(len(body)) > c.maxBodySize {
		return nil, errcodes.ParseError(fmt.Sprintf("Page from %s exceeds %d bytes", url, c.maxBodySize))
	}

	page := &models.CachedPage{
		URL:         url,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		FetchedAt:   time.Now(),
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, page); err != nil {
			log.Err(err).Warn("page cache write failed", logger.Data{"url": url})
		}
	}

	return page, nil
}

// FetchHTML fetches url and parses it as an HTML document, converting the
// body to UTF-8 first when the server declares another charset.
func (c *Client) FetchHTML(ctx context.Context, url string) (*goquery.Document, error) {
	page, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	r, err := charset.NewReader(bytes.NewReader(page.Body), page.ContentType)
	if err != nil {
		return nil, errcodes.ParseError("Unsupported page encoding from " + url)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errcodes.ParseError("Could not parse page from " + url)
	}
	return doc, nil
}

// FetchJSON fetches url and decodes the JSON body into v.
func (c *Client) FetchJSON(ctx context.Context, url string, v interface{}) error {
	page, err := c.Get(ctx, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(page.Body, v); err != nil {
		return errcodes.ParseError("Invalid JSON from " + url)
	}
	return nil
}
