package search

import (
	"context"
	"strings"

	"github.com/robinjoseph08/golib/logger"
	"github.com/shishobooks/archivist/pkg/config"
	"github.com/shishobooks/archivist/pkg/errcodes"
	"github.com/shishobooks/archivist/pkg/fetch"
	"github.com/shishobooks/archivist/pkg/models"
)

type Service struct {
	client       *fetch.Client
	baseURL      string
	defaultLimit int
}

func NewService(cfg *config.Config, client *fetch.Client) *Service {
	return &Service{
		client:       client,
		baseURL:      cfg.BaseURL,
		defaultLimit: cfg.SearchLimit,
	}
}

// Search runs opts against the catalog and returns the parsed results.
func (svc *Service) Search(ctx context.Context, opts Options) (*models.SearchResults, error) {
	opts.Query = strings.TrimSpace(opts.Query)
	if opts.Query == "" {
		return nil, errcodes.ValidationError(`"q" is required`)
	}
	if opts.Limit <= 0 {
		opts.Limit = svc.defaultLimit
	}

	url := BuildURL(svc.baseURL, opts)
	doc, err := svc.client.FetchHTML(ctx, url)
	if err != nil {
		return nil, err
	}

	books, err := ParseDocument(doc, opts.Limit)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("searched catalog", logger.Data{
		"query":   opts.Query,
		"results": len(books),
	})

	return &models.SearchResults{Books: books, Total: len(books)}, nil
}
