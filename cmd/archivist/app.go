package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/shishobooks/archivist/pkg/authors"
	"github.com/shishobooks/archivist/pkg/config"
	"github.com/shishobooks/archivist/pkg/database"
	"github.com/shishobooks/archivist/pkg/downloads"
	"github.com/shishobooks/archivist/pkg/errcodes"
	"github.com/shishobooks/archivist/pkg/fetch"
	"github.com/shishobooks/archivist/pkg/migrations"
	"github.com/shishobooks/archivist/pkg/pagecache"
	"github.com/shishobooks/archivist/pkg/search"
	"github.com/shishobooks/archivist/pkg/version"
	"github.com/urfave/cli/v2"
)

func newApp(cfg *config.Config, out io.Writer) *cli.App {
	return &cli.App{
		Name:    "archivist",
		Usage:   "search the shadow library catalog and resolve download links",
		Version: version.Version,
		Writer:  out,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "search the catalog",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "ext", Usage: "only return files with this extension (e.g. epub)"},
					&cli.StringFlag{Name: "lang", Usage: "only return books in this language code (e.g. en)"},
					&cli.IntFlag{Name: "limit", Usage: "maximum number of results", Value: cfg.SearchLimit},
					&cli.BoolFlag{Name: "json", Usage: "print results as JSON"},
				},
				Action: func(c *cli.Context) error {
					query := strings.Join(c.Args().Slice(), " ")
					if strings.TrimSpace(query) == "" {
						return errcodes.ValidationError("a search query is required")
					}

					client, closeCache, err := newClient(c.Context, cfg)
					if err != nil {
						return err
					}
					defer closeCache()

					results, err := search.NewService(cfg, client).Search(c.Context, search.Options{
						Query: query,
						Ext:   strings.ToLower(c.String("ext")),
						Lang:  strings.ToLower(c.String("lang")),
						Limit: c.Int("limit"),
					})
					if err != nil {
						return err
					}

					if c.Bool("json") {
						return writeJSON(out, results)
					}
					if results.Total == 0 {
						fmt.Fprintln(out, "No results.")
						return nil
					}
					for _, book := range results.Books {
						fmt.Fprintf(out, "%s  %s\n", book.ID, book.Title)
						fmt.Fprintf(out, "    by %s\n", book.AuthorLine())
						if details := bookDetails(book.Language, book.FileType, book.FileSize, book.Year); details != "" {
							fmt.Fprintf(out, "    %s\n", details)
						}
					}
					return nil
				},
			},
			{
				Name:      "downloads",
				Usage:     "list download links for a book",
				ArgsUsage: "<md5>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "print links as JSON"},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errcodes.ValidationError("exactly one book id is required")
					}

					client, closeCache, err := newClient(c.Context, cfg)
					if err != nil {
						return err
					}
					defer closeCache()

					urls, err := downloads.NewService(cfg, client).URLs(c.Context, c.Args().First())
					if err != nil {
						return err
					}

					if c.Bool("json") {
						return writeJSON(out, urls)
					}
					all := urls.All()
					if len(all) == 0 {
						fmt.Fprintln(out, "No download links found.")
						return nil
					}
					for _, u := range all {
						fmt.Fprintln(out, u)
					}
					return nil
				},
			},
			{
				Name:      "authors",
				Usage:     "normalize an author citation",
				ArgsUsage: "<citation>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "publisher", Aliases: []string{"p"}, Usage: "publisher used when the citation is only a placeholder"},
					&cli.BoolFlag{Name: "explain", Usage: "print every step as JSON"},
				},
				Action: func(c *cli.Context) error {
					citation := strings.Join(c.Args().Slice(), " ")
					exp := authors.Explain(citation, c.String("publisher"))
					if c.Bool("explain") {
						return writeJSON(out, exp)
					}
					for _, name := range exp.Authors {
						fmt.Fprintln(out, name)
					}
					return nil
				},
			},
			{
				Name:  "cache",
				Usage: "manage the page cache",
				Subcommands: []*cli.Command{
					{
						Name:  "purge",
						Usage: "delete expired pages",
						Action: func(c *cli.Context) error {
							if !cfg.CacheEnabled() {
								return errors.New("the page cache is disabled because DATABASE_FILE_PATH is not set")
							}
							cache, closeCache, err := openCache(c.Context, cfg)
							if err != nil {
								return err
							}
							defer closeCache()

							n, err := cache.Purge(c.Context)
							if err != nil {
								return err
							}
							fmt.Fprintf(out, "Purged %d expired pages\n", n)
							return nil
						},
					},
				},
			},
		},
	}
}

// openCache returns the page cache when one is configured, with a close
// function that is always safe to call.
func openCache(ctx context.Context, cfg *config.Config) (*pagecache.Cache, func(), error) {
	if !cfg.CacheEnabled() {
		return nil, func() {}, nil
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	if _, err := migrations.BringUpToDate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, errors.WithStack(err)
	}

	return pagecache.New(db, cfg.CacheTTL), func() { _ = db.Close() }, nil
}

func newClient(ctx context.Context, cfg *config.Config) (*fetch.Client, func(), error) {
	cache, closeCache, err := openCache(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if cache == nil {
		return fetch.New(cfg, nil), closeCache, nil
	}
	return fetch.New(cfg, cache), closeCache, nil
}

func bookDetails(lang, fileType, fileSize string, year *int) string {
	parts := []string{}
	for _, p := range []string{lang, fileType, fileSize} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if year != nil {
		parts = append(parts, fmt.Sprint(*year))
	}
	return strings.Join(parts, " · ")
}

func writeJSON(out io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = fmt.Fprintln(out, string(b))
	return errors.WithStack(err)
}
