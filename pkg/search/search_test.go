package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/shishobooks/archivist/pkg/binder"
	"github.com/shishobooks/archivist/pkg/config"
	"github.com/shishobooks/archivist/pkg/errcodes"
	"github.com/shishobooks/archivist/pkg/fetch"
	"github.com/shishobooks/archivist/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/search.html")
	require.NoError(t, err)
	return string(b)
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		opts Options
		want string
	}{
		{"query only", "https://annas-archive.org", Options{Query: "dune"}, "https://annas-archive.org/search?q=dune"},
		{"trailing slash", "https://annas-archive.org/", Options{Query: "dune"}, "https://annas-archive.org/search?q=dune"},
		{"escapes query", "https://annas-archive.org", Options{Query: "war & peace"}, "https://annas-archive.org/search?q=war+%26+peace"},
		{"all filters", "https://annas-archive.org", Options{Query: "dune", Ext: "epub", Lang: "en"}, "https://annas-archive.org/search?ext=epub&lang=en&q=dune"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BuildURL(tt.base, tt.opts))
		})
	}
}

func TestParseResults(t *testing.T) {
	t.Parallel()

	books, err := ParseResults(loadFixture(t), 0)
	require.NoError(t, err)
	require.Len(t, books, 5)

	for _, book := range books {
		assert.Regexp(t, `^[0-9a-f]{32}$`, book.ID)
	}

	t.Run("extracts the first result", func(t *testing.T) {
		b := books[0]
		assert.Equal(t, "0a1b2c3d4e5f60718293a4b5c6d7e8f9", b.ID)
		assert.Equal(t, "Docker for Rails Developers", b.Title)
		assert.Equal(t, []string{"Rob Isenberg"}, b.Authors)
		assert.Equal(t, "Pragmatic Bookshelf, 2019", b.Publisher)
		assert.Equal(t, "en", b.Language)
		assert.Equal(t, "PDF", b.FileType)
		assert.Equal(t, "5.1MB", b.FileSize)
		require.NotNil(t, b.Year)
		assert.Equal(t, 2019, *b.Year)
		assert.Equal(t, "https://covers.example.org/docker.jpg", b.Thumbnail)
	})

	t.Run("splits authors joined with and", func(t *testing.T) {
		assert.Equal(t, []string{"Ray Yao", "Ada R. Swift", "Ruby C. Perl"}, books[1].Authors)
		assert.Empty(t, books[1].Thumbnail)
	})

	t.Run("falls back to the publisher for placeholders", func(t *testing.T) {
		assert.Equal(t, []string{"SitePoint"}, books[2].Authors)
		assert.Equal(t, "MOBI", books[2].FileType)
	})

	t.Run("handles cyrillic names and a missing year", func(t *testing.T) {
		b := books[3]
		assert.Equal(t, "3d4e5f60718293a4b5c6d7e8f90a1b2c", b.ID)
		assert.Equal(t, []string{"Лев Толстой"}, b.Authors)
		assert.Equal(t, "ru", b.Language)
		assert.Equal(t, "FB2", b.FileType)
		assert.Nil(t, b.Year)
	})

	t.Run("skips rows that fail validation", func(t *testing.T) {
		for _, b := range books {
			assert.NotEqual(t, "Broken Record", b.Title)
		}
		assert.Equal(t, []string{"W. Richard Stevens", "Stephen A. Rago"}, books[4].Authors)
	})
}

func TestParseResults_Limit(t *testing.T) {
	t.Parallel()

	books, err := ParseResults(loadFixture(t), 2)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Docker for Rails Developers", books[0].Title)
}

func TestParseResults_NoRows(t *testing.T) {
	t.Parallel()

	books, err := ParseResults(`<html><body><p>No files found.</p></body></html>`, 0)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestParseResults_NoParsableRows(t *testing.T) {
	t.Parallel()

	html := `<div class="js-aarecord-list-outer"><div class="flex pt-3"><span>empty</span></div></div>`
	_, err := ParseResults(html, 0)
	require.Error(t, err)

	var e *errcodes.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "parse_error", e.Code)
	assert.Equal(t, "Could not parse any books from search results", e.Message)
}

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewForTest()
	cfg.BaseURL = srv.URL
	return NewService(cfg, fetch.New(cfg, nil))
}

func TestService_Search(t *testing.T) {
	t.Parallel()

	fixture := loadFixture(t)
	var gotPath, gotQuery string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(fixture))
	})

	results, err := svc.Search(context.Background(), Options{Query: " rails ", Ext: "pdf", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "ext=pdf&q=rails", gotQuery)
	require.Len(t, results.Books, 1)
	assert.Equal(t, 1, results.Total)
}

func TestService_Search_RequiresQuery(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := svc.Search(context.Background(), Options{Query: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"q" is required`)
}

func TestService_Search_UpstreamError(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := svc.Search(context.Background(), Options{Query: "dune"})
	require.Error(t, err)
	assert.True(t, errcodes.IsRetryable(err))
}

func TestHandler_Search(t *testing.T) {
	t.Parallel()

	fixture := loadFixture(t)
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(fixture))
	})

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle
	RegisterRoutes(e, svc)

	t.Run("returns books", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search?q=rails&limit=3", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body models.SearchResults
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 3, body.Total)
		assert.Len(t, body.Books, 3)
	})

	t.Run("rejects a missing query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `\"q\" is required`)
	})
}
