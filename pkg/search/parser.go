package search

import (
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shishobooks/archivist/pkg/authors"
	"github.com/shishobooks/archivist/pkg/errcodes"
	"github.com/shishobooks/archivist/pkg/models"
)

const (
	rowSelector      = ".js-aarecord-list-outer .flex.pt-3"
	bookLinkSelector = "a[href*='/md5/']"
	citationSelector = "a[href*='/search?q=']"
	metadataSelector = ".text-gray-800"
	metadataSep      = " · "
)

var (
	languageCodeRE = regexp.MustCompile(`(?i)\[([a-z]{2,3})\]`)
	fileTypeTagRE  = regexp.MustCompile(`\s*\[.*?\]\s*`)
	yearRE         = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	validate = validator.New()
)

// ParseResults parses a catalog search page. At most limit books are returned
// when limit is positive.
func ParseResults(html string, limit int) ([]*models.Book, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ParseDocument(doc, limit)
}

// ParseDocument is ParseResults for an already parsed page. Rows that are
// missing an ID or title, or that fail validation, are skipped.
func ParseDocument(doc *goquery.Document, limit int) ([]*models.Book, error) {
	rows := doc.Find(rowSelector)
	books := make([]*models.Book, 0, rows.Length())

	rows.Each(func(_ int, row *goquery.Selection) {
		book := parseRow(row)
		if book == nil {
			return
		}
		if err := validate.Struct(book); err != nil {
			return
		}
		books = append(books, book)
	})

	if len(books) == 0 && rows.Length() > 0 {
		return nil, errcodes.ParseError("Could not parse any books from search results")
	}

	if limit > 0 && len(books) > limit {
		books = books[:limit]
	}
	return books, nil
}

func parseRow(row *goquery.Selection) *models.Book {
	href, ok := row.Find(bookLinkSelector).First().Attr("href")
	if !ok {
		return nil
	}
	id := path.Base(strings.TrimRight(href, "/"))

	title := strings.TrimSpace(row.Find("a").Eq(1).Text())
	if id == "" || title == "" {
		return nil
	}

	citations := row.Find(citationSelector)
	citation := strings.TrimSpace(citations.First().Text())
	publisher := ""
	if citations.Length() > 1 {
		publisher = strings.TrimSpace(citations.Eq(1).Text())
	}

	book := &models.Book{
		ID:        strings.ToLower(id),
		Title:     title,
		Authors:   authors.ParseWithPublisher(citation, publisher),
		Publisher: publisher,
	}
	parseMetadata(book, row.Find(metadataSelector).Text())

	if src, ok := row.Find("img").Attr("src"); ok {
		book.Thumbnail = strings.TrimSpace(src)
	}

	return book
}

// parseMetadata reads the "[en] · PDF · 5.1MB · 2019" line under a result.
func parseMetadata(book *models.Book, text string) {
	parts := strings.Split(text, metadataSep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	part := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	if m := languageCodeRE.FindStringSubmatch(part(0)); m != nil {
		book.Language = strings.ToLower(m[1])
	}
	book.FileType = strings.TrimSpace(fileTypeTagRE.ReplaceAllString(part(1), ""))
	book.FileSize = part(2)
	if y := yearRE.FindString(part(3)); y != "" {
		year, err := strconv.Atoi(y)
		if err == nil {
			book.Year = &year
		}
	}
}
