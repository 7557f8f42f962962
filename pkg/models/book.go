package models

import (
	"strings"
)

// Book is a single search result from the catalog.
type Book struct {
	ID        string   `json:"id" validate:"required,len=32,hexadecimal"`
	Title     string   `json:"title" validate:"required"`
	Authors   []string `json:"authors"`
	Publisher string   `json:"publisher,omitempty"`
	FileType  string   `json:"file_type,omitempty"`
	FileSize  string   `json:"file_size,omitempty"`
	Year      *int     `json:"year,omitempty" validate:"omitempty,min=1000,max=2100"`
	Language  string   `json:"language,omitempty" validate:"omitempty,min=2,max=3,alpha"`
	Thumbnail string   `json:"thumbnail,omitempty"`
}

// AuthorLine joins the book's authors for display.
func (b *Book) AuthorLine() string {
	if len(b.Authors) == 0 {
		return "Unknown"
	}
	return strings.Join(b.Authors, ", ")
}

// SearchResults is the response body of a search.
type SearchResults struct {
	Books []*Book `json:"books"`
	Total int     `json:"total"`
}
