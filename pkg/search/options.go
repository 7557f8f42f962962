package search

import (
	"net/url"
	"strings"
)

// Options are the parameters of a catalog search. Ext filters by file
// extension and Lang by language code.
type Options struct {
	Query string `query:"q" json:"q" mod:"trim" validate:"required,max=200"`
	Ext   string `query:"ext" json:"ext,omitempty" mod:"trim,lcase" validate:"omitempty,alphanum,max=10"`
	Lang  string `query:"lang" json:"lang,omitempty" mod:"trim,lcase" validate:"lang"`
	Limit int    `query:"limit" json:"limit,omitempty" validate:"min=0,max=100"`
}

// BuildURL returns the catalog search URL for opts.
func BuildURL(base string, opts Options) string {
	params := url.Values{}
	params.Set("q", opts.Query)
	if opts.Ext != "" {
		params.Set("ext", opts.Ext)
	}
	if opts.Lang != "" {
		params.Set("lang", opts.Lang)
	}
	return strings.TrimRight(base, "/") + "/search?" + params.Encode()
}
