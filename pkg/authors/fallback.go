package authors

import (
	"regexp"
	"strings"
)

// BibliographicTerms are placeholder role terms that stand in for a missing
// personal author.
var BibliographicTerms = []string{
	"Collection",
	"Editor",
	"Editors",
	"Compiler",
	"Translator",
}

// publisherYearRE matches the ", 2018 ..." tail of a publisher field.
var publisherYearRE = regexp.MustCompile(`,?[\s\p{Zs}]*\d{4}.*$`)

// IsBibliographicTerm reports whether text is exactly one of the
// BibliographicTerms.
func IsBibliographicTerm(text string) bool {
	for _, term := range BibliographicTerms {
		if text == term {
			return true
		}
	}
	return false
}

// CleanPublisher strips everything from the first 4-digit year onwards:
// "SitePoint, 2018" -> "SitePoint".
func CleanPublisher(text string) string {
	return strings.TrimSpace(publisherYearRE.ReplaceAllString(text, ""))
}

// applyPublisherFallback replaces a list that starts with a bibliographic
// placeholder (e.g. "Collection") with the publisher name, if there is one.
// The second return value reports whether the replacement happened.
func applyPublisherFallback(names []string, publisher string) ([]string, bool) {
	if len(names) == 0 || strings.TrimSpace(publisher) == "" {
		return names, false
	}
	if !IsBibliographicTerm(names[0]) {
		return names, false
	}

	if cleaned := CleanPublisher(publisher); cleaned != "" {
		return []string{cleaned}, true
	}
	return names, false
}
