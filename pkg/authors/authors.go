// Package authors normalizes free-form author citations from catalog records
// ("Smith, John", "Ray Yao, Ada R. Swift, and Ruby C. Perl", "coll.") into
// ordered lists of clean, human-readable names.
//
// A citation goes through three stages: bracketed annotations are removed,
// exactly one splitting Strategy is selected and applied, and every resulting
// fragment is run through a fixed pipeline of Transforms. Finally, a citation
// that only names a bibliographic role ("Collection", "Editor", ...) is
// replaced with the publisher, when one is known.
//
// Everything in this package is pure and safe for concurrent use.
package authors

import (
	"strings"
)

// Parse normalizes an author citation into a list of names. Blank input
// results in an empty list.
func Parse(citation string) []string {
	return ParseWithPublisher(citation, "")
}

// ParseWithPublisher is like Parse, but falls back to the publisher name when
// the citation only contains a bibliographic role term such as "coll.".
func ParseWithPublisher(citation, publisher string) []string {
	return Explain(citation, publisher).Authors
}

// Step is the output of a single transform.
type Step struct {
	Transform string `json:"transform"`
	Output    string `json:"output"`
}

// FragmentTrace records how one raw fragment was cleaned.
type FragmentTrace struct {
	Raw   string `json:"raw"`
	Steps []Step `json:"steps"`
	Name  string `json:"name"`
}

// Explanation describes every decision made while normalizing a citation. It
// is meant for debugging catalog records that come out wrong.
type Explanation struct {
	Citation         string          `json:"citation"`
	Cleaned          string          `json:"cleaned"`
	Strategy         string          `json:"strategy"`
	Fragments        []FragmentTrace `json:"fragments"`
	PublisherApplied bool            `json:"publisher_applied"`
	Authors          []string        `json:"authors"`
}

// Explain normalizes the citation and returns the intermediate results along
// with the authors.
func Explain(citation, publisher string) *Explanation {
	exp := &Explanation{
		Citation:  citation,
		Fragments: []FragmentTrace{},
		Authors:   []string{},
	}
	if strings.TrimSpace(citation) == "" {
		return exp
	}

	// Brackets have to go before strategy detection since they often contain
	// commas ("Casey, Elle [Casey, Elle]").
	exp.Cleaned = RemoveBrackets(citation)
	strategy := SelectStrategy(exp.Cleaned)
	exp.Strategy = strategy.Name

	names := make([]string, 0, 1)
	for _, fragment := range strategy.Split(exp.Cleaned) {
		trace := FragmentTrace{Raw: fragment, Steps: make([]Step, 0, len(pipeline))}
		text := fragment
		for _, step := range pipeline {
			text = step.fn(text)
			trace.Steps = append(trace.Steps, Step{Transform: step.name, Output: text})
		}
		trace.Name = text
		exp.Fragments = append(exp.Fragments, trace)

		if strings.TrimSpace(text) != "" {
			names = append(names, text)
		}
	}

	exp.Authors, exp.PublisherApplied = applyPublisherFallback(names, publisher)

	return exp
}
