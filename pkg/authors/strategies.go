package authors

import (
	"regexp"
	"strings"
)

// Strategy is a named rule for deciding whether, and how, a citation is split
// into raw name fragments. Strategies are evaluated in priority order and the
// first one whose Detect returns true is the only one applied.
type Strategy struct {
	Name   string
	Detect func(text string) bool
	Split  func(text string) []string
}

var (
	// andSeparatorRE matches the "and" / "&" separator between two names.
	andSeparatorRE = regexp.MustCompile(`[\s\p{Zs}]+(?:and|&)[\s\p{Zs}]+`)

	// sentencePeriodRE matches a word of 3+ letters that ends a sentence and
	// is followed by a capitalized word, e.g. "Pemberton. Русский".
	sentencePeriodRE = regexp.MustCompile(`[a-zA-Zа-яА-ЯёЁ]{3,}\.[\s\p{Zs}]+[A-ZА-ЯЁ]`)

	// sentenceBoundaryRE captures the "period + whitespace" boundary that
	// follows a word of 3+ letters. Shorter words are initials ("И. Б.").
	sentenceBoundaryRE = regexp.MustCompile(`[a-zA-Zа-яА-ЯёЁ]{3,}(\.[\s\p{Zs}]+)`)

	// honorificRE matches short title suffixes like "St." or "Jr.".
	honorificRE = regexp.MustCompile(`^[A-Z][a-z]{0,3}\.?$`)
)

// SemicolonStrategy splits on semicolons: "Maurya, Rahul; Maurya, Rahul".
var SemicolonStrategy = Strategy{
	Name: "semicolon",
	Detect: func(text string) bool {
		return strings.Contains(text, ";")
	},
	Split: func(text string) []string {
		return compact(strings.Split(text, ";"))
	},
}

// PeriodDelimitedStrategy splits role-annotated names that are separated by
// sentence-ending periods, which is common in Cyrillic catalog records:
// "Составитель - Sheila Pemberton. Иллюстрации - Val Biro.". Two boundaries
// are required so that a lone abbreviation doesn't trigger a split.
var PeriodDelimitedStrategy = Strategy{
	Name: "period-delimited",
	Detect: func(text string) bool {
		if hasAndSeparator(text) {
			return false
		}
		return len(sentencePeriodRE.FindAllStringIndex(text, -1)) >= 2
	},
	Split: func(text string) []string {
		var parts []string
		start := 0
		for _, m := range sentenceBoundaryRE.FindAllStringSubmatchIndex(text, -1) {
			parts = append(parts, text[start:m[2]])
			start = m[3]
		}
		parts = append(parts, text[start:])
		return compact(parts)
	},
}

// CommaAndStrategy handles lists that mix both separators:
// "Ray Yao, Ada R. Swift, and Ruby C. Perl".
var CommaAndStrategy = Strategy{
	Name: "comma-and",
	Detect: func(text string) bool {
		return strings.Contains(text, ",") && hasAndSeparator(text)
	},
	Split: func(text string) []string {
		var parts []string
		for _, segment := range strings.Split(text, ",") {
			if hasAndSeparator(segment) {
				parts = append(parts, andSeparatorRE.Split(segment, -1)...)
				continue
			}
			parts = append(parts, segment)
		}
		return compact(parts)
	},
}

// AndStrategy splits on "and" / "&": "W. Richard Stevens & Stephen A. Rago".
var AndStrategy = Strategy{
	Name:   "and",
	Detect: hasAndSeparator,
	Split: func(text string) []string {
		return compact(andSeparatorRE.Split(text, -1))
	},
}

// CommaStrategy splits on commas with a few special shapes:
//   - "LastName, FirstName" (2 parts, 1-2 words each) is kept together so the
//     transform pipeline can reorder it
//   - "LastName, FirstName, Honorific" becomes "Honorific FirstName LastName"
//   - "LastName, FirstName, Organization" becomes "FirstName LastName" and
//     "Organization"
var CommaStrategy = Strategy{
	Name: "comma",
	Detect: func(text string) bool {
		return strings.Contains(text, ",")
	},
	Split: func(text string) []string {
		parts := strings.Split(text, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch len(parts) {
		case 3:
			lastName, firstName, third := parts[0], parts[1], parts[2]
			if lastName == "" || firstName == "" || third == "" {
				return parts
			}
			if wordCount(third) <= 2 && honorificRE.MatchString(third) {
				return []string{third + " " + firstName + " " + lastName}
			}
			return []string{firstName + " " + lastName, third}
		case 2:
			if wordCount(parts[0]) <= 2 && wordCount(parts[1]) <= 2 {
				return []string{text}
			}
		}

		return parts
	},
}

// SingleAuthorStrategy is the fallback: the whole citation is one name.
var SingleAuthorStrategy = Strategy{
	Name: "single",
	Detect: func(string) bool {
		return true
	},
	Split: func(text string) []string {
		return []string{text}
	},
}

// Strategies is the priority-ordered decision list. Order matters: CommaAnd
// must run before And, and Semicolon before everything else.
var Strategies = []Strategy{
	SemicolonStrategy,
	PeriodDelimitedStrategy,
	CommaAndStrategy,
	AndStrategy,
	CommaStrategy,
	SingleAuthorStrategy,
}

// SelectStrategy returns the first strategy whose Detect matches the text.
func SelectStrategy(text string) Strategy {
	for _, s := range Strategies {
		if s.Detect(text) {
			return s
		}
	}
	return SingleAuthorStrategy
}

func hasAndSeparator(text string) bool {
	return strings.Contains(text, " and ") || strings.Contains(text, " & ")
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// compact trims every part and drops the empty ones.
func compact(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
