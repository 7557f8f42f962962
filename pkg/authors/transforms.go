package authors

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Transform is a single cleanup step applied to one name fragment.
type Transform func(text string) string

var (
	bracketsRE       = regexp.MustCompile(`[\s\p{Zs}]*\[.*?\][\s\p{Zs}]*`)
	parenthesesRE    = regexp.MustCompile(`[\s\p{Zs}]*\(.*?\)[\s\p{Zs}]*`)
	bylinePrefixRE   = regexp.MustCompile(`(?i)^(By|Illustrated[\s\p{Zs}]+By)[\s\p{Zs}]+`)
	rolePrefixRE     = regexp.MustCompile(`(?i)^(Составитель[\s\p{Zs}]*-|Русский[\s\p{Zs}]Текст[\s\p{Zs}]*-|Иллюстрации[\s\p{Zs}]*-)[\s\p{Zs}]*`)
	trailingPeriodRE = regexp.MustCompile(`([a-zа-яёA-ZА-ЯЁ]{3,})\.[\s\p{Zs}]*$`)
	urlRE            = regexp.MustCompile(`(?i)^https?://`)
)

// abbreviations maps whole-fragment bibliographic abbreviations to the role
// term they stand for.
var abbreviations = map[string]string{
	"coll.":  "Collection",
	"coll":   "Collection",
	"ed.":    "Editor",
	"ed":     "Editor",
	"eds.":   "Editors",
	"eds":    "Editors",
	"comp.":  "Compiler",
	"comp":   "Compiler",
	"trans.": "Translator",
	"trans":  "Translator",
}

// RemoveBrackets strips "[...]" annotations, e.g. "Casey, Elle [Casey, Elle]".
func RemoveBrackets(text string) string {
	return strings.TrimSpace(bracketsRE.ReplaceAllString(text, ""))
}

// RemoveParentheses strips "(...)" qualifiers such as "(editor)".
func RemoveParentheses(text string) string {
	return strings.TrimSpace(parenthesesRE.ReplaceAllString(text, ""))
}

// RemovePrefixes strips "By", "Illustrated by" and the Russian role markers
// used by some catalogs ("Составитель -", "Русский Текст -", "Иллюстрации -").
func RemovePrefixes(text string) string {
	cleaned := bylinePrefixRE.ReplaceAllString(text, "")
	cleaned = rolePrefixRE.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// ExpandAbbreviations replaces a fragment that is entirely a bibliographic
// abbreviation ("coll.", "eds") with its role term. Partial matches are left
// alone.
func ExpandAbbreviations(text string) string {
	if expanded, ok := abbreviations[strings.ToLower(strings.TrimSpace(text))]; ok {
		return expanded
	}
	return text
}

// RemoveTrailingPeriod drops a final period when the word before it has at
// least 3 letters, so "Biro." loses its period but the initial in "J." keeps it.
func RemoveTrailingPeriod(text string) string {
	return trailingPeriodRE.ReplaceAllString(text, "${1}")
}

// ReverseLastNameFirst turns "Lastname, Firstname" into "Firstname Lastname".
// Anything other than exactly two non-blank comma-separated parts is returned
// unchanged.
func ReverseLastNameFirst(text string) string {
	if !strings.Contains(text, ",") {
		return text
	}

	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return text
	}

	lastName := strings.TrimSpace(parts[0])
	firstName := strings.TrimSpace(parts[1])
	if lastName == "" || firstName == "" {
		return text
	}

	return firstName + " " + lastName
}

// CapitalizeWords upper-cases the first letter of each word and lower-cases
// the rest. Words containing a period ("J.K.", "St.") and URLs are kept as is.
func CapitalizeWords(text string) string {
	if urlRE.MatchString(text) {
		return text
	}

	// Casers are stateful, so they can't be shared between goroutines.
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	words := strings.Fields(text)
	for i, word := range words {
		if strings.Contains(word, ".") {
			continue
		}
		_, size := utf8.DecodeRuneInString(word)
		words[i] = upper.String(word[:size]) + lower.String(word[size:])
	}
	return strings.Join(words, " ")
}

// transformStep pairs a transform with the name used in explanations.
type transformStep struct {
	name string
	fn   Transform
}

// pipeline is applied to every fragment in this exact order. Abbreviations
// have to be expanded before trailing periods are stripped, and names have to
// be reversed before they're capitalized.
var pipeline = []transformStep{
	{"remove-brackets", RemoveBrackets},
	{"remove-parentheses", RemoveParentheses},
	{"remove-prefixes", RemovePrefixes},
	{"expand-abbreviations", ExpandAbbreviations},
	{"remove-trailing-period", RemoveTrailingPeriod},
	{"reverse-last-name-first", ReverseLastNameFirst},
	{"capitalize-words", CapitalizeWords},
}

// Transforms returns the default pipeline in application order.
func Transforms() []Transform {
	out := make([]Transform, len(pipeline))
	for i, step := range pipeline {
		out[i] = step.fn
	}
	return out
}

// ApplyTransforms runs text through the given transforms left to right. With
// no transforms given, the default pipeline is used.
func ApplyTransforms(text string, transforms ...Transform) string {
	if len(transforms) == 0 {
		transforms = Transforms()
	}
	for _, transform := range transforms {
		text = transform(text)
	}
	return text
}
