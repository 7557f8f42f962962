package authors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransforms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		transform Transform
		input     string
		expected  string
	}{
		// RemoveBrackets
		{"brackets removed", RemoveBrackets, "Casey, Elle [Casey, Elle]", "Casey, Elle"},
		{"multiple brackets removed", RemoveBrackets, "[x] Smith [y], John [z]", "Smith, John"},
		{"brackets are non-greedy", RemoveBrackets, "A [1] B [2] C", "ABC"},
		{"no brackets", RemoveBrackets, "  Smith  ", "Smith"},
		{"unmatched bracket", RemoveBrackets, "Smith [John", "Smith [John"},

		// RemoveParentheses
		{"parentheses removed", RemoveParentheses, "Artur Mizera (editor)", "Artur Mizera"},
		{"unmatched parenthesis", RemoveParentheses, "Artur (Mizera", "Artur (Mizera"},

		// RemovePrefixes
		{"by", RemovePrefixes, "By Winston Churchill", "Winston Churchill"},
		{"by lowercase", RemovePrefixes, "by Winston Churchill", "Winston Churchill"},
		{"illustrated by", RemovePrefixes, "Illustrated by J.H. Gardner Soper", "J.H. Gardner Soper"},
		{"by as part of a name", RemovePrefixes, "Byron Katie", "Byron Katie"},
		{"compiler marker", RemovePrefixes, "Составитель - Sheila Pemberton", "Sheila Pemberton"},
		{"compiler marker without spaces", RemovePrefixes, "Составитель-Sheila Pemberton", "Sheila Pemberton"},
		{"compiler marker lowercase", RemovePrefixes, "составитель - Sheila Pemberton", "Sheila Pemberton"},
		{"russian text marker", RemovePrefixes, "Русский Текст - И. Б. Соболева", "И. Б. Соболева"},
		{"illustrations marker", RemovePrefixes, "Иллюстрации - Val Biro", "Val Biro"},
		{"russian text marker with non-breaking spaces", RemovePrefixes, "Русский\u00a0Текст\u00a0- И. Б. Соболева", "И. Б. Соболева"},

		// ExpandAbbreviations
		{"coll.", ExpandAbbreviations, "coll.", "Collection"},
		{"uppercase ed.", ExpandAbbreviations, " ED. ", "Editor"},
		{"eds", ExpandAbbreviations, "eds", "Editors"},
		{"comp", ExpandAbbreviations, "comp", "Compiler"},
		{"trans.", ExpandAbbreviations, "Trans.", "Translator"},
		{"partial match untouched", ExpandAbbreviations, "Fred ed.", "Fred ed."},

		// RemoveTrailingPeriod
		{"trailing period on word", RemoveTrailingPeriod, "Val Biro.", "Val Biro"},
		{"trailing period with whitespace", RemoveTrailingPeriod, "Val Biro.  ", "Val Biro"},
		{"trailing period with non-breaking space", RemoveTrailingPeriod, "Val Biro.\u00a0", "Val Biro"},
		{"cyrillic trailing period", RemoveTrailingPeriod, "И. Б. Соболева.", "И. Б. Соболева"},
		{"initial kept", RemoveTrailingPeriod, "Martin J.", "Martin J."},
		{"two letter abbreviation kept", RemoveTrailingPeriod, "King Jr.", "King Jr."},
		{"no period", RemoveTrailingPeriod, "Val Biro", "Val Biro"},

		// ReverseLastNameFirst
		{"reversed", ReverseLastNameFirst, "Smith, John", "John Smith"},
		{"reversed and trimmed", ReverseLastNameFirst, "  Smith ,  John  ", "John Smith"},
		{"no comma", ReverseLastNameFirst, "John Smith", "John Smith"},
		{"two commas", ReverseLastNameFirst, "Smith, John, Jr.", "Smith, John, Jr."},
		{"blank first name", ReverseLastNameFirst, "Smith, ", "Smith, "},
		{"blank last name", ReverseLastNameFirst, " , John", " , John"},

		// CapitalizeWords
		{"lowercase", CapitalizeWords, "yang hu", "Yang Hu"},
		{"uppercase", CapitalizeWords, "JOHN SMITH", "John Smith"},
		{"initials untouched", CapitalizeWords, "j.k. rowling", "j.k. Rowling"},
		{"cyrillic", CapitalizeWords, "петр иванов", "Петр Иванов"},
		{"accented first letter", CapitalizeWords, "émile zola", "Émile Zola"},
		{"collapses whitespace", CapitalizeWords, "john   smith", "John Smith"},
		{"url untouched", CapitalizeWords, "HTTPS://Example.com/Some Path", "HTTPS://Example.com/Some Path"},
		{"empty", CapitalizeWords, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.transform(tt.input))
		})
	}
}

func TestApplyTransforms(t *testing.T) {
	t.Parallel()

	t.Run("default pipeline", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Elle Casey", ApplyTransforms("casey, elle [Casey, Elle] (author)"))
	})

	t.Run("abbreviation expanded before period is stripped", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Collection", ApplyTransforms("coll."))
		assert.Equal(t, "Editors", ApplyTransforms("(compiled) eds."))
	})

	t.Run("custom transforms run left to right", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "John Smith", ApplyTransforms("smith, john", ReverseLastNameFirst, CapitalizeWords))
		assert.Equal(t, "John Smith", ApplyTransforms("smith, john", CapitalizeWords, ReverseLastNameFirst))
		assert.Equal(t, "Smith, John", ApplyTransforms("smith, john", CapitalizeWords))
	})

	t.Run("default order", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, Transforms(), 7)
	})
}
