package authors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "semicolon wins over everything",
			input:    "Yao, Ray; Swift, Ada and Perl, Ruby",
			expected: "semicolon",
		},
		{
			name:     "two sentence boundaries",
			input:    "Составитель - Sheila Pemberton. Иллюстрации - Val Biro. Редактор - Иван Петров",
			expected: "period-delimited",
		},
		{
			name:     "single sentence boundary is not enough",
			input:    "Составитель - Sheila Pemberton. Val Biro",
			expected: "single",
		},
		{
			name:     "initials never count as boundaries",
			input:    "И. Б. Соболева",
			expected: "single",
		},
		{
			name:     "non-breaking spaces after sentence periods",
			input:    "Составитель - Sheila Pemberton.\u00a0Иллюстрации - Val Biro.\u00a0Редактор - Иван Петров",
			expected: "period-delimited",
		},
		{
			name:     "and token disables period splitting",
			input:    "Foo Pemberton. Bar Biro. Baz and Qux",
			expected: "and",
		},
		{
			name:     "comma and and",
			input:    "Ray Yao, Ada R. Swift, and Ruby C. Perl",
			expected: "comma-and",
		},
		{
			name:     "comma and ampersand",
			input:    "Sullivan, William & Stevens, W. Richard",
			expected: "comma-and",
		},
		{
			name:     "and only",
			input:    "John Doe and Jane Smith",
			expected: "and",
		},
		{
			name:     "and inside a word is not a separator",
			input:    "Alexander Andrews",
			expected: "single",
		},
		{
			name:     "comma only",
			input:    "Smith, John",
			expected: "comma",
		},
		{
			name:     "no separators",
			input:    "Rob Isenberg",
			expected: "single",
		},
		{
			name:     "empty",
			input:    "",
			expected: "single",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, SelectStrategy(tt.input).Name)
		})
	}
}

func TestStrategies_Order(t *testing.T) {
	t.Parallel()

	names := make([]string, len(Strategies))
	for i, s := range Strategies {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"semicolon", "period-delimited", "comma-and", "and", "comma", "single"}, names)
}

func TestStrategy_Split(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		strategy Strategy
		input    string
		expected []string
	}{
		{
			name:     "semicolon drops empty parts",
			strategy: SemicolonStrategy,
			input:    "Maurya, Rahul; ; Maurya, Rahul;",
			expected: []string{"Maurya, Rahul", "Maurya, Rahul"},
		},
		{
			name:     "period delimited keeps initials together",
			strategy: PeriodDelimitedStrategy,
			input:    "Составитель - Sheila Pemberton. Русский Текст - И. Б. Соболева. Иллюстрации - Val Biro.",
			expected: []string{"Составитель - Sheila Pemberton", "Русский Текст - И. Б. Соболева", "Иллюстрации - Val Biro."},
		},
		{
			name:     "period delimited with non-breaking spaces",
			strategy: PeriodDelimitedStrategy,
			input:    "Составитель - Sheila Pemberton.\u00a0Русский Текст - И. Б. Соболева.\u00a0Иллюстрации - Val Biro.",
			expected: []string{"Составитель - Sheila Pemberton", "Русский Текст - И. Б. Соболева", "Иллюстрации - Val Biro."},
		},
		{
			name:     "and separator with non-breaking spaces",
			strategy: AndStrategy,
			input:    "W. Richard Stevens\u00a0& Stephen A. Rago",
			expected: []string{"W. Richard Stevens", "Stephen A. Rago"},
		},
		{
			name:     "period delimited latin",
			strategy: PeriodDelimitedStrategy,
			input:    "Editor - John Smith. Artist - Jane Doe. Letters - Bob Roe",
			expected: []string{"Editor - John Smith", "Artist - Jane Doe", "Letters - Bob Roe"},
		},
		{
			name:     "comma and strips the leading and",
			strategy: CommaAndStrategy,
			input:    "Ray Yao, Ada R. Swift, and Ruby C. Perl",
			expected: []string{"Ray Yao", "Ada R. Swift", "Ruby C. Perl"},
		},
		{
			name:     "comma and with ampersand inside a segment",
			strategy: CommaAndStrategy,
			input:    "Sullivan, William & Stevens, W. Richard",
			expected: []string{"Sullivan", "William", "Stevens", "W. Richard"},
		},
		{
			name:     "and with extra whitespace",
			strategy: AndStrategy,
			input:    "John Doe   and  Jane Smith",
			expected: []string{"John Doe", "Jane Smith"},
		},
		{
			name:     "and with several separators",
			strategy: AndStrategy,
			input:    "A One & B Two and C Three",
			expected: []string{"A One", "B Two", "C Three"},
		},
		{
			name:     "comma honorific",
			strategy: CommaStrategy,
			input:    "Chrysostom, John, St.",
			expected: []string{"St. John Chrysostom"},
		},
		{
			name:     "comma honorific without period",
			strategy: CommaStrategy,
			input:    "King, Martin, Jr",
			expected: []string{"Jr Martin King"},
		},
		{
			name:     "comma roman numerals are treated as organization",
			strategy: CommaStrategy,
			input:    "Gates, William, III.",
			expected: []string{"William Gates", "III."},
		},
		{
			name:     "comma cyrillic honorific is treated as organization",
			strategy: CommaStrategy,
			input:    "Иванов, Петр, Св.",
			expected: []string{"Петр Иванов", "Св."},
		},
		{
			name:     "comma organization",
			strategy: CommaStrategy,
			input:    "Mighton, John, Jump Math",
			expected: []string{"John Mighton", "Jump Math"},
		},
		{
			name:     "comma three parts with an empty part",
			strategy: CommaStrategy,
			input:    "Mighton, , Jump Math",
			expected: []string{"Mighton", "", "Jump Math"},
		},
		{
			name:     "comma last name first is kept whole",
			strategy: CommaStrategy,
			input:    "Le Guin, Ursula K.",
			expected: []string{"Le Guin, Ursula K."},
		},
		{
			name:     "comma long parts are split",
			strategy: CommaStrategy,
			input:    "Jaime González García, Artur Mizera",
			expected: []string{"Jaime González García", "Artur Mizera"},
		},
		{
			name:     "comma four parts are split",
			strategy: CommaStrategy,
			input:    "A, B, C, D",
			expected: []string{"A", "B", "C", "D"},
		},
		{
			name:     "single",
			strategy: SingleAuthorStrategy,
			input:    "Rob Isenberg",
			expected: []string{"Rob Isenberg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.strategy.Split(tt.input))
		})
	}
}
