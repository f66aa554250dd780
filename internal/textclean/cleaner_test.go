package textclean

import (
	"slices"
	"testing"
)

// TestClean tests punctuation and citation stripping.
func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "citation at the end of a sentence",
			tokens: []string{"Some", "example", "text", "has", "citations.[3]"},
			want:   []string{"Some", "example", "text", "has", "citations"},
		},
		{
			name:   "all punctuation token vanishes",
			tokens: []string{`.,:!?;"-()`},
			want:   []string{},
		},
		{
			name:   "all citation token vanishes",
			tokens: []string{"[1][2][3][4][5]"},
			want:   []string{},
		},
		{
			name:   "mix of citation and punctuation as individual tokens",
			tokens: []string{"[1]", "!", "[3]", "..."},
			want:   []string{},
		},
		{
			name:   "one valid word next to pure punctuation",
			tokens: []string{"Hello", "---"},
			want:   []string{"Hello"},
		},
		{
			name:   "citation in the middle of a sentence",
			tokens: []string{"Citation[3]", "here", "and", "punctuation", "here."},
			want:   []string{"Citation", "here", "and", "punctuation", "here"},
		},
		{
			name:   "unterminated citation discards token remainder",
			tokens: []string{"word[3broken", "next"},
			want:   []string{"word", "next"},
		},
		{
			name:   "empty input",
			tokens: []string{},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Clean(tt.tokens)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Clean(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

// TestCleanIdempotent verifies that cleaning already-clean words is a no-op.
func TestCleanIdempotent(t *testing.T) {
	t.Parallel()

	input := []string{"The", "first", "jet", "aircraft", "flew", "in", "1939"}
	once := Clean(input)
	twice := Clean(once)
	if !slices.Equal(once, twice) {
		t.Errorf("Clean is not idempotent: first pass %v, second pass %v", once, twice)
	}
}

// TestCleanOutputFree verifies no cleaned word retains punctuation or
// an unremoved citation span.
func TestCleanOutputFree(t *testing.T) {
	t.Parallel()

	input := []string{
		"Hello,", "world!", "test[1]", "(parens)", `"quoted"`, "semi;colon",
		"dash-ed", "co:lon", "mixed.[12](x)", "[only][citations]",
	}
	for _, word := range Clean(input) {
		for _, ch := range word {
			for _, p := range punctuation {
				if ch == p {
					t.Errorf("cleaned word %q contains punctuation %q", word, p)
				}
			}
			if ch == '[' || ch == ']' {
				t.Errorf("cleaned word %q contains bracket", word)
			}
		}
	}
}

// TestCleanItems tests whole-line list items split and cleaned together.
func TestCleanItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{
			name: "short sentences with punctuation and citations",
			items: []string{
				"Sometimes, example text has citations.[3][5]",
				"Tried so hard, but in the end, it doesn't even matter![123]",
			},
			want: []string{
				"Sometimes", "example", "text", "has", "citations",
				"Tried", "so", "hard", "but", "in", "the", "end",
				"it", "doesn't", "even", "matter",
			},
		},
		{
			name:  "only punctuation",
			items: []string{`.,:!?;"-()`, ".,.,.,.,.,.!", "???????????"},
			want:  []string{},
		},
		{
			name:  "only citations",
			items: []string{"[1][2][3][4][5]", "[1234123412341234]"},
			want:  []string{},
		},
		{
			name:  "one item needs no modification",
			items: []string{"Hello World", "---", "...", "()()()"},
			want:  []string{"Hello", "World"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CleanItems(tt.items)
			if !slices.Equal(got, tt.want) {
				t.Errorf("CleanItems(%v) = %v, want %v", tt.items, got, tt.want)
			}
		})
	}
}
