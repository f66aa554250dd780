package vocab

import (
	"slices"
	"testing"
)

// TestMatch tests keyword matching against the built-in vocabulary.
func TestMatch(t *testing.T) {
	t.Parallel()

	v := Default()

	tests := []struct {
		name      string
		words     []string
		wantCount int
		wantWords []string
	}{
		{
			name:      "single keyword",
			words:     []string{"aircraft"},
			wantCount: 1,
			wantWords: []string{"aircraft"},
		},
		{
			name:      "all keywords",
			words:     []string{"aircraft", "army", "navy", "war"},
			wantCount: 4,
			wantWords: []string{"aircraft", "army", "navy", "war"},
		},
		{
			name:      "one keyword inside a sentence",
			words:     []string{"That's", "not", "Patrick,", "that's", "an", "aircraft"},
			wantCount: 1,
			wantWords: []string{"aircraft"},
		},
		{
			name:      "no keywords",
			words:     []string{"Hello", "world", "I", "love", "you"},
			wantCount: 0,
			wantWords: []string{},
		},
		{
			name:      "case folded before comparison",
			words:     []string{"Army", "NAVY", "War"},
			wantCount: 3,
			wantWords: []string{"army", "navy", "war"},
		},
		{
			name:      "duplicates count twice",
			words:     []string{"war", "and", "war", "again"},
			wantCount: 2,
			wantWords: []string{"war", "war"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			count, matched := v.Match(tt.words)
			if count != tt.wantCount {
				t.Errorf("Match count = %d, want %d", count, tt.wantCount)
			}
			if !slices.Equal(matched, tt.wantWords) {
				t.Errorf("Match words = %v, want %v", matched, tt.wantWords)
			}
			if count != len(matched) {
				t.Errorf("invariant broken: count %d != len(matched) %d", count, len(matched))
			}
		})
	}
}

// TestNew tests vocabulary construction from custom terms.
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("terms are lower-cased on load", func(t *testing.T) {
		t.Parallel()

		v := New([]string{"Quantum", "ENTANGLEMENT"})
		if !v.Contains("quantum") {
			t.Error("expected vocabulary to contain 'quantum'")
		}
		if !v.Contains("Entanglement") {
			t.Error("expected Contains to fold case of the probe word")
		}
		if want := []string{"quantum", "entanglement"}; !slices.Equal(v.Terms(), want) {
			t.Errorf("Terms() = %v, want %v", v.Terms(), want)
		}
	})

	t.Run("length reflects loaded terms", func(t *testing.T) {
		t.Parallel()

		if got := New([]string{"a", "b", "c"}).Len(); got != 3 {
			t.Errorf("Len() = %d, want 3", got)
		}
	})

	t.Run("default vocabulary is non-empty", func(t *testing.T) {
		t.Parallel()

		if Default().Len() == 0 {
			t.Error("default vocabulary should not be empty")
		}
	})
}
