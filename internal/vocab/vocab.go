package vocab

import (
	"slices"
	"strings"
)

// Vocabulary is an immutable set of lowercase domain terms.
//
// Design decision: We keep both the ordered term list and a lookup set
// because:
//  1. Matching needs O(1) membership tests
//  2. Reports list the vocabulary in its original order
//  3. Building both once at startup avoids repeated allocation per page
type Vocabulary struct {
	// terms preserves the load order of the vocabulary.
	terms []string

	// set provides constant-time membership tests.
	set map[string]struct{}
}

// New builds a Vocabulary from the given terms. Terms are lower-cased on
// load so matching never depends on the case of the source list.
func New(terms []string) *Vocabulary {
	v := &Vocabulary{
		terms: make([]string, 0, len(terms)),
		set:   make(map[string]struct{}, len(terms)),
	}
	for _, term := range terms {
		lower := strings.ToLower(term)
		v.terms = append(v.terms, lower)
		v.set[lower] = struct{}{}
	}
	return v
}

// Default returns the built-in military terminology vocabulary.
func Default() *Vocabulary {
	return New(militaryTerms)
}

// Terms returns a copy of the ordered term list.
func (v *Vocabulary) Terms() []string {
	return slices.Clone(v.terms)
}

// Len returns the number of loaded terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Contains reports whether the word, lower-cased, is in the vocabulary.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.set[strings.ToLower(word)]
	return ok
}

// Match tests each word against the vocabulary and returns the match count
// together with the matched words, lower-cased, in input order. A word that
// appears twice in the input counts twice; matched words keep duplicates.
func (v *Vocabulary) Match(words []string) (int, []string) {
	matchCount := 0
	matched := []string{}
	for _, word := range words {
		lower := strings.ToLower(word)
		if _, ok := v.set[lower]; ok {
			matchCount++
			matched = append(matched, lower)
		}
	}
	return matchCount, matched
}
