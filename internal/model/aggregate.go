package model

// Aggregate accumulates keyword-survey results for one topic across its
// seed page and one hop of subpages.
//
// Two invariants hold for every Aggregate the application produces:
// MatchCount == len(MatchedWords) and TotalWordCount == len(TotalWords).
// The counts are stored explicitly rather than derived because they are
// persisted and reloaded independently of the word lists.
type Aggregate struct {
	// MatchedWords holds every vocabulary match in encounter order,
	// lower-cased, duplicates kept.
	MatchedWords []string

	// MatchCount is the number of vocabulary matches.
	MatchCount int

	// TotalWords holds every cleaned word seen, paragraphs before list
	// items, seed page before subpages in link order.
	TotalWords []string

	// TotalWordCount is the number of cleaned words seen.
	TotalWordCount int
}

// NewAggregate returns an empty aggregate ready for accumulation.
func NewAggregate() *Aggregate {
	return &Aggregate{
		MatchedWords: []string{},
		TotalWords:   []string{},
	}
}

// Add folds another aggregate into this one, preserving the order of the
// incoming word sequences after the existing ones.
func (a *Aggregate) Add(other *Aggregate) {
	if other == nil {
		return
	}
	a.MatchedWords = append(a.MatchedWords, other.MatchedWords...)
	a.MatchCount += other.MatchCount
	a.TotalWords = append(a.TotalWords, other.TotalWords...)
	a.TotalWordCount += other.TotalWordCount
}

// MatchRate returns the percentage of total words that matched the
// vocabulary. A topic with zero total words yields 0 rather than a
// division-by-zero failure; an empty page simply has no matches.
func (a *Aggregate) MatchRate() float64 {
	if a.TotalWordCount == 0 {
		return 0
	}
	return float64(a.MatchCount) / float64(a.TotalWordCount) * 100
}

// Equal reports whether two aggregates hold identical data field by field.
func (a *Aggregate) Equal(other *Aggregate) bool {
	if other == nil {
		return false
	}
	if a.MatchCount != other.MatchCount || a.TotalWordCount != other.TotalWordCount {
		return false
	}
	if len(a.MatchedWords) != len(other.MatchedWords) || len(a.TotalWords) != len(other.TotalWords) {
		return false
	}
	for i, w := range a.MatchedWords {
		if other.MatchedWords[i] != w {
			return false
		}
	}
	for i, w := range a.TotalWords {
		if other.TotalWords[i] != w {
			return false
		}
	}
	return true
}
