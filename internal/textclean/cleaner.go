package textclean

import "strings"

// punctuation contains the characters removed from tokens.
// Wikipedia body text uses these for sentence structure; none of them
// carry meaning for keyword matching.
const punctuation = `.,:!?;"-()`

// Clean removes punctuation and bracketed citation markers (such as "[3]")
// from each token and returns the surviving words in input order.
// Tokens that are reduced to nothing disappear from the output entirely
// rather than yielding empty strings.
//
// Cleaning is idempotent: running Clean over its own output changes nothing.
func Clean(tokens []string) []string {
	cleaned := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if word := cleanToken(token); word != "" {
			cleaned = append(cleaned, word)
		}
	}
	return cleaned
}

// cleanToken scans a single token character by character.
//
// The scan is an explicit finite-state loop: a skip-next flag consumes the
// closing bracket of a citation span, and an inner lookahead loop skips the
// span body. An unterminated "[" discards the remainder of the token.
// Back-to-back citations ("[1][2]") are each handled independently because
// the scan resumes right after the skipped span.
func cleanToken(token string) string {
	runes := []rune(token)
	var word strings.Builder
	skipNext := false

	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if skipNext {
			skipNext = false
			continue
		}
		if strings.ContainsRune(punctuation, ch) {
			continue
		}
		if ch == '[' {
			// Skip over the citation body; the closing bracket is
			// consumed by the skip-next flag on the following pass.
			for i+1 < len(runes) && runes[i+1] != ']' {
				i++
			}
			skipNext = true
			continue
		}
		word.WriteRune(ch)
	}
	return word.String()
}

// CleanItems splits each list item on whitespace and cleans the resulting
// tokens as one sequence. List items arrive as whole lines of text, unlike
// paragraph content which is tokenized before cleaning.
func CleanItems(items []string) []string {
	var tokens []string
	for _, item := range items {
		tokens = append(tokens, strings.Fields(item)...)
	}
	return Clean(tokens)
}
