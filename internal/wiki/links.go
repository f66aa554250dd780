package wiki

import "strings"

// secondRoundFilter lists substrings that disqualify an article link after
// the prefix check: the home page, and the namespace separator which marks
// non-article pages (File:, Category:, Help:, and so on).
//
// Note the ":" test matches anywhere in the link, so an article title that
// itself contains a colon is also dropped. Observed upstream behavior,
// kept as is.
var secondRoundFilter = []string{"/wiki/Main_page", ":"}

// FilterLinks narrows raw link targets to same-site article links: the
// target must start with the article path prefix and must not reference
// the home page or a namespaced page. Order is preserved and duplicates
// are not removed, so a page linked twice is visited twice.
func FilterLinks(links []string) []string {
	prefixed := make([]string, 0, len(links))
	for _, link := range links {
		if strings.HasPrefix(link, articlePath) {
			prefixed = append(prefixed, link)
		}
	}

	filtered := make([]string, 0, len(prefixed))
	for _, link := range prefixed {
		keep := true
		for _, probe := range secondRoundFilter {
			if strings.Contains(link, probe) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, link)
		}
	}
	return filtered
}

// TitleFromLink returns the article title portion of a filtered link,
// i.e. the part after the article path prefix.
func TitleFromLink(link string) string {
	return strings.TrimPrefix(link, articlePath)
}
