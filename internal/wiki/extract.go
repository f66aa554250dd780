package wiki

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// nbspDash is a rendering artifact found in list items on article pages:
// a non-breaking space followed by an en dash. It is removed from list-item
// text before tokenization.
const nbspDash = " –"

// ParagraphTokens returns the whitespace-split tokens of all paragraph
// elements in document order. A nil document yields no tokens.
func ParagraphTokens(doc *goquery.Document) []string {
	if doc == nil {
		return nil
	}
	var tokens []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		tokens = append(tokens, strings.Fields(normalize(p.Text()))...)
	})
	return tokens
}

// BulletItems returns the text of list items belonging to unordered lists
// that are bounded by paragraph siblings on both sides. The sibling
// requirement excludes navigation menus and infobox lists, which float
// outside the article prose. A nil document yields no items.
func BulletItems(doc *goquery.Document) []string {
	if doc == nil {
		return nil
	}
	var items []string
	doc.Find("ul").Each(func(_ int, ul *goquery.Selection) {
		if ul.PrevAllFiltered("p").Length() == 0 || ul.NextAllFiltered("p").Length() == 0 {
			return
		}
		ul.Find("li").Each(func(_ int, li *goquery.Selection) {
			items = append(items, strings.ReplaceAll(normalize(li.Text()), nbspDash, ""))
		})
	})
	return items
}

// Links returns every hyperlink target in document order, omitting anchors
// without a target. A nil document yields no links.
func Links(doc *goquery.Document) []string {
	if doc == nil {
		return nil
	}
	var links []string
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok && href != "" {
			links = append(links, href)
		}
	})
	return links
}

// normalize applies NFC normalization so that words containing combining
// characters compare equal regardless of how the source encoded them.
func normalize(s string) string {
	return norm.NFC.String(s)
}
