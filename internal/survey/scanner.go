package survey

import (
	"context"
	"errors"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/wikilex/wikilex/internal/model"
	"github.com/wikilex/wikilex/internal/textclean"
	"github.com/wikilex/wikilex/internal/vocab"
	"github.com/wikilex/wikilex/internal/wiki"
)

// Scanner runs keyword surveys over topic pages.
//
// Scanning is strictly sequential: one fetch completes before the next
// begins, in topic order and then in link order. The result of a run
// therefore depends only on the source documents and their link order.
type Scanner struct {
	// fetcher retrieves and parses article pages.
	fetcher *wiki.Fetcher

	// vocabulary is the read-only term set matched against cleaned words.
	vocabulary *vocab.Vocabulary

	// logger receives per-page fetch diagnostics.
	logger *slog.Logger
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithLogger sets a custom logger. If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a Scanner using the given fetcher and vocabulary.
func NewScanner(fetcher *wiki.Fetcher, vocabulary *vocab.Vocabulary, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		fetcher:    fetcher,
		vocabulary: vocabulary,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// ScanPage surveys a single page: paragraph tokens and bounded-list tokens
// are cleaned separately, total words are paragraph words followed by list
// words, and matching runs over each sequence before the matched words are
// concatenated in the same order.
//
// A fetch failure is logged and yields an empty aggregate; a failing page
// contributes zero words and zero matches without stopping the caller.
func (s *Scanner) ScanPage(ctx context.Context, title string) *model.Aggregate {
	doc := s.fetchDoc(ctx, title)

	paragraphWords := textclean.Clean(wiki.ParagraphTokens(doc))
	bulletWords := textclean.CleanItems(wiki.BulletItems(doc))

	agg := model.NewAggregate()
	agg.TotalWords = append(agg.TotalWords, paragraphWords...)
	agg.TotalWords = append(agg.TotalWords, bulletWords...)
	agg.TotalWordCount = len(agg.TotalWords)

	paragraphCount, paragraphMatched := s.vocabulary.Match(paragraphWords)
	bulletCount, bulletMatched := s.vocabulary.Match(bulletWords)
	agg.MatchedWords = append(agg.MatchedWords, paragraphMatched...)
	agg.MatchedWords = append(agg.MatchedWords, bulletMatched...)
	agg.MatchCount = paragraphCount + bulletCount

	return agg
}

// ScanTopic surveys a topic: the seed page itself, then every filtered
// outbound link of the seed page, one hop only. Links found on subpages
// are not traversed, so no cycle detection is needed. Returns the final
// aggregate and the number of pages visited (seed plus subpages).
func (s *Scanner) ScanTopic(ctx context.Context, topic string) (*model.Aggregate, int) {
	agg := s.ScanPage(ctx, topic)
	pages := 1

	doc := s.fetchDoc(ctx, topic)
	links := wiki.FilterLinks(wiki.Links(doc))
	s.logger.Debug("traversing subpages", "topic", topic, "subpages", len(links))

	for _, link := range links {
		sub := s.ScanPage(ctx, wiki.TitleFromLink(link))
		agg.Add(sub)
		pages++
	}

	return agg, pages
}

// fetchDoc fetches a page and reduces every failure to a nil document,
// logging each cause distinctly. Extraction on a nil document yields empty
// sequences, which preserves the continue-and-contribute-zero policy.
func (s *Scanner) fetchDoc(ctx context.Context, title string) *goquery.Document {
	doc, err := s.fetcher.FetchPage(ctx, title)
	if err != nil {
		switch {
		case errors.Is(err, wiki.ErrHTTPStatus):
			s.logger.Warn("failed to retrieve page", "title", title, "error", err)
		case errors.Is(err, wiki.ErrTimeout):
			s.logger.Warn("request took too long to complete", "title", title)
		default:
			s.logger.Warn("error fetching page", "title", title, "error", err)
		}
		return nil
	}
	return doc
}
