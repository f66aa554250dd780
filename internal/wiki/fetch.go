package wiki

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// articlePath is the path prefix under which the site serves articles.
const articlePath = "/wiki/"

// Fetcher retrieves article pages and parses them into documents.
//
// Design decision: We require an external http.Client rather than creating
// one internally because:
//  1. Timeout configuration belongs to the caller's config layer
//  2. Tests can substitute an httptest server's client
//  3. Connection pooling is shared across all page fetches
type Fetcher struct {
	// client is the HTTP client used for all requests. Its timeout is the
	// per-request fetch timeout.
	client *http.Client

	// baseURL is the site root, e.g. "https://en.wikipedia.org".
	baseURL string

	// userAgent identifies the tool in HTTP requests.
	userAgent string

	// maxBodySize limits the response body size read per page.
	maxBodySize int64
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size to read.
func WithMaxBodySize(size int64) FetcherOption {
	return func(f *Fetcher) {
		f.maxBodySize = size
	}
}

// NewFetcher creates a Fetcher for the given site base URL.
func NewFetcher(client *http.Client, baseURL string, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:      client,
		baseURL:     baseURL,
		userAgent:   "wikilex/1.0 (+https://github.com/wikilex/wikilex)",
		maxBodySize: 10 * 1024 * 1024, // 10MB
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// FetchPage issues a single GET for the article with the given title and
// returns the parsed document. No retries are performed; a failed fetch is
// reported once and skipped by the caller.
//
// Errors are classified so the caller can log each cause distinctly:
// ErrHTTPStatus for error status codes, ErrTimeout for timeouts, and the
// underlying transport error otherwise. Whatever the cause, the returned
// document is nil and extraction on a nil document yields empty results,
// so a single failing page contributes zero words without aborting the
// surrounding traversal.
func (f *Fetcher) FetchPage(ctx context.Context, title string) (*goquery.Document, error) {
	pageURL := f.baseURL + articlePath + title

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, fmt.Errorf("fetch %s: %w", pageURL, ErrTimeout)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("fetch %s: %w", pageURL, ErrTimeout)
		}
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("fetch %s: %w: %s", pageURL, ErrHTTPStatus, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	return doc, nil
}

// BaseURL returns the configured site root.
func (f *Fetcher) BaseURL() string {
	return f.baseURL
}
