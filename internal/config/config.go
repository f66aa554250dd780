package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultBaseURL is the encyclopedia surveyed when no site is
	// configured. Article pages are fetched from <base>/wiki/<title>.
	DefaultBaseURL = "https://en.wikipedia.org"

	// DefaultTimeout is the per-request fetch timeout. Article pages are
	// large and the traversal is sequential, so a generous timeout loses
	// less data than a tight one; a page that times out contributes
	// nothing to its topic.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxBodySize limits the response body read per page. 10MB
	// covers any article while preventing memory exhaustion from an
	// unexpected response.
	DefaultMaxBodySize = 10 * 1024 * 1024

	// DefaultUserAgent identifies the tool in HTTP requests. A
	// descriptive User-Agent lets site operators identify survey traffic
	// in their logs, which the encyclopedia's etiquette asks for.
	DefaultUserAgent = "wikilex/1.0 (+https://github.com/wikilex/wikilex)"

	// DefaultHistoryLimit is how many past runs the history command shows.
	DefaultHistoryLimit = 20

	// AppName is the application name used for XDG directory paths.
	AppName = "wikilex"
)

// DefaultTopics is the built-in topic set: the engineering disciplines the
// survey was designed around. Overridable via config file or flags.
var DefaultTopics = []string{
	"Aerospace_engineering",
	"Chemical_engineering",
	"Civil_engineering",
	"Electrical_engineering",
	"Mechanical_engineering",
	"Software_engineering",
}

// DefaultDataDir returns the default directory for data files and the
// history database, under the user's XDG data home.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Config holds all configuration options for a survey run.
//
// Design decision: A single flat struct instead of nested sub-structs.
// The number of options is manageable, and nesting would add complexity
// without benefit.
type Config struct {
	// BaseURL is the site root articles are fetched from.
	BaseURL string

	// Topics lists the seed pages to survey, in crawl order.
	Topics []string

	// Vocabulary optionally overrides the built-in term list.
	// Empty means use the built-in military terminology.
	Vocabulary []string

	// DataDir is where the four data files and the history database live.
	DataDir string

	// Timeout is the per-request fetch timeout.
	Timeout time.Duration

	// MaxBodySize limits the response body read per page.
	MaxBodySize int64

	// UserAgent identifies the tool in HTTP requests.
	UserAgent string

	// Verbose enables debug-level log output.
	Verbose bool
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		Topics:      append([]string(nil), DefaultTopics...),
		DataDir:     DefaultDataDir(),
		Timeout:     DefaultTimeout,
		MaxBodySize: DefaultMaxBodySize,
		UserAgent:   DefaultUserAgent,
	}
}

// Validate checks the configuration for values that would make a run
// meaningless, returning a sentinel error for each case.
func (c *Config) Validate() error {
	if len(c.Topics) == 0 {
		return ErrNoTopics
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidBaseURL
	}
	return nil
}
