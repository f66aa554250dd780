package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). Callers can use errors.Is()
// for programmatic handling while the messages stay human-readable.
var (
	// ErrNoTopics is returned when the topic list is empty. A run with
	// nothing to survey would produce four empty files and an empty chart.
	ErrNoTopics = errors.New("no topics configured: provide topics via flags or config file")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	// A zero timeout would fail every request immediately.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidBaseURL is returned when the site base URL is not an
	// absolute http or https URL.
	ErrInvalidBaseURL = errors.New("invalid base URL: must be an absolute http(s) URL")
)
