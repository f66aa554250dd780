package wiki

import "errors"

// Fetch failures are classified so callers can log each cause distinctly.
// All of them lead to the same recovery: the page contributes nothing.
var (
	// ErrHTTPStatus is returned when the server answers with an error
	// status (4xx or 5xx).
	ErrHTTPStatus = errors.New("server returned an error status")

	// ErrTimeout is returned when the request exceeds the configured
	// timeout before a response arrives.
	ErrTimeout = errors.New("request took too long to complete")
)
