package report

import (
	"io"

	"github.com/wikilex/wikilex/internal/model"
)

// Writer defines the interface for report output.
// Implementations render the survey results in various formats.
type Writer interface {
	// Write outputs the results to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(results *model.Results) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously, which allows
// outputting to both the terminal and a file in one pass.
//
// Design decision: We implement this as a separate type rather than using
// io.MultiWriter because our Writer interface renders results, not raw
// bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the results to all configured Writers.
// Returns the total bytes written; stops on the first error encountered.
func (m *MultiWriter) Write(results *model.Results) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(results)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter holds the output destination shared by the concrete writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter for the given destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
