package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/wikilex/wikilex/internal/model"
)

// SimpleWriter outputs a human-readable text summary: the final match
// count and total word count for each topic. This is the quick look at
// the numbers before reaching for the charts.
type SimpleWriter struct {
	baseWriter

	// showRate adds the match percentage to each topic block.
	showRate bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithMatchRate includes the match percentage in the summary.
func WithMatchRate(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showRate = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary, one block per topic in result order.
func (w *SimpleWriter) Write(results *model.Results) (int, error) {
	var b strings.Builder
	for _, topic := range results.Topics() {
		agg, _ := results.Get(topic)
		fmt.Fprintf(&b, "Topic: %s\n", topic)
		fmt.Fprintf(&b, "Final Match Count: %d\n", agg.MatchCount)
		fmt.Fprintf(&b, "Total Word Count: %d\n", agg.TotalWordCount)
		if w.showRate {
			fmt.Fprintf(&b, "Match Rate: %.2f%%\n", agg.MatchRate())
		}
		b.WriteString("\n")
	}
	return io.WriteString(w.output, b.String())
}
