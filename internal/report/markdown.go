package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/wikilex/wikilex/internal/model"
)

// MarkdownWriter outputs the survey results in Markdown format, designed
// for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation because it gives type-safe tables and mermaid chart support
// without string templating.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(results *model.Results) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Keyword Survey Report")
	md.PlainText("")

	w.writeSummaryTable(md, results)
	w.writePieChart(md, results)

	return len(md.String()), md.Build()
}

// writeSummaryTable writes the per-topic counts as a table.
func (w *MarkdownWriter) writeSummaryTable(md *markdown.Markdown, results *model.Results) {
	rows := make([][]string, 0, results.Len())
	for _, topic := range results.Topics() {
		agg, _ := results.Get(topic)
		rows = append(rows, []string{
			topic,
			strconv.Itoa(agg.MatchCount),
			strconv.Itoa(agg.TotalWordCount),
			fmt.Sprintf("%.2f%%", agg.MatchRate()),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Topic", "Match Count", "Total Word Count", "Match Rate"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of match counts per topic.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, results *model.Results) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Match Count Distribution"),
		piechart.WithShowData(true),
	)

	plotted := false
	for _, topic := range results.Topics() {
		agg, _ := results.Get(topic)
		if agg.MatchCount > 0 {
			chart.LabelAndIntValue(topic, uint64(agg.MatchCount))
			plotted = true
		}
	}
	if !plotted {
		return
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}
