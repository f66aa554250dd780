// Package report renders survey results: a plain text summary, a Markdown
// report, and an HTML page of charts (word clouds, bar chart, stacked bar
// chart). All writers are read-only views over the aggregate results.
package report
