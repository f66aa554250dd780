// Package main provides the entry point for the wikilex CLI.
//
// wikilex surveys encyclopedia topic pages for domain vocabulary: it
// crawls each configured topic and its directly linked articles, counts
// keyword occurrences in the cleaned body text, and renders summaries
// and charts of the results.
//
// Usage:
//
//	wikilex scan
//	wikilex report --charts charts.html
//
// See --help for all available options.
package main

// main is the entry point for wikilex.
func main() {
	Execute()
}
