// Package wiki talks to the encyclopedia: it fetches article pages over
// HTTP, extracts paragraph text, bounded list text, and outbound links
// from the parsed documents, and narrows links to same-site articles.
package wiki
