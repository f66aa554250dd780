// Package survey orchestrates the keyword survey of a topic: it fetches
// pages, cleans their text, matches it against the vocabulary, and sums
// the results over the seed page and one hop of filtered subpage links.
package survey
