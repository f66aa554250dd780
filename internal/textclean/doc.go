// Package textclean strips punctuation and bracketed citation markers
// from whitespace-delimited tokens extracted from encyclopedia articles.
package textclean
