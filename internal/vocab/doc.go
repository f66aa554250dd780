// Package vocab holds the domain vocabulary and matches cleaned words
// against it. The vocabulary is built once at startup and is read-only
// for the lifetime of the process.
package vocab
