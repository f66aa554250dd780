// Package store persists per-topic aggregates as four flat text files,
// one line per topic, and reloads them into memory.
package store
