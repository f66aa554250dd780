// Package database records survey run history in a SQLite database:
// when each run happened, how many pages it visited, and the per-topic
// counts it produced.
package database
