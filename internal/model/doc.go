// Package model defines the data structures shared across the application:
// per-topic aggregates, the ordered result set, and the state of a survey run.
package model
