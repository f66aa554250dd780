package model

import "time"

// Run carries the state of one survey run through the pipeline steps:
// which topics were requested, the accumulated results, and bookkeeping
// used for the crawl-history database.
type Run struct {
	// Topics lists the seed topics in the order they are crawled.
	Topics []string

	// Results holds the per-topic aggregates, populated by the crawl step.
	Results *Results

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when crawling completed.
	FinishedAt time.Time

	// PagesScanned counts every page fetch attempted during the run,
	// including pages whose fetch failed and contributed zero words.
	PagesScanned int
}

// NewRun creates a run for the given topics with an empty result set.
func NewRun(topics []string) *Run {
	return &Run{
		Topics:    topics,
		Results:   NewResults(),
		StartedAt: time.Now(),
	}
}
