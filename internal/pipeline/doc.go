// Package pipeline sequences the stages of a survey run: crawling the
// topics, persisting the aggregates, and recording run history.
package pipeline
