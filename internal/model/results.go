package model

import "slices"

// Results maps topics to their aggregates while preserving insertion order.
//
// Design decision: We keep an explicit key slice next to the map rather
// than sorting keys on access because topic order is meaningful: it is the
// order topics were configured and crawled, and reports, persisted files,
// and charts all present topics in that order.
type Results struct {
	topics  []string
	byTopic map[string]*Aggregate
}

// NewResults returns an empty result set.
func NewResults() *Results {
	return &Results{
		topics:  []string{},
		byTopic: make(map[string]*Aggregate),
	}
}

// Set stores the aggregate for a topic. Setting an existing topic replaces
// its aggregate without changing its position.
func (r *Results) Set(topic string, agg *Aggregate) {
	if _, ok := r.byTopic[topic]; !ok {
		r.topics = append(r.topics, topic)
	}
	r.byTopic[topic] = agg
}

// Get returns the aggregate for a topic.
func (r *Results) Get(topic string) (*Aggregate, bool) {
	agg, ok := r.byTopic[topic]
	return agg, ok
}

// Topics returns the topics in insertion order.
func (r *Results) Topics() []string {
	return slices.Clone(r.topics)
}

// Len returns the number of topics.
func (r *Results) Len() int {
	return len(r.topics)
}

// Equal reports whether two result sets hold the same topics in the same
// order with field-by-field equal aggregates.
func (r *Results) Equal(other *Results) bool {
	if other == nil || len(r.topics) != len(other.topics) {
		return false
	}
	for i, topic := range r.topics {
		if other.topics[i] != topic {
			return false
		}
		if !r.byTopic[topic].Equal(other.byTopic[topic]) {
			return false
		}
	}
	return true
}
