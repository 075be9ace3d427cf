// Package rank orders quotes by topical relevance
package rank

import (
	"slices"
	"strings"

	"contentgate/internal/core/content"
)

// Quotes scores +2 when the text contains topic and +1 when any tag does,
// then sorts descending. Ties keep their input order. A blank topic is a no-op.
func Quotes(items []content.QuoteItem, topic string) []content.QuoteItem {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return items
	}

	type scored struct {
		score int
		q     content.QuoteItem
	}
	ss := make([]scored, len(items))
	for i, q := range items {
		ss[i] = scored{score: Score(q, topic), q: q}
	}
	slices.SortStableFunc(ss, func(a, b scored) int { return b.score - a.score })

	out := make([]content.QuoteItem, len(ss))
	for i, s := range ss {
		out[i] = s.q
	}
	return out
}

// Score returns the relevance of q for an already lowercased topic
func Score(q content.QuoteItem, topic string) int {
	score := 0
	if strings.Contains(strings.ToLower(q.Text), topic) {
		score += 2
	}
	for _, t := range q.Tags {
		if strings.Contains(strings.ToLower(t), topic) {
			score++
			break
		}
	}
	return score
}
