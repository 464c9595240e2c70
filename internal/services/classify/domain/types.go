// Package domain defines core types and ports for classification
package domain

import "voiceforce/internal/core/intent"

// Source tags where a classification came from
type Source string

const (
	// SourceRule means the deterministic pattern table matched
	SourceRule Source = "rule"
	// SourceFallback means the remote classifier produced the intent and it
	// passed validation
	SourceFallback Source = "fallback"
	// SourceRejected means neither path yielded a trusted intent; the result
	// is the typed unknown outcome
	SourceRejected Source = "rejected"
)

// Input is one classification request
type Input struct {
	Text string `json:"text" validate:"required"`
}

// Result is the classification outcome. Intent is always populated; an
// unclassifiable transcript yields the unknown intent, not an error
type Result struct {
	Intent intent.Intent `json:"intent"`
	Source Source        `json:"source"`
}
