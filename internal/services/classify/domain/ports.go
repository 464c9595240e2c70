package domain

import "context"

// ClassifierPort is the inbound port for classification
type ClassifierPort interface {
	// Classify maps a transcript to an intent, falling back to the remote
	// classifier when the pattern table yields nothing
	Classify(ctx context.Context, in Input) (Result, error)
}

// FallbackPort is the outbound port to the remote classification endpoint.
// Implemented by the nlp adapter; returns the raw intent JSON, which must
// pass whitelist validation before it is trusted
type FallbackPort interface {
	Classify(ctx context.Context, text, metadata, userID string) ([]byte, error)
}
