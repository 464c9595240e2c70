// Package domain defines types and ports for record resolution
package domain

import (
	"context"

	"voiceforce/internal/core/resolver"
)

// ResolveInput asks for a fuzzy keyword to be resolved against live records
type ResolveInput struct {
	Object  string `json:"object" validate:"required"`
	Keyword string `json:"keyword" validate:"required"`
}

// SelectInput picks one candidate from a previously returned multiple
// outcome. The candidate list is round-tripped through the client so the
// backend stays stateless across the disambiguation exchange
type SelectInput struct {
	Object     string            `json:"object" validate:"required"`
	Index      int               `json:"index" validate:"required,min=1"`
	Candidates []resolver.Record `json:"candidates" validate:"required"`
}

// Output is a resolution plus the navigation URL when a single record was
// settled on, and the term variant that produced the hits
type Output struct {
	resolver.Resolution

	URL  string `json:"url,omitempty"`
	Term string `json:"term,omitempty"`
}

// ResolverPort is the inbound port for record resolution
type ResolverPort interface {
	Resolve(ctx context.Context, in ResolveInput) (Output, error)
	Select(ctx context.Context, in SelectInput) (Output, error)
}

// SearchPort is the outbound search transport. Implemented by the
// salesforce adapter
type SearchPort interface {
	Search(ctx context.Context, term, objectName string, fields []string) ([]resolver.Record, error)
}
