// Package ruleengine implements the deterministic utterance classifier: an
// ordered table of pattern groups folded over one transcript at a time.
//
// Group order is the priority contract and is load-bearing:
// filter-qualified list navigation precedes bare object navigation, which
// precedes the generic free-text search catch-all. Reordering groups changes
// which intent wins for phrases like 「自分の商談を開いて」
package ruleengine

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"

	"voiceforce/internal/core/intent"
)

// MaxTranscriptLen is the hard input cap in runes. Anything longer is
// rejected before a single pattern runs, so pathological transcripts can
// never feed the regex engine
const MaxTranscriptLen = 500

// group is one priority slot: alternative surface patterns plus the resolver
// that maps captures to an intent. A group only wins when its resolver
// accepts the captures; a nil resolution falls through to later groups
// (e.g., a navigation shape whose object label is unknown)
type group struct {
	name     string
	patterns []*pattern
	resolve  func(m []string) *intent.Intent
}

// Engine evaluates the pattern table. Construction compiles everything once;
// Match is a pure fold with no shared mutable state, so repeated calls on the
// same input return structurally identical results
type Engine struct {
	groups []group
}

// New builds an Engine over the full pattern table
func New() *Engine {
	return &Engine{groups: buildGroups()}
}

// Match classifies a transcript. Returns nil for empty, oversized, or
// unmatched input: "no match" is the normal signal to defer to the remote
// fallback, never an error
func (e *Engine) Match(text string) *intent.Intent {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if utf8.RuneCountInString(trimmed) > MaxTranscriptLen {
		return nil
	}

	norm := normalizeTranscript(trimmed)

	for _, g := range e.groups {
		for _, p := range g.patterns {
			m := p.re.FindStringSubmatch(norm)
			if m == nil {
				continue
			}
			if out := g.resolve(m); out != nil {
				return out
			}
			// resolver declined the captures; try the group's other
			// patterns, then later groups
		}
	}
	return nil
}

// GroupNames exposes the priority order for tests asserting the documented
// invariant
func (e *Engine) GroupNames() []string {
	out := make([]string, len(e.groups))
	for i, g := range e.groups {
		out[i] = g.name
	}
	return out
}

// normalizeTranscript folds width variants to their canonical form:
// full-width ASCII (digits, letters) to half-width, half-width katakana to
// full-width. Hiragana/katakana script bridging belongs to the search-term
// cascade, not classification
func normalizeTranscript(s string) string {
	return strings.TrimSpace(width.Fold.String(s))
}
