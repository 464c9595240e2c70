// Package searchterm generates the ordered, deduplicated list of search-term
// variants the fuzzy cascade tries against the CRM, and escapes terms for
// embedding in SOSL queries.
//
// Variant priority is fixed: exact form first, then progressively relaxed
// forms. The cascade stops at the first variant that yields results, so the
// order here is the "prefer exact match" contract
package searchterm

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// wildcardMinRunes gates the trailing-wildcard variant: fragments shorter
// than this match far too broadly to be useful
const wildcardMinRunes = 4

// corporateAffixes are entity designators users drop or add when speaking a
// company name. Checked as both prefix and suffix (株式会社 legally attaches
// on either side)
var corporateAffixes = []string{
	"株式会社",
	"有限会社",
	"合同会社",
	"合資会社",
	"合名会社",
	"（株）",
	"(株)",
	"㈱",
	"Inc.",
	"Inc",
	"Ltd.",
	"Ltd",
	"Co.,Ltd.",
	"Corp.",
	"Corporation",
	"K.K.",
}

// StripCorporate removes one corporate-entity designator from either end of
// s, plus surrounding whitespace. Returns s unchanged when none is attached
func StripCorporate(s string) string {
	t := strings.TrimSpace(s)
	for _, affix := range corporateAffixes {
		if rest, ok := strings.CutPrefix(t, affix); ok {
			return strings.TrimSpace(rest)
		}
		if rest, ok := strings.CutSuffix(t, affix); ok {
			return strings.TrimSpace(rest)
		}
	}
	return t
}

// Variants expands keyword into the cascade's ordered, deduplicated term
// list:
//
//  1. the keyword itself (width-folded)
//  2. corporate-suffix-stripped form
//  3. kana-converted forms of both, bridging spoken-vs-stored script
//  4. first whitespace-delimited token
//  5. trailing-wildcard forms, only for terms of >= 4 runes
//
// Every variant is generated fresh per call; the slice is the caller's
func Variants(keyword string) []string {
	base := strings.TrimSpace(width.Fold.String(keyword))
	if base == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{}, 8)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(base)

	stripped := StripCorporate(base)
	add(stripped)

	for _, form := range []string{base, stripped} {
		if containsHiragana(form) {
			add(HiraganaToKatakana(form))
		}
		if containsKatakana(form) {
			add(KatakanaToHiragana(form))
		}
	}

	if tok := firstToken(base); tok != base {
		add(tok)
	}

	// wildcard variants last: the broadest net, and only for fragments long
	// enough to stay selective
	for _, form := range []string{base, stripped} {
		if utf8.RuneCountInString(form) >= wildcardMinRunes {
			add(form + "*")
		}
	}

	return out
}

// firstToken returns the first whitespace-delimited token of s, treating the
// full-width space as a delimiter too
func firstToken(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '　'
	})
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}

// soslReserved are the characters with query-syntax meaning in SOSL FIND
// clauses. Every occurrence in user text must be escaped before the term is
// embedded in a query string
const soslReserved = `?&|!{}[]()^~*:\"'+-`

// EscapeSOSL backslash-escapes SOSL-reserved characters in term. This is the
// injection guard for the search transport; wildcard variants append their
// `*` after escaping
func EscapeSOSL(term string) string {
	var b strings.Builder
	b.Grow(len(term) + 4)
	for _, r := range term {
		if r < utf8.RuneSelf && strings.ContainsRune(soslReserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
