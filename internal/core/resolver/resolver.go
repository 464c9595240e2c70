// Package resolver classifies a fetched candidate list into the next
// required action. Pure count branching, no network, no mutation: keeping it
// apart from the search cascade makes the disambiguation policy testable on
// its own
package resolver

import "strconv"

// Record is one raw candidate row as returned by a search attempt. Opaque to
// the resolver beyond presence; display code reads Id/Name out of it
type Record = map[string]any

// Outcome tags the resolution branches
type Outcome string

const (
	// OutcomeNotFound means zero candidates; a refinement prompt, not an error
	OutcomeNotFound Outcome = "not_found"
	// OutcomeSingle means exactly one candidate; act on it immediately
	OutcomeSingle Outcome = "single"
	// OutcomeMultiple means 2-5 candidates; ask the user to pick by number
	OutcomeMultiple Outcome = "multiple"
	// OutcomeTooMany means 6+ candidates; ask for a narrower keyword
	OutcomeTooMany Outcome = "too_many"
)

// maxChoices is the upper bound of the disambiguation branch, matching the
// 1-5 voice selection grammar
const maxChoices = 5

// Resolution carries the branch plus whichever payload that branch needs
type Resolution struct {
	Outcome    Outcome  `json:"outcome"`
	Record     Record   `json:"record,omitempty"`     // single
	Candidates []Record `json:"candidates,omitempty"` // multiple
	Message    string   `json:"message"`
}

// Resolve maps a candidate list onto the branch boundaries:
// 0 -> not_found, 1 -> single, 2-5 -> multiple, >=6 -> too_many
func Resolve(candidates []Record) Resolution {
	switch n := len(candidates); {
	case n == 0:
		return Resolution{
			Outcome: OutcomeNotFound,
			Message: "該当するレコードが見つかりませんでした。別のキーワードをお試しください",
		}
	case n == 1:
		return Resolution{
			Outcome: OutcomeSingle,
			Record:  candidates[0],
			Message: "「" + displayName(candidates[0]) + "」を開きます",
		}
	case n <= maxChoices:
		return Resolution{
			Outcome:    OutcomeMultiple,
			Candidates: candidates,
			Message:    strconv.Itoa(n) + "件の候補が見つかりました。番号で選択してください",
		}
	default:
		return Resolution{
			Outcome: OutcomeTooMany,
			Message: "候補が多すぎます。キーワードを絞り込んでください",
		}
	}
}

// SelectByIndex returns the candidate at 1-based index, or nil when index is
// outside [1, len(candidates)]
func SelectByIndex(candidates []Record, index int) Record {
	if index < 1 || index > len(candidates) {
		return nil
	}
	return candidates[index-1]
}

func displayName(r Record) string {
	if r == nil {
		return ""
	}
	if v, ok := r["Name"].(string); ok {
		return v
	}
	if v, ok := r["Id"].(string); ok {
		return v
	}
	return ""
}
