// Package intent defines the structured command model produced by
// classification, plus the whitelist validation applied to untrusted
// classifier output.
//
// Locally rule-matched intents are built through the constructors below and
// are trusted by construction; anything arriving as JSON from the remote
// classifier must pass Validate before it is acted on.
package intent

import "regexp"

// Action discriminates the intent union
type Action string

const (
	// ActionNavigate opens a record page or an object list view
	ActionNavigate Action = "navigate"
	// ActionSearch runs a free-text record search
	ActionSearch Action = "search"
	// ActionCreate starts creation of a new record
	ActionCreate Action = "create"
	// ActionUpdate modifies fields on an existing record
	ActionUpdate Action = "update"
	// ActionSummary requests an aggregate/summary view
	ActionSummary Action = "summary"
	// ActionConfirm answers a pending yes/no prompt
	ActionConfirm Action = "confirm"
	// ActionBack returns to the previous screen
	ActionBack Action = "back"
	// ActionStop ends the voice session
	ActionStop Action = "stop"
	// ActionUndo reverts the most recent update
	ActionUndo Action = "undo"
	// ActionSelect picks a disambiguation candidate by 1-based index
	ActionSelect Action = "select"
	// ActionHelp asks what the assistant can do
	ActionHelp Action = "help"
	// ActionUnknown is the typed "could not classify" outcome
	ActionUnknown Action = "unknown"
)

// Target narrows a navigate intent to a record page or a list view
type Target string

const (
	// TargetRecord navigates to a single record page
	TargetRecord Target = "record"
	// TargetList navigates to an object list view
	TargetList Target = "list"
)

// validActions is the closed action set. Anything else from the remote
// classifier is rejected outright (there is no "delete" on purpose)
var validActions = map[Action]struct{}{
	ActionNavigate: {}, ActionSearch: {}, ActionCreate: {}, ActionUpdate: {},
	ActionSummary: {}, ActionConfirm: {}, ActionBack: {}, ActionStop: {},
	ActionUndo: {}, ActionSelect: {}, ActionHelp: {}, ActionUnknown: {},
}

// ValidAction reports whether a belongs to the closed action set
func ValidAction(a Action) bool {
	_, ok := validActions[a]
	return ok
}

// Intent is the discriminated union, flattened the usual JSON way: Action is
// the tag, the other fields are populated per variant
type Intent struct {
	Action Action `json:"action"`

	// navigate / search / create / update / summary
	Object     string `json:"object,omitempty"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message,omitempty"`

	// navigate
	Target     Target `json:"target,omitempty"`
	FilterName string `json:"filterName,omitempty"`
	// free-text record reference for target=record navigation; resolved
	// against live data by the search cascade
	Keyword string `json:"keyword,omitempty"`

	// search / summary
	Conditions map[string]any `json:"conditions,omitempty"`

	// create / update
	Fields map[string]any `json:"fields,omitempty"`

	// create
	MissingFields []string `json:"missing_fields,omitempty"`

	// update
	SearchTerm string `json:"search_term,omitempty"`

	// summary
	SummaryType string `json:"summary_type,omitempty"`

	// confirm
	Value *bool `json:"value,omitempty"`

	// select (1-based)
	Index int `json:"index,omitempty"`
}

// Constructors for rule-engine output. These are the only places Intents are
// built outside of Validate

// Navigate builds a navigate intent for a list view or a record page
func Navigate(object string, target Target, confidence float64, msg string) Intent {
	return Intent{Action: ActionNavigate, Object: object, Target: target, Confidence: confidence, Message: msg}
}

// NavigateFiltered builds a list navigation carrying a semantic filter hint
// (Recent/Mine/All). The hint is not an object-specific CRM list view id
func NavigateFiltered(object, filterName string, confidence float64, msg string) Intent {
	i := Navigate(object, TargetList, confidence, msg)
	i.FilterName = filterName
	return i
}

// NavigateRecord builds a record navigation whose keyword still needs
// resolution against live data
func NavigateRecord(object, keyword string, confidence float64, msg string) Intent {
	i := Navigate(object, TargetRecord, confidence, msg)
	i.Keyword = keyword
	return i
}

// Search builds a free-text search intent
func Search(object, keyword string, confidence float64, msg string) Intent {
	return Intent{Action: ActionSearch, Object: object, Keyword: keyword, Confidence: confidence, Message: msg}
}

// Create builds a create intent; missing lists the required fields not yet
// captured from speech
func Create(object string, fields map[string]any, missing []string, confidence float64, msg string) Intent {
	return Intent{
		Action: ActionCreate, Object: object, Fields: fields,
		MissingFields: missing, Confidence: confidence, Message: msg,
	}
}

// Update builds an update intent; searchTerm names the record to modify
func Update(object, searchTerm string, fields map[string]any, confidence float64, msg string) Intent {
	return Intent{
		Action: ActionUpdate, Object: object, SearchTerm: searchTerm,
		Fields: fields, Confidence: confidence, Message: msg,
	}
}

// Summary builds a summary intent
func Summary(summaryType, object string, conditions map[string]any, confidence float64, msg string) Intent {
	return Intent{
		Action: ActionSummary, SummaryType: summaryType, Object: object,
		Conditions: conditions, Confidence: confidence, Message: msg,
	}
}

// Confirm builds a yes/no answer
func Confirm(v bool) Intent {
	return Intent{Action: ActionConfirm, Value: &v}
}

// Select builds a 1-based candidate selection
func Select(index int) Intent {
	return Intent{Action: ActionSelect, Index: index}
}

// Back builds a back intent
func Back() Intent { return Intent{Action: ActionBack} }

// Stop builds a stop intent
func Stop() Intent { return Intent{Action: ActionStop} }

// Undo builds an undo intent
func Undo() Intent { return Intent{Action: ActionUndo} }

// Help builds a help intent
func Help() Intent { return Intent{Action: ActionHelp} }

// Unknown builds the typed non-answer; confidence is pinned at 0
func Unknown(msg string) Intent {
	return Intent{Action: ActionUnknown, Confidence: 0, Message: msg}
}

// Shape checks for CRM identifiers. These are shape-only; the schema
// whitelist is the semantic gate

var (
	recordIDRe   = regexp.MustCompile(`^[a-zA-Z0-9]{15}([a-zA-Z0-9]{3})?$`)
	objectNameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+(__c)?$`)
)

// IsRecordID reports whether s looks like a 15 or 18 character CRM record id
func IsRecordID(s string) bool { return recordIDRe.MatchString(s) }

// IsObjectName reports whether s looks like an object API name, including the
// __c custom-object suffix
func IsObjectName(s string) bool { return objectNameRe.MatchString(s) }
