// Package labelmap maps spoken Japanese domain labels to CRM object API
// names. Pure lookup tables, no state.
//
// Besides the canonical labels and their partial synonyms, the map carries a
// curated set of misrecognition aliases: near-homophones the browser speech
// recognizer is known to produce for domain words it has never seen. Each
// alias is documented with the label it stands in for
package labelmap

import "strings"

// canonical is label -> API object name, including partial synonyms users
// actually say
var canonical = map[string]string{
	// Account
	"取引先": "Account",
	"会社":  "Account",
	"顧客":  "Account",

	// Contact
	"取引先責任者": "Contact",
	"担当者":    "Contact",
	"連絡先":    "Contact",

	// Opportunity
	"商談": "Opportunity",
	"案件": "Opportunity",

	// Lead
	"リード":  "Lead",
	"見込み客": "Lead",

	// Case
	"ケース":   "Case",
	"問い合わせ": "Case",

	// Task
	"タスク": "Task",
	"活動":  "Task",
	"作業":  "Task",
}

// misheard is recognizer-output -> API object name for known speech
// misrecognitions. These are surface forms the Web Speech API emits when it
// picks a common homophone over the CRM term
var misheard = map[string]string{
	"昇段":  "Opportunity", // しょうだん recognized as the judo/shogi rank word
	"商段":  "Opportunity", // partial kanji substitution of 商談
	"リート": "Lead",        // devoiced final ド
	"ケーズ": "Case",        // long-vowel drift of ケース
	"お客":  "Account",     // clipped お客様/顧客
}

// objectLabel is API name -> representative label for user-facing messages
var objectLabel = map[string]string{
	"Account":     "取引先",
	"Contact":     "取引先責任者",
	"Opportunity": "商談",
	"Lead":        "リード",
	"Case":        "ケース",
	"Task":        "タスク",
}

// fieldLabels maps spoken field labels to API field names. Object-agnostic on
// purpose: editability per object is gated later by schema validation
var fieldLabels = map[string]string{
	"名前":     "Name",
	"名称":     "Name",
	"フェーズ":   "StageName",
	"ステージ":   "StageName",
	"金額":     "Amount",
	"完了予定日":  "CloseDate",
	"電話番号":   "Phone",
	"電話":     "Phone",
	"ウェブサイト": "Website",
	"メール":    "Email",
	"役職":     "Title",
	"状況":     "Status",
	"優先度":    "Priority",
}

// Lookup resolves a spoken label (canonical, synonym, or misrecognition
// alias) to an API object name
func Lookup(label string) (string, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", false
	}
	if api, ok := canonical[label]; ok {
		return api, true
	}
	if api, ok := misheard[label]; ok {
		return api, true
	}
	return "", false
}

// LookupField resolves a spoken field label to an API field name
func LookupField(label string) (string, bool) {
	f, ok := fieldLabels[strings.TrimSpace(label)]
	return f, ok
}

// Label returns the representative Japanese label for an API object name,
// falling back to the API name itself
func Label(apiName string) string {
	if l, ok := objectLabel[apiName]; ok {
		return l
	}
	return apiName
}

// Objects returns the set of API object names the map knows about
func Objects() []string {
	out := make([]string, 0, len(objectLabel))
	for api := range objectLabel {
		out = append(out, api)
	}
	return out
}
