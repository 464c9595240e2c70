package ruleengine

import (
	"regexp"

	"voiceforce/internal/core/intent"
	"voiceforce/internal/core/labelmap"
)

// pattern wraps a compiled alternative surface form of a group
type pattern struct {
	re *regexp.Regexp
}

func pat(expr string) *pattern {
	return &pattern{re: regexp.MustCompile(expr)}
}

// Confidence levels stamped on rule hits. The table is fixed, so these are
// priors per shape, not model outputs
const (
	confExact   = 0.95 // closed-vocabulary shapes (filters, lists)
	confKeyword = 0.85 // shapes carrying a free-text capture
	confLoose   = 0.80 // catch-all shapes
)

// buildGroups returns the pattern table in priority order.
//
// Order invariant (top beats bottom):
//  1. numeric selection
//  2. confirm yes / no
//  3. undo (before back: 「元に戻して」 must not be captured as back)
//  4. back, stop, help
//  5. filter-qualified list navigation (all/recent/mine)
//  6. record navigation with keyword
//  7. bare object-list navigation
//  8. create, update, summary
//  9. generic free-text search catch-all
func buildGroups() []group {
	return []group{
		{
			name: "select",
			patterns: []*pattern{
				pat(`^([1-5一二三四五])(?:番目?)?(?:を?(?:選択(?:して)?|選んで|開いて))?$`),
			},
			resolve: resolveSelect,
		},
		{
			name: "confirm_yes",
			patterns: []*pattern{
				pat(`^(?:はい|ええ|うん|そう|お願い(?:します)?|大丈夫|OK|ok|オッケー|おっけー)$`),
			},
			resolve: func([]string) *intent.Intent { return ptr(intent.Confirm(true)) },
		},
		{
			name: "confirm_no",
			patterns: []*pattern{
				pat(`^(?:いいえ|いえ|違う|違います|ちがう|ちがいます|だめ|ダメ|やめて)$`),
			},
			resolve: func([]string) *intent.Intent { return ptr(intent.Confirm(false)) },
		},
		{
			name: "undo",
			patterns: []*pattern{
				pat(`^(?:元に戻して|取り消して|さっきのを?取り消して|アンドゥ)$`),
			},
			resolve: func([]string) *intent.Intent { return ptr(intent.Undo()) },
		},
		{
			name: "back",
			patterns: []*pattern{
				pat(`^(?:戻って|戻る|前に戻って|前の(?:画面|ページ)に?戻って)$`),
			},
			resolve: func([]string) *intent.Intent { return ptr(intent.Back()) },
		},
		{
			name: "stop",
			patterns: []*pattern{
				pat(`^(?:停止|止めて|ストップ|終了(?:して)?|おしまい|キャンセル)$`),
			},
			resolve: func([]string) *intent.Intent { return ptr(intent.Stop()) },
		},
		{
			name: "help",
			patterns: []*pattern{
				pat(`^(?:ヘルプ|助けて|使い方(?:を教えて)?|何ができるの?)$`),
			},
			resolve: func([]string) *intent.Intent { return ptr(intent.Help()) },
		},
		{
			name: "navigate_filtered_list",
			patterns: []*pattern{
				pat(`^(すべて|全て|全部|最近|自分)の(.+?)(?:の一覧|一覧)?を(?:開いて|見せて|表示して|出して)$`),
			},
			resolve: resolveFilteredList,
		},
		{
			name: "navigate_record",
			patterns: []*pattern{
				pat(`^(.+?)の(.+?)を(?:開いて|見せて|表示して)$`),
			},
			resolve: resolveRecordNavigate,
		},
		{
			name: "navigate_object_list",
			patterns: []*pattern{
				pat(`^(.+?)(?:の一覧|一覧)を(?:開いて|見せて|表示して|出して)$`),
				pat(`^(.+?)を(?:開いて|見せて|表示して)$`),
			},
			resolve: resolveObjectList,
		},
		{
			name: "create",
			patterns: []*pattern{
				pat(`^(.+?)を(?:作成(?:して)?|作って|登録(?:して)?|追加(?:して)?)$`),
			},
			resolve: resolveCreate,
		},
		{
			name: "update",
			patterns: []*pattern{
				pat(`^(.+?)の(.+?)の(.+?)を(.+?)に(?:変更(?:して)?|更新(?:して)?)$`),
			},
			resolve: resolveUpdate,
		},
		{
			name: "summary",
			patterns: []*pattern{
				pat(`^(今日|今週|今月|最近)?の?(.+?)の(?:サマリー?|まとめ|概要|集計)(?:を(?:見せて|教えて|表示して))?$`),
			},
			resolve: resolveSummary,
		},
		{
			name: "search_catchall",
			patterns: []*pattern{
				pat(`^(?:(.+?)で)?(.+?)を(?:検索(?:して)?|探して|調べて)$`),
			},
			resolve: resolveSearch,
		},
	}
}

func ptr(i intent.Intent) *intent.Intent { return &i }

func resolveSelect(m []string) *intent.Intent {
	n := parseSelectionDigit(m[1])
	if n < 1 || n > 5 {
		return nil
	}
	return ptr(intent.Select(n))
}

func resolveFilteredList(m []string) *intent.Intent {
	object, ok := labelmap.Lookup(m[2])
	if !ok {
		return nil
	}
	hint := filterHint(m[1], object)
	return ptr(intent.NavigateFiltered(object, hint, confExact,
		labelmap.Label(object)+"の一覧を開きます"))
}

func resolveRecordNavigate(m []string) *intent.Intent {
	object, ok := labelmap.Lookup(m[1])
	if !ok {
		// not an object-qualified reference; let later groups have it
		return nil
	}
	keyword := m[2]
	if keyword == "" {
		return nil
	}
	return ptr(intent.NavigateRecord(object, keyword, confKeyword,
		"「"+keyword+"」を"+labelmap.Label(object)+"から探します"))
}

func resolveObjectList(m []string) *intent.Intent {
	object, ok := labelmap.Lookup(m[1])
	if !ok {
		return nil
	}
	return ptr(intent.Navigate(object, intent.TargetList, confExact,
		labelmap.Label(object)+"の一覧を開きます"))
}

func resolveCreate(m []string) *intent.Intent {
	object, ok := labelmap.Lookup(m[1])
	if !ok {
		return nil
	}
	// no fields are ever captured from a bare create utterance; the required
	// name comes from the follow-up dialog
	return ptr(intent.Create(object, map[string]any{}, []string{"Name"}, confKeyword,
		labelmap.Label(object)+"を作成します。名前を教えてください"))
}

func resolveUpdate(m []string) *intent.Intent {
	object, ok := labelmap.Lookup(m[1])
	if !ok {
		return nil
	}
	field, ok := labelmap.LookupField(m[3])
	if !ok {
		return nil
	}
	searchTerm, value := m[2], m[4]
	if searchTerm == "" || value == "" {
		return nil
	}
	return ptr(intent.Update(object, searchTerm,
		map[string]any{field: value}, confKeyword,
		"「"+searchTerm+"」の"+m[3]+"を「"+value+"」に変更します"))
}

func resolveSummary(m []string) *intent.Intent {
	object, ok := labelmap.Lookup(m[2])
	if !ok {
		return nil
	}
	return ptr(intent.Summary(summaryType(m[1]), object, nil, confLoose,
		labelmap.Label(object)+"の集計を表示します"))
}

func resolveSearch(m []string) *intent.Intent {
	keyword := m[2]
	if keyword == "" {
		return nil
	}
	object := "Account"
	if m[1] != "" {
		o, ok := labelmap.Lookup(m[1])
		if !ok {
			// unrecognized qualifier: fold it back into the keyword
			keyword = m[1] + "で" + keyword
		} else {
			object = o
		}
	}
	return ptr(intent.Search(object, keyword, confLoose,
		"「"+keyword+"」を検索します"))
}

// filterHint emits the generic per-object filter identifier. This is a
// semantic hint, not a CRM list view id; mapping to the org's actual list
// view happens at navigation time outside the core
func filterHint(qualifier, object string) string {
	switch qualifier {
	case "自分":
		return "My" + pluralize(object)
	case "最近":
		return "Recent" + pluralize(object)
	default: // すべて/全て/全部
		return "All" + pluralize(object)
	}
}

func pluralize(object string) string {
	if n := len(object); n > 0 && object[n-1] == 'y' {
		return object[:n-1] + "ies"
	}
	return object + "s"
}

func summaryType(qualifier string) string {
	switch qualifier {
	case "今日":
		return "daily"
	case "今週":
		return "weekly"
	case "今月":
		return "monthly"
	default:
		return "recent"
	}
}
