package ruleengine

// parseSelectionDigit maps one selection numeral to its value. The voice
// number grammar is closed: ASCII 1-5 (full-width forms are width-folded
// before matching) and the first five kanji numerals. Everything else is -1
func parseSelectionDigit(s string) int {
	switch s {
	case "1", "一":
		return 1
	case "2", "二":
		return 2
	case "3", "三":
		return 3
	case "4", "四":
		return 4
	case "5", "五":
		return 5
	default:
		return -1
	}
}
