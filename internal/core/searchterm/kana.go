package searchterm

// Hiragana and katakana blocks are parallel with a fixed codepoint offset;
// conversion is a rune shift bounded to the syllabary ranges. Characters
// outside the source block (kanji, latin, long-vowel marks) pass through

const (
	hiraganaLo = 0x3041 // ぁ
	hiraganaHi = 0x3096 // ゖ
	katakanaLo = 0x30A1 // ァ
	katakanaHi = 0x30F6 // ヶ
	kanaOffset = katakanaLo - hiraganaLo
)

// HiraganaToKatakana converts every hiragana rune in s to its katakana
// counterpart
func HiraganaToKatakana(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= hiraganaLo && r <= hiraganaHi {
			r += kanaOffset
		}
		out = append(out, r)
	}
	return string(out)
}

// KatakanaToHiragana converts every katakana rune in s to its hiragana
// counterpart
func KatakanaToHiragana(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= katakanaLo && r <= katakanaHi {
			r -= kanaOffset
		}
		out = append(out, r)
	}
	return string(out)
}

// containsHiragana reports whether s has at least one hiragana rune
func containsHiragana(s string) bool {
	for _, r := range s {
		if r >= hiraganaLo && r <= hiraganaHi {
			return true
		}
	}
	return false
}

// containsKatakana reports whether s has at least one katakana rune
func containsKatakana(s string) bool {
	for _, r := range s {
		if r >= katakanaLo && r <= katakanaHi {
			return true
		}
	}
	return false
}
