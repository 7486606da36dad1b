package language

import "unicode"

// Language identifies a supported response language.
type Language string

const (
	English Language = "en"
	Bengali Language = "bn"
)

// isBengali reports whether r falls in the Bengali Unicode block
// (U+0980 to U+09FF).
func isBengali(r rune) bool {
	return r >= 0x0980 && r <= 0x09FF
}

// Detect classifies text as Bengali or English from script composition.
// Bengali wins when the text contains at least 3 Bengali-block runes and at
// least as many of them as Latin letters. Empty or script-free text is
// English; image-only callers that want a different default must handle the
// empty case themselves.
func Detect(text string) Language {
	bengali, latin := countScripts(text)
	if bengali >= 3 && bengali >= latin {
		return Bengali
	}
	return English
}

// BengaliRatio returns the share of Bengali runes among all letters in text,
// 0.0 when the text contains no letters. Enforcement uses this with its own
// threshold, which differs from Detect's.
func BengaliRatio(text string) float64 {
	bengali, latin := countScripts(text)
	total := bengali + latin
	if total == 0 {
		return 0.0
	}
	return float64(bengali) / float64(total)
}

func countScripts(text string) (bengali, latin int) {
	for _, r := range text {
		switch {
		case isBengali(r):
			bengali++
		case unicode.IsLetter(r) && r < 0x0250:
			latin++
		}
	}
	return bengali, latin
}
