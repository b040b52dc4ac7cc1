package render

import "strings"

// WrapText breaks each paragraph of s at word boundaries so no line exceeds
// cols runes. Words longer than cols are left whole. Existing newlines are
// kept.
func WrapText(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	var out strings.Builder
	for i, para := range strings.Split(s, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		lineLen := 0
		for j, word := range strings.Fields(para) {
			wl := len([]rune(word))
			switch {
			case j == 0:
			case lineLen+1+wl > cols:
				out.WriteByte('\n')
				lineLen = 0
			default:
				out.WriteByte(' ')
				lineLen++
			}
			out.WriteString(word)
			lineLen += wl
		}
	}
	return out.String()
}
