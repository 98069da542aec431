package utils

import (
	"fmt"
	"strings"
)

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}

	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}

// Truncate returns at most limit items of words and how many were left out.
// A limit below 1 keeps everything.
func Truncate(words []string, limit int) ([]string, int) {
	if limit < 1 || len(words) <= limit {
		return words, 0
	}
	return words[:limit], len(words) - limit
}
