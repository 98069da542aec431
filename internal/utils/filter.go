package utils

import (
	"unicode"
)

// IsLetters reports whether s is non-empty and made of letters only.
func IsLetters(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsDictionaryWord checks if a trimmed dictionary line should be indexed.
// Blank lines and entries with digits, punctuation or inner spaces are skipped.
func IsDictionaryWord(line string) bool {
	return IsLetters(line)
}

// IsValidInput checks if a query argument should reach the index.
// Prefix queries accept the empty string, everything else needs letters only.
func IsValidInput(s string, allowEmpty bool) bool {
	if len(s) == 0 {
		return allowEmpty
	}
	return IsLetters(s)
}
