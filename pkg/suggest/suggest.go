// Package suggest provides single-edit spelling correction on top of a word
// index. Candidates are generated by deletion, insertion, substitution and
// adjacent transposition, then kept only when the index knows them.
package suggest

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Dictionary is the only capability the suggester needs from an index.
type Dictionary interface {
	Search(word string) bool
}

// Result describes a spell check of a single word.
type Result struct {
	Word        string
	Correct     bool
	Suggestions []string
}

// Suggester generates corrections against a Dictionary.
type Suggester struct {
	dict Dictionary
}

// New returns a Suggester reading from dict.
func New(dict Dictionary) *Suggester {
	return &Suggester{dict: dict}
}

// Suggest returns the dictionary words exactly one edit away from word,
// deduplicated and sorted. The query itself is never part of the result,
// even when it is a dictionary word.
func (s *Suggester) Suggest(word string) []string {
	lowerWord := strings.ToLower(word)
	candidates := Edits(lowerWord)

	suggestions := []string{}
	for _, c := range candidates {
		if s.dict.Search(c) {
			suggestions = append(suggestions, c)
		}
	}
	sort.Strings(suggestions)

	log.Debugf("Checked %d candidates for '%s', %d valid", len(candidates), lowerWord, len(suggestions))
	return suggestions
}

// Check reports whether word is spelled correctly and, when it is not,
// which corrections the dictionary offers.
func (s *Suggester) Check(word string) Result {
	lowerWord := strings.ToLower(word)
	if s.dict.Search(lowerWord) {
		return Result{Word: lowerWord, Correct: true, Suggestions: []string{}}
	}
	return Result{Word: lowerWord, Suggestions: s.Suggest(lowerWord)}
}
