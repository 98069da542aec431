package suggest

import "strings"

// alphabet is the set of letters tried for insertions and substitutions.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// editSet collects candidates once each, preserving generation order.
type editSet struct {
	seen  map[string]struct{}
	order []string
}

func newEditSet(size int) *editSet {
	return &editSet{
		seen:  make(map[string]struct{}, size),
		order: make([]string, 0, size),
	}
}

func (s *editSet) add(candidate string) {
	if _, ok := s.seen[candidate]; ok {
		return
	}
	s.seen[candidate] = struct{}{}
	s.order = append(s.order, candidate)
}

// Edits returns every distinct string one edit away from word: deletions,
// adjacent transpositions, substitutions and insertions over a-z. The word is
// lowercased first. No-op edits (same-letter substitution, swapping equal
// neighbours) are skipped, so the word itself is never produced.
func Edits(word string) []string {
	runes := []rune(strings.ToLower(word))
	n := len(runes)
	set := newEditSet(n + (n - 1) + 26*n + 26*(n+1))

	// deletion
	for i := 0; i < n; i++ {
		set.add(string(runes[:i]) + string(runes[i+1:]))
	}

	// transposition
	for i := 0; i+1 < n; i++ {
		if runes[i] == runes[i+1] {
			continue
		}
		swapped := make([]rune, n)
		copy(swapped, runes)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		set.add(string(swapped))
	}

	// substitution
	buf := make([]rune, n)
	for i := 0; i < n; i++ {
		copy(buf, runes)
		for _, c := range alphabet {
			if c == runes[i] {
				continue
			}
			buf[i] = c
			set.add(string(buf))
		}
	}

	// insertion
	for i := 0; i <= n; i++ {
		head, tail := string(runes[:i]), string(runes[i:])
		for _, c := range alphabet {
			set.add(head + string(c) + tail)
		}
	}

	return set.order
}
