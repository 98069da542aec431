package trie

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// errStopVisit ends a subtree visit after the first hit.
var errStopVisit = errors.New("stop visit")

// Patricia is an Index backed by a compressed patricia trie. It answers every
// query exactly like Trie, trading per-rune nodes for shared byte runs.
type Patricia struct {
	trie *patricia.Trie
	// the empty word never reaches the patricia trie
	hasEmpty bool
	words    int
	mu       sync.RWMutex
}

// NewPatricia returns an empty patricia-backed index.
func NewPatricia() *Patricia {
	return &Patricia{
		trie: patricia.NewTrie(),
	}
}

// Insert adds the lowercased word. Inserting twice is a no-op.
func (p *Patricia) Insert(word string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	lowerWord := strings.ToLower(word)
	if lowerWord == "" {
		if !p.hasEmpty {
			p.hasEmpty = true
			p.words++
		}
		return
	}
	if p.trie.Insert(patricia.Prefix(lowerWord), true) {
		p.words++
	}
}

// Search reports whether word was inserted.
func (p *Patricia) Search(word string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	lowerWord := strings.ToLower(word)
	if lowerWord == "" {
		return p.hasEmpty
	}
	return p.trie.Get(patricia.Prefix(lowerWord)) != nil
}

// StartsWith reports whether any inserted word begins with prefix.
func (p *Patricia) StartsWith(prefix string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	lowerPrefix := strings.ToLower(prefix)
	if lowerPrefix == "" {
		return p.words > 0
	}

	found := false
	err := p.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(patricia.Prefix, patricia.Item) error {
		found = true
		return errStopVisit
	})
	if err != nil && !errors.Is(err, errStopVisit) {
		log.Errorf("Error visiting patricia subtree: %v", err)
	}
	return found
}

// Collect returns every word beginning with prefix in lexicographic order.
func (p *Patricia) Collect(prefix string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	lowerPrefix := strings.ToLower(prefix)
	words := []string{}
	if lowerPrefix == "" && p.hasEmpty {
		words = append(words, "")
	}

	visitor := func(key patricia.Prefix, _ patricia.Item) error {
		words = append(words, string(key))
		return nil
	}

	var err error
	if lowerPrefix == "" {
		err = p.trie.Visit(visitor)
	} else {
		err = p.trie.VisitSubtree(patricia.Prefix(lowerPrefix), visitor)
	}
	if err != nil {
		log.Errorf("Error visiting patricia subtree: %v", err)
		return []string{}
	}

	// sparse child lists are unordered
	sort.Strings(words)
	return words
}

// Len returns the number of distinct words.
func (p *Patricia) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.words
}
