// Package trie is the core word index. It provides exact lookups, prefix
// tests and prefix enumeration over a case-insensitive set of words.
package trie

import (
	"errors"
	"fmt"
	"strings"
)

// Backend names accepted by NewIndex.
const (
	BackendNode     = "node"
	BackendPatricia = "patricia"
)

// ErrUnknownBackend is returned by NewIndex for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown index backend")

// Index defines the word index operations shared by every backend.
type Index interface {
	// Insert adds a word, lowercased. Repeated inserts change nothing.
	Insert(word string)

	// Search reports whether the exact word was inserted.
	Search(word string) bool

	// StartsWith reports whether any word begins with prefix.
	StartsWith(prefix string) bool

	// Collect returns all words beginning with prefix, untruncated.
	Collect(prefix string) []string

	// Len returns the number of distinct words.
	Len() int
}

var (
	_ Index = (*Trie)(nil)
	_ Index = (*Patricia)(nil)
)

// NewIndex returns an empty index for the named backend.
// An empty name selects the node trie.
func NewIndex(backend string) (Index, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendNode:
		return New(), nil
	case BackendPatricia:
		return NewPatricia(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
