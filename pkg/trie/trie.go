package trie

import (
	"strings"
	"sync"
)

// Trie is a plain rune-keyed prefix tree. Words are lowercased on the way in
// and on every lookup, so all queries are case-insensitive.
type Trie struct {
	root  *Node
	words int
	nodes int
	mu    sync.RWMutex
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{
		root:  newNode(),
		nodes: 1,
	}
}

// Insert adds word to the trie. Any string is accepted, including the empty
// string, which marks the root itself as a word. Inserting twice is a no-op.
func (t *Trie) Insert(word string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, r := range strings.ToLower(word) {
		var created bool
		node, created = node.ensureChild(r)
		if created {
			t.nodes++
		}
	}
	if !node.terminal {
		node.terminal = true
		t.words++
	}
}

// Search reports whether word was inserted.
func (t *Trie) Search(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.walk(strings.ToLower(word))
	return node != nil && node.terminal
}

// StartsWith reports whether any inserted word begins with prefix.
// A word counts as a prefix of itself.
func (t *Trie) StartsWith(prefix string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.walk(strings.ToLower(prefix))
	return node != nil && !node.empty()
}

// Collect returns every word beginning with prefix, in lexicographic rune
// order. The result is never truncated; callers apply their own display limit.
func (t *Trie) Collect(prefix string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lowerPrefix := strings.ToLower(prefix)
	start := t.walk(lowerPrefix)
	if start == nil {
		return []string{}
	}
	return collectFrom(start, lowerPrefix)
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.words
}

// Nodes returns the number of allocated nodes, root included.
func (t *Trie) Nodes() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodes
}

// walk follows s from the root and returns the node it ends at, or nil as
// soon as a rune has no matching child. Caller holds the lock.
func (t *Trie) walk(s string) *Node {
	node := t.root
	for _, r := range s {
		node = node.child(r)
		if node == nil {
			return nil
		}
	}
	return node
}

type frame struct {
	node  *Node
	depth int
	r     rune
}

// collectFrom runs an iterative depth-first traversal below start. Children
// are pushed in descending order so they pop ascending, which yields a
// pre-order, lexicographic listing. path holds the runes below start for the
// frame being visited.
func collectFrom(start *Node, prefix string) []string {
	words := []string{}
	path := []rune{}
	stack := []frame{{node: start}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth > 0 {
			path = append(path[:top.depth-1], top.r)
		}
		if top.node.terminal {
			words = append(words, prefix+string(path[:top.depth]))
		}

		keys := top.node.keys()
		for i := len(keys) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:  top.node.children[keys[i]],
				depth: top.depth + 1,
				r:     keys[i],
			})
		}
	}
	return words
}
