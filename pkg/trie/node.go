package trie

import "sort"

// Node is a single trie vertex. Each node exclusively owns its children.
type Node struct {
	children map[rune]*Node
	terminal bool
}

func newNode() *Node {
	return &Node{}
}

// child returns the child for r, or nil.
func (n *Node) child(r rune) *Node {
	if n.children == nil {
		return nil
	}
	return n.children[r]
}

// ensureChild returns the child for r, creating it if absent.
// created reports whether a new node was allocated.
func (n *Node) ensureChild(r rune) (child *Node, created bool) {
	if n.children == nil {
		n.children = make(map[rune]*Node, 1)
	}
	if c, ok := n.children[r]; ok {
		return c, false
	}
	c := newNode()
	n.children[r] = c
	return c, true
}

// keys returns the child runes in ascending order.
func (n *Node) keys() []rune {
	if len(n.children) == 0 {
		return nil
	}
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// empty is true for a node that is neither a word end nor has children.
// Only the root of an empty trie can be in this state.
func (n *Node) empty() bool {
	return !n.terminal && len(n.children) == 0
}
