package parsing

import (
	"fmt"
	"sort"
	"strings"
)

// The lookup trie behind StringSet is built in two phases: a mutable
// builder with one node per byte, then a frozen path-compressed form where
// chains of single-child non-terminal nodes collapse into one edge.

type trieBuildNode[V comparable] struct {
	children map[byte]*trieBuildNode[V]
	terminal bool
	value    V
}

type trieBuilder[V comparable] struct {
	root *trieBuildNode[V]
}

func newTrieBuilder[V comparable]() *trieBuilder[V] {
	return &trieBuilder[V]{&trieBuildNode[V]{}}
}

func (b *trieBuilder[V]) add(s string, value V) {
	if s == "" {
		panic("datefmt: empty string in a string set")
	}
	node := b.root
	for i := 0; i < len(s); i++ {
		if node.children == nil {
			node.children = map[byte]*trieBuildNode[V]{}
		}
		next := node.children[s[i]]
		if next == nil {
			next = &trieBuildNode[V]{}
			node.children[s[i]] = next
		}
		node = next
	}
	if node.terminal {
		panic(fmt.Sprintf("datefmt: duplicate string set entry %q", s))
	}
	node.terminal = true
	node.value = value
}

func (b *trieBuilder[V]) freeze() *trieNode[V] {
	return freezeTrie(b.root)
}

type trieEdge[V comparable] struct {
	label string
	node  *trieNode[V]
}

type trieNode[V comparable] struct {
	edges    []trieEdge[V]
	terminal bool
	value    V
}

func freezeTrie[V comparable](n *trieBuildNode[V]) *trieNode[V] {
	result := &trieNode[V]{terminal: n.terminal, value: n.value}
	if len(n.children) == 0 {
		return result
	}

	labels := make([]byte, 0, len(n.children))
	for c := range n.children {
		labels = append(labels, c)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	result.edges = make([]trieEdge[V], 0, len(labels))
	for _, c := range labels {
		var label strings.Builder
		label.WriteByte(c)
		child := n.children[c]
		for !child.terminal && len(child.children) == 1 {
			for cc, next := range child.children {
				label.WriteByte(cc)
				child = next
			}
		}
		result.edges = append(result.edges, trieEdge[V]{label.String(), freezeTrie(child)})
	}
	return result
}

// lookup follows the longest matching prefix chain from pos, remembering
// the last terminal node passed, and backtracks to it on a dead end.
// Returns the end position and value of the longest vocabulary entry
// prefixing input[pos:], or found == false if none does.
func (n *trieNode[V]) lookup(input string, pos int) (end int, value V, found bool) {
	node := n
	cur := pos
	for {
		if node.terminal {
			end, value, found = cur, node.value, true
		}
		next := (*trieNode[V])(nil)
		for i := range node.edges {
			e := &node.edges[i]
			if strings.HasPrefix(input[cur:], e.label) {
				next = e.node
				cur += len(e.label)
				break
			}
		}
		if next == nil {
			return
		}
		node = next
	}
}
