package index

import "sort"

// trieNode holds children in sorted rune order so prefix walks produce
// deterministic term ordering.
type trieNode struct {
	children map[rune]*trieNode
	order    []rune
	isTerm   bool
}

type trie struct {
	root *trieNode
}

func newTrie() *trie {
	return &trie{root: newTrieNode()}
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

func (t *trie) insert(term string) {
	node := t.root
	for _, r := range term {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
			i := sort.Search(len(node.order), func(i int) bool { return node.order[i] >= r })
			node.order = append(node.order, 0)
			copy(node.order[i+1:], node.order[i:])
			node.order[i] = r
		}
		node = child
	}
	node.isTerm = true
}

// withPrefix returns every inserted term that starts with prefix, in
// lexicographic order. The prefix itself is included if it is a term.
func (t *trie) withPrefix(prefix string) []string {
	node := t.root
	for _, r := range prefix {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}

	var terms []string
	collect(node, prefix, &terms)
	return terms
}

func collect(node *trieNode, prefix string, terms *[]string) {
	if node.isTerm {
		*terms = append(*terms, prefix)
	}
	for _, r := range node.order {
		collect(node.children[r], prefix+string(r), terms)
	}
}
