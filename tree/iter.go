package tree

import (
	"iter"
	"slices"

	"github.com/signadot/treedict/tree/keypath"
)

// BranchMode selects which entries iteration yields.
type BranchMode int

const (
	// BranchesAll yields values and nodes.
	BranchesAll BranchMode = iota
	// BranchesOnly yields nodes only.
	BranchesOnly
	// BranchesNone yields values only.
	BranchesNone
)

// All iterates over the entries below n in insertion order, keyed by their
// dotted path relative to n. With recursive, owned branches are descended
// after being yielded; aliases are yielded but never descended. A dangling
// node yields nothing.
func (n *Node) All(mode BranchMode, recursive bool) iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		if n.dangling {
			return
		}
		n.entries("", mode, recursive, yield)
	}
}

func (n *Node) entries(prefix string, mode BranchMode, recursive bool, yield func(string, Entry) bool) bool {
	for _, k := range slices.Clone(n.keys) {
		s, ok := n.slots[k]
		if !ok {
			continue
		}
		key := keypath.Join(prefix, keypath.QuoteField(k))
		isNode := s.kind != valueSlot
		if (isNode && mode != BranchesNone) || (!isNode && mode != BranchesOnly) {
			if !yield(key, s.entry()) {
				return false
			}
		}
		if recursive && s.kind == childSlot {
			if !s.node.entries(key, mode, recursive, yield) {
				return false
			}
		}
	}
	return true
}
