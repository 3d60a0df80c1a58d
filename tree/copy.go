package tree

import (
	"slices"

	"github.com/signadot/treedict/debug"
)

// Copy returns an independent copy of the subtree at n. The copy is a new
// root carrying n's name.
//
// Nodes structurally owned within the subtree are cloned. A slot aliasing a
// node inside the subtree is rewritten to alias that node's clone, so shared
// structure stays shared in the copy. A slot aliasing a node outside the
// subtree keeps pointing at the original node, whose RootNode remains the
// original tree's root.
//
// Mutable values are duplicated; immutable ones are shared. Every node of the
// copy is unfrozen, whatever the state of the source.
//
// Copying a dangling node fails with an *AttributeAccessError.
func (n *Node) Copy() (*Node, error) {
	if n.dangling {
		return nil, n.accessError()
	}
	c := &copier{clones: map[*Node]*Node{}}
	res := c.discover(n, nil)
	c.rewrite()
	if debug.Copy() {
		debug.Logf("copied %s: %d nodes cloned, %d internal aliases rewritten, %d external aliases kept\n",
			n.BranchName(true, true), len(c.order), c.internal, c.external)
	}
	return res, nil
}

// Clone is Copy. There is no shallower variant: skipping the alias rewrite
// would leave the copy aliasing the source's internal nodes.
func (n *Node) Clone() (*Node, error) {
	return n.Copy()
}

type copier struct {
	clones map[*Node]*Node
	// order lists the originals in discovery order.
	order    []*Node
	internal int
	external int
}

// discover clones orig and every branch it owns, recording the mapping from
// originals to clones. Slots are filled in by rewrite.
func (c *copier) discover(orig, parent *Node) *Node {
	clone := newNode(orig.name, parent)
	clone.keys = slices.Clone(orig.keys)
	c.clones[orig] = clone
	c.order = append(c.order, orig)
	for _, k := range orig.keys {
		if s := orig.slots[k]; s.kind == childSlot {
			c.discover(s.node, clone)
		}
	}
	return clone
}

// rewrite fills the slots of every clone, duplicating values and resolving
// aliases against the discovered set.
func (c *copier) rewrite() {
	for _, orig := range c.order {
		clone := c.clones[orig]
		clone.slots = make(map[string]*slot, len(orig.slots))
		for _, k := range orig.keys {
			s := orig.slots[k]
			switch s.kind {
			case valueSlot:
				clone.slots[k] = &slot{kind: valueSlot, value: duplicate(s.value)}
			case childSlot:
				clone.slots[k] = &slot{kind: childSlot, node: c.clones[s.node]}
			case aliasSlot:
				if target, ok := c.clones[s.node]; ok {
					c.internal++
					clone.slots[k] = &slot{kind: aliasSlot, node: target}
					continue
				}
				c.external++
				clone.slots[k] = &slot{kind: aliasSlot, node: s.node}
			}
		}
	}
}
