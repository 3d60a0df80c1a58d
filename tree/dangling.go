package tree

import (
	"fmt"
	"slices"

	"github.com/signadot/treedict/debug"
	"github.com/signadot/treedict/tree/keypath"
)

func newDangling(parent *Node, name string) *Node {
	return &Node{
		name:     name,
		parent:   parent,
		root:     parent.root,
		dangling: true,
	}
}

// At returns the branch at path below n. Missing segments are materialized
// as dangling placeholders which are not part of the tree until something
// is stored through them:
//
//	p := tree.New("")
//	c := p.At("a.b.c")  // three dangling links, p is unchanged
//	c.Set("x", 1)       // commits a, b and c, then stores x
//
// At never fails. A path which cannot name a branch yields a placeholder
// whose terminal operations report why.
func (n *Node) At(path string) *Node {
	kp, err := keypath.Parse(path)
	if err != nil {
		d := newDangling(n, path)
		d.blocked = err
		return d
	}
	return n.walk(kp)
}

func (n *Node) walk(kp *keypath.KeyPath) *Node {
	cur := n
	for x := kp; x != nil; x = x.Next {
		cur = cur.child(x.Field)
	}
	return cur
}

// child returns the branch named name under n, or a dangling placeholder.
func (n *Node) child(name string) *Node {
	if !n.dangling {
		if s, ok := n.slots[name]; ok {
			if s.kind != valueSlot {
				return s.node
			}
			d := newDangling(n, name)
			d.blocked = fmt.Errorf("%w: %s holds a value", ErrNotBranch, keypath.Join(n.BranchName(true, true), keypath.QuoteField(name)))
			return d
		}
	}
	return newDangling(n, name)
}

// danglingChain returns the dangling links ending at n, root-most first,
// along with the committed node they hang off.
func (n *Node) danglingChain() ([]*Node, *Node) {
	var chain []*Node
	x := n
	for x.dangling {
		chain = append(chain, x)
		x = x.parent
	}
	slices.Reverse(chain)
	return chain, x
}

// accessError reports a terminal operation on the dangling node n.
func (n *Node) accessError() error {
	chain, _ := n.danglingChain()
	first := chain[0]
	return &AttributeAccessError{
		Segment: first.name,
		Path:    n.BranchName(true, true),
		Err:     first.blocked,
	}
}

// checkCommit verifies that the dangling chain ending at n can be committed,
// without changing anything. It returns the committed node the whole chain
// already resolves to, or nil when some link would be created.
func (n *Node) checkCommit() (*Node, error) {
	if !n.dangling {
		return n, nil
	}
	chain, cur := n.danglingChain()
	for _, link := range chain {
		if link.blocked != nil {
			return nil, n.accessError()
		}
		if cur == nil {
			continue
		}
		if cur.frozen {
			return nil, frozenError(cur)
		}
		s, ok := cur.slots[link.name]
		switch {
		case !ok:
			// the rest of the chain is new
			cur = nil
		case s.kind == valueSlot:
			return nil, fmt.Errorf("%w: %s holds a value", ErrNotBranch, keypath.Join(cur.BranchName(true, true), keypath.QuoteField(link.name)))
		default:
			cur = s.node
		}
	}
	return cur, nil
}

// commit promotes the dangling chain ending at n into committed branches and
// returns the committed node at its end. checkCommit must have succeeded.
//
// Links are promoted in place, so handles to them become real branches. A
// link whose name was committed by other means since it was created is
// skipped in favor of the existing branch.
func (n *Node) commit() *Node {
	if !n.dangling {
		return n
	}
	chain, cur := n.danglingChain()
	for _, link := range chain {
		if s, ok := cur.slots[link.name]; ok {
			cur = s.node
			continue
		}
		link.parent = cur
		link.root = cur.root
		link.dangling = false
		link.slots = map[string]*slot{}
		cur.put(link.name, &slot{kind: childSlot, node: link})
		cur = link
	}
	if debug.Dangling() {
		debug.Logf("committed dangling chain %s (%d links)\n", cur.BranchName(true, true), len(chain))
	}
	return cur
}
