package tree

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/treedict/tree/keypath"
)

// Set stores v at path below n, creating intermediate branches as needed
// and committing any dangling chain on the way.
//
// If v is a *Node, the slot aliases it: the same node becomes reachable
// from both places, and its root stays the root of the tree which owns it.
// A dangling *Node is committed in its own tree first.
//
// Set fails with ErrFrozen if any node traversed is frozen, and with
// ErrNotBranch if the path descends through a value.
func (n *Node) Set(path string, v any) error {
	kp, err := keypath.Parse(path)
	if err != nil {
		return err
	}
	if kp == nil {
		return fmt.Errorf("%w: set requires a non-empty path", keypath.ErrBadPath)
	}
	target, err := n.walkWrite(kp.Parent())
	if err != nil {
		return err
	}
	if e, ok := v.(Entry); ok {
		v = e.Any()
	}
	vn, isNode := v.(*Node)
	if isNode && vn == nil {
		v, isNode = nil, false
	}
	if isNode && vn.dangling {
		if _, err := vn.checkCommit(); err != nil {
			return err
		}
	}
	// everything is validated, mutations start here
	if isNode && vn.dangling {
		vn = vn.commit()
	}
	t := target.commit()
	if t.frozen {
		return frozenError(t)
	}
	name := kp.Last()
	if isNode {
		if old, ok := t.slots[name]; ok && old.node == vn {
			return nil
		}
		t.put(name, &slot{kind: aliasSlot, node: vn})
		return nil
	}
	t.put(name, &slot{kind: valueSlot, value: v})
	return nil
}

// walkWrite resolves kp below n for mutation. Every committed node traversed
// must be unfrozen, and the result, possibly dangling, must be committable.
func (n *Node) walkWrite(kp *keypath.KeyPath) (*Node, error) {
	cur := n
	for x := kp; ; x = x.Next {
		if !cur.dangling && cur.frozen {
			return nil, frozenError(cur)
		}
		if x == nil {
			break
		}
		cur = cur.child(x.Field)
	}
	end, err := cur.checkCommit()
	if err != nil {
		return nil, err
	}
	// the chain may have been committed by other means and frozen since
	if end != nil && end.frozen {
		return nil, frozenError(end)
	}
	return cur, nil
}

// MakeBranch returns the branch at path below n, creating it and any
// missing intermediate branches.
func (n *Node) MakeBranch(path string) (*Node, error) {
	kp, err := keypath.Parse(path)
	if err != nil {
		return nil, err
	}
	if kp == nil {
		return nil, fmt.Errorf("%w: branch requires a non-empty path", keypath.ErrBadPath)
	}
	b, err := n.walkWrite(kp)
	if err != nil {
		return nil, err
	}
	return b.commit(), nil
}

// Update sets each dotted key of values below n, in sorted key order. It
// stops at the first error, leaving earlier keys set.
func (n *Node) Update(values map[string]any) error {
	for _, k := range slices.Sorted(maps.Keys(values)) {
		if err := n.Set(k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the entry at path below n without creating anything.
// Missing paths yield ErrNotFound. The empty path yields n itself.
func (n *Node) Lookup(path string) (Entry, error) {
	if n.dangling {
		return Entry{}, n.accessError()
	}
	kp, err := keypath.Parse(path)
	if err != nil {
		return Entry{}, err
	}
	if kp == nil {
		return Entry{Kind: BranchEntry, Node: n}, nil
	}
	cur := n
	for x := kp; x != nil; x = x.Next {
		s, ok := cur.slots[x.Field]
		if !ok {
			return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, keypath.Join(n.BranchName(true, true), path))
		}
		if x.Next == nil {
			return s.entry(), nil
		}
		if s.kind == valueSlot {
			return Entry{}, fmt.Errorf("%w: %s holds a value", ErrNotBranch, keypath.Join(cur.BranchName(true, true), keypath.QuoteField(x.Field)))
		}
		cur = s.node
	}
	panic("unreachable")
}

// Get returns the value at path below n. Branches and aliases are returned
// as *Node.
func (n *Node) Get(path string) (any, error) {
	e, err := n.Lookup(path)
	if err != nil {
		return nil, err
	}
	return e.Any(), nil
}

// Branch returns the node at path below n, failing with ErrNotBranch if the
// path holds a value.
func (n *Node) Branch(path string) (*Node, error) {
	e, err := n.Lookup(path)
	if err != nil {
		return nil, err
	}
	if !e.IsNode() {
		return nil, fmt.Errorf("%w: %s", ErrNotBranch, keypath.Join(n.BranchName(true, true), path))
	}
	return e.Node, nil
}

// Has reports whether path below n holds committed content.
func (n *Node) Has(path string) bool {
	_, err := n.Lookup(path)
	return err == nil
}

// Detach removes the slot at path and returns what it held. A detached
// owned branch becomes the root of its own tree.
func (n *Node) Detach(path string) (Entry, error) {
	if n.dangling {
		return Entry{}, n.accessError()
	}
	kp, err := keypath.Parse(path)
	if err != nil {
		return Entry{}, err
	}
	if kp == nil {
		return Entry{}, fmt.Errorf("%w: detach requires a non-empty path", keypath.ErrBadPath)
	}
	parent := n
	if pkp := kp.Parent(); pkp != nil {
		parent, err = n.Branch(pkp.String())
		if err != nil {
			return Entry{}, err
		}
	}
	if parent.frozen {
		return Entry{}, frozenError(parent)
	}
	s := parent.remove(kp.Last())
	if s == nil {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, keypath.Join(n.BranchName(true, true), path))
	}
	return s.entry(), nil
}
