package tree

import "github.com/signadot/treedict/debug"

// Freeze marks n and every node reachable from it, through owned branches
// and aliases alike, as frozen. Frozen nodes reject Set, MakeBranch and
// Detach. The flag is set once; nodes added later are not covered, but
// nothing can be added below a frozen node anyway.
func (n *Node) Freeze() error {
	return n.setFrozen(true)
}

// Unfreeze clears the frozen flag on n and every node reachable from it.
func (n *Node) Unfreeze() error {
	return n.setFrozen(false)
}

func (n *Node) setFrozen(v bool) error {
	if n.dangling {
		return n.accessError()
	}
	seen := map[*Node]bool{}
	n.visit(seen, func(x *Node) { x.frozen = v })
	if debug.Freeze() {
		debug.Logf("set frozen=%t on %d nodes from %s\n", v, len(seen), n.BranchName(true, true))
	}
	return nil
}

// visit calls f on n and every node reachable from it, once each.
func (n *Node) visit(seen map[*Node]bool, f func(*Node)) {
	if seen[n] {
		return
	}
	seen[n] = true
	f(n)
	for _, k := range n.keys {
		if s := n.slots[k]; s.kind != valueSlot {
			s.node.visit(seen, f)
		}
	}
}

// NumMutable returns the number of mutable values held in the subtree owned
// by n. Aliased nodes are not counted.
func (n *Node) NumMutable() (int, error) {
	if n.dangling {
		return 0, n.accessError()
	}
	return n.numMutable(), nil
}

func (n *Node) numMutable() int {
	res := 0
	for _, k := range n.keys {
		s := n.slots[k]
		switch s.kind {
		case valueSlot:
			if IsMutable(s.value) {
				res++
			}
		case childSlot:
			res += s.node.numMutable()
		}
	}
	return res
}
