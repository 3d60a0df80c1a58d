package tree

// Equal reports whether a and b have the same content: the same child names,
// with equal values and structurally equal nodes under each name. Node
// identity, ownership and aliasing do not matter, nor do the names of a and
// b themselves. Dangling nodes are never equal to anything.
//
// Alias cycles compare by what they unfold to, so a branch aliasing itself
// equals two branches aliasing each other when their contents agree.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.dangling || b.dangling {
		return false
	}
	e := &equalizer{assumed: map[[2]*Node]bool{}}
	return e.nodes(a, b)
}

// Equal reports whether n and o have the same content. See Equal.
func (n *Node) Equal(o *Node) bool {
	return Equal(n, o)
}

type equalizer struct {
	// assumed holds the pairs under comparison or already found equal, so
	// alias cycles terminate.
	assumed map[[2]*Node]bool
}

func (e *equalizer) nodes(a, b *Node) bool {
	if a == b {
		return true
	}
	key := [2]*Node{a, b}
	if e.assumed[key] {
		return true
	}
	e.assumed[key] = true
	if len(a.keys) != len(b.keys) {
		return false
	}
	for _, k := range a.keys {
		sb, ok := b.slots[k]
		if !ok {
			return false
		}
		if !e.slots(a.slots[k], sb) {
			return false
		}
	}
	return true
}

func (e *equalizer) slots(sa, sb *slot) bool {
	aNode, bNode := sa.kind != valueSlot, sb.kind != valueSlot
	if aNode != bNode {
		return false
	}
	if aNode {
		return e.nodes(sa.node, sb.node)
	}
	return valuesEqual(sa.value, sb.value)
}
