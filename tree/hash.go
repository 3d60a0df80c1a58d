package tree

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// cycleDepth bounds how far Hash unfolds nodes which reach an alias cycle.
const cycleDepth = 16

// Hash returns a 64-bit content hash of n. Children are combined in name
// order, so structurally equal nodes hash equally whatever their insertion
// order, identity or aliasing. The hash is stable across processes.
//
// Nodes from which an alias cycle is reachable are hashed by their unfolding
// down to a fixed depth, so cycles of different lengths with the same
// unfolding hash alike. Differences below that depth only show in Equal.
//
// Values are hashed with hashstructure; values it cannot hash, such as
// functions and channels, make Hash fail. Hashing a dangling node fails with
// an *AttributeAccessError.
//
// Hash satisfies hashstructure.Hashable, so trees nested inside values hash
// by content too.
func (n *Node) Hash() (uint64, error) {
	if n.dangling {
		return 0, n.accessError()
	}
	h := &hasher{
		cyclic: map[*Node]bool{},
		state:  map[*Node]int{},
		memo:   map[hashKey]uint64{},
	}
	h.findCycles(n)
	return h.node(n, cycleDepth)
}

type hashKey struct {
	n *Node
	// depth is the remaining unfolding depth, or -1 for acyclic nodes.
	depth int
}

type hasher struct {
	// cyclic holds the nodes from which an alias cycle is reachable.
	cyclic map[*Node]bool
	state  map[*Node]int
	memo   map[hashKey]uint64
}

const (
	unvisited = iota
	visiting
	visited
)

// findCycles marks n cyclic if an alias cycle is reachable from it, and
// returns that verdict.
func (h *hasher) findCycles(n *Node) bool {
	switch h.state[n] {
	case visiting:
		return true
	case visited:
		return h.cyclic[n]
	}
	h.state[n] = visiting
	res := false
	for _, s := range n.slots {
		if s.kind != valueSlot && h.findCycles(s.node) {
			res = true
		}
	}
	h.state[n] = visited
	h.cyclic[n] = res
	return res
}

func (h *hasher) node(n *Node, depth int) (uint64, error) {
	if !h.cyclic[n] {
		depth = -1
	} else if depth == 0 {
		return xxhash.Sum64String("cycle"), nil
	}
	key := hashKey{n: n, depth: depth}
	if v, ok := h.memo[key]; ok {
		return v, nil
	}
	d := xxhash.New()
	d.WriteString("node")
	var b [8]byte
	for _, k := range slices.Sorted(slices.Values(n.keys)) {
		s := n.slots[k]
		binary.LittleEndian.PutUint64(b[:], xxhash.Sum64String(k))
		d.Write(b[:])

		var (
			vh  uint64
			tag byte
			err error
		)
		if s.kind == valueSlot {
			tag = 'v'
			vh, err = valueHash(s.value)
		} else {
			tag = 'n'
			vh, err = h.node(s.node, max(depth-1, 0))
		}
		if err != nil {
			return 0, err
		}
		d.Write([]byte{tag})
		binary.LittleEndian.PutUint64(b[:], vh)
		d.Write(b[:])
	}
	res := d.Sum64()
	h.memo[key] = res
	return res, nil
}

func valueHash(v any) (uint64, error) {
	if v == nil {
		return xxhash.Sum64String("null"), nil
	}
	res, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("hashing %T value: %w", v, err)
	}
	return res, nil
}
