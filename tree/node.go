package tree

import (
	"slices"

	"github.com/signadot/treedict/tree/keypath"
)

// DefaultName is the name given to roots created without one.
const DefaultName = "root"

type slotKind uint8

const (
	// valueSlot holds a payload value.
	valueSlot slotKind = iota
	// childSlot holds a branch owned by the slot's node.
	childSlot
	// aliasSlot holds a node owned elsewhere, or a root.
	aliasSlot
)

type slot struct {
	kind  slotKind
	value any
	node  *Node
}

func (s *slot) entry() Entry {
	switch s.kind {
	case childSlot:
		return Entry{Kind: BranchEntry, Node: s.node}
	case aliasSlot:
		return Entry{Kind: AliasEntry, Node: s.node}
	}
	return Entry{Kind: ValueEntry, Value: s.value}
}

// Node is a branch of a tree: a named, ordered mapping from child names to
// values or nodes.
//
// A child slot holding a node either owns it (the node was created there,
// and its parent is the slot's node) or aliases it (the node lives elsewhere,
// possibly in another tree). Aliases never transfer ownership.
type Node struct {
	name   string
	keys   []string
	slots  map[string]*slot
	parent *Node
	root   *Node
	frozen bool

	dangling bool
	// blocked is set on a dangling link which can never be committed.
	blocked error
}

// New returns a fresh root named name, or DefaultName if name is empty.
func New(name string) *Node {
	if name == "" {
		name = DefaultName
	}
	return newNode(name, nil)
}

func newNode(name string, parent *Node) *Node {
	n := &Node{
		name:   name,
		parent: parent,
		slots:  map[string]*slot{},
	}
	if parent == nil {
		n.root = n
	} else {
		n.root = parent.root
	}
	return n
}

// Name returns the local name of n.
func (n *Node) Name() string {
	return n.name
}

// ParentNode returns the structural parent of n, or nil for a root.
func (n *Node) ParentNode() *Node {
	return n.parent
}

// RootNode returns the root of the tree which structurally owns n. For a node
// reached through an alias, this is the root of the owning tree, not of the
// tree holding the alias.
func (n *Node) RootNode() *Node {
	return n.root
}

// IsRoot reports whether n has no structural parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// IsDangling reports whether n is an uncommitted placeholder.
func (n *Node) IsDangling() bool {
	return n.dangling
}

// IsFrozen reports whether n rejects mutation.
func (n *Node) IsFrozen() bool {
	return n.frozen
}

// TreeName returns the name of the root owning n.
func (n *Node) TreeName() string {
	return n.root.name
}

// Len returns the number of child slots of n.
func (n *Node) Len() int {
	return len(n.keys)
}

// Keys returns the child names of n in insertion order.
func (n *Node) Keys() []string {
	return slices.Clone(n.keys)
}

// BranchName returns the name of n. With addPath, the name is the dotted
// path from the structural root. With addTreeName, it is further prefixed by
// the name of the owning tree. A root is always named by its own name.
//
// Examples, for p := New("root") with branch b:
//   - p.At("b").BranchName(false, false) → "b"
//   - p.At("b").BranchName(true, true) → "root.b"
//   - p.BranchName(true, true) → "root"
func (n *Node) BranchName(addPath, addTreeName bool) string {
	if n.parent == nil {
		return n.name
	}
	if !addPath && !addTreeName {
		return n.name
	}
	var res string
	if addPath {
		res = keypath.FromSegments(n.pathSegments()...).String()
	} else {
		res = keypath.QuoteField(n.name)
	}
	if addTreeName {
		res = keypath.Join(keypath.QuoteField(n.TreeName()), res)
	}
	return res
}

// Path returns the dotted path of n from its structural root.
func (n *Node) Path() *keypath.KeyPath {
	return keypath.FromSegments(n.pathSegments()...)
}

func (n *Node) pathSegments() []string {
	var segs []string
	for x := n; x.parent != nil; x = x.parent {
		segs = append(segs, x.name)
	}
	slices.Reverse(segs)
	return segs
}

// orphan detaches n from its parent, making it the root of its own tree.
func (n *Node) orphan() {
	n.parent = nil
	n.setRoot(n)
}

func (n *Node) setRoot(r *Node) {
	n.root = r
	for _, k := range n.keys {
		if s := n.slots[k]; s.kind == childSlot {
			s.node.setRoot(r)
		}
	}
}

// put stores s under name, orphaning any owned branch it replaces.
func (n *Node) put(name string, s *slot) {
	old, ok := n.slots[name]
	if !ok {
		n.keys = append(n.keys, name)
	} else if old.kind == childSlot && old.node != s.node {
		old.node.orphan()
	}
	n.slots[name] = s
}

func (n *Node) remove(name string) *slot {
	s, ok := n.slots[name]
	if !ok {
		return nil
	}
	delete(n.slots, name)
	n.keys = slices.DeleteFunc(n.keys, func(k string) bool { return k == name })
	if s.kind == childSlot {
		s.node.orphan()
	}
	return s
}

// String returns the report of n, or a placeholder description for a
// dangling node.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.dangling {
		return "<dangling " + n.BranchName(true, true) + ">"
	}
	r := n.MakeReport()
	if r == "" {
		return "{}"
	}
	return r
}
