// Package tree provides a hierarchical, mutable namespace whose nodes can
// alias one another.
//
// # Overview
//
// A tree is a root Node with named child slots. A slot holds either a value
// or a node. Nodes created in a slot (by Set, MakeBranch or committing a
// dangling chain) are owned by it; nodes stored with Set are aliased, so the
// same node is reachable from several paths, possibly in several trees.
//
//	p := tree.New("root")
//	p.Set("a.x", 1)             // creates branch a, stores x
//	a, _ := p.Branch("a")
//	p.Set("b", a)               // b aliases a
//	p.Get("b.x")                // 1
//
// # Dangling Nodes
//
// At navigates without failing. Missing segments become dangling
// placeholders which are not part of the tree:
//
//	c := p.At("defs.c")         // p unchanged
//	c.Set("v", 1)               // commits defs and c, stores v
//
// Terminal operations on a dangling node (Copy, Freeze, Hash, Lookup, ...)
// fail with an *AttributeAccessError naming the first missing segment of the
// chain. Lookup, Get, Branch and Has never create anything and report
// ErrNotFound for missing paths.
//
// # Copying
//
// Copy clones the nodes owned within a subtree. Aliases to nodes inside the
// subtree are redirected to the clones; aliases to nodes outside it are
// kept, and those nodes keep reporting their original RootNode. Mutable
// values are duplicated and copies are always unfrozen.
//
// # Freezing
//
// Freeze marks every reachable node frozen; mutations through frozen nodes
// fail with ErrFrozen.
//
// # Comparison and Hashing
//
// Equal and Hash are structural: identity and aliasing do not matter, and
// structurally equal trees hash equally.
//
// # Registry
//
// GetTree returns process-wide named roots, creating them on first use.
// Registered roots behave exactly like roots from New.
//
// # Thread Safety
//
// Nodes are not safe for concurrent use; callers serialize access to a tree.
// The registry is safe for concurrent use.
//
// # Related Packages
//
//   - github.com/signadot/treedict/tree/keypath - dotted path syntax
//   - github.com/signadot/treedict/parse - build trees from YAML and JSON
//   - github.com/signadot/treedict/encode - render trees
package tree
