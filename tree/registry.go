package tree

import (
	"maps"
	"slices"
	"sync"

	"github.com/signadot/treedict/debug"
)

// Registry maps tree names to shared roots. Registered roots are ordinary
// roots: they name, copy and alias exactly like roots from New.
//
// A Registry is safe for concurrent use. The trees it hands out are not.
type Registry struct {
	mu    sync.Mutex
	trees map[string]*Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{trees: map[string]*Node{}}
}

var defaultRegistry = NewRegistry()

// Get returns the root registered under name, creating it on first use.
// An empty name is DefaultName.
func (r *Registry) Get(name string) *Node {
	if name == "" {
		name = DefaultName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.trees[name]; ok {
		return t
	}
	t := New(name)
	r.trees[name] = t
	if debug.Registry() {
		debug.Logf("registered tree %q\n", name)
	}
	return t
}

// Drop removes name from the registry, reporting whether it was present.
// The dropped root is unaffected; a later Get creates a fresh one.
func (r *Registry) Drop(name string) bool {
	if name == "" {
		name = DefaultName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.trees[name]
	delete(r.trees, name)
	if ok && debug.Registry() {
		debug.Logf("dropped tree %q\n", name)
	}
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.trees))
}

// GetTree returns the root registered under name in the process-wide
// registry, creating it on first use.
func GetTree(name string) *Node {
	return defaultRegistry.Get(name)
}

// DropTree removes name from the process-wide registry.
func DropTree(name string) bool {
	return defaultRegistry.Drop(name)
}

// RegisteredTrees returns the names in the process-wide registry.
func RegisteredTrees() []string {
	return defaultRegistry.Names()
}
