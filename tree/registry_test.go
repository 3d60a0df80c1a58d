package tree

import (
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	a := r.Get("a")
	if r.Get("a") != a {
		t.Errorf("second Get returned a different root")
	}
	if a.Name() != "a" || !a.IsRoot() {
		t.Errorf("registered root %q", a.Name())
	}
	if r.Get("") != r.Get(DefaultName) {
		t.Errorf("empty name is not the default")
	}
	if diff := cmp.Diff([]string{"a", DefaultName}, r.Names()); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
}

func TestRegistryDrop(t *testing.T) {
	r := NewRegistry()
	a := r.Get("a")
	mustSet(t, a, "x", 1)
	if !r.Drop("a") {
		t.Errorf("Drop reported absent")
	}
	if r.Drop("a") {
		t.Errorf("second Drop reported present")
	}
	if got := mustGet(t, a, "x"); got != 1 {
		t.Errorf("dropped root changed")
	}
	if b := r.Get("a"); b == a || b.Len() != 0 {
		t.Errorf("Get after Drop returned the old root")
	}
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	const n = 16
	roots := make([]*Node, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			roots[i] = r.Get("shared")
		}()
	}
	wg.Wait()
	for i, x := range roots {
		if x != roots[0] {
			t.Errorf("goroutine %d got a different root", i)
		}
	}
}

func TestGetTree(t *testing.T) {
	p := GetTree("registry_test_root")
	defer DropTree("registry_test_root")
	if GetTree("registry_test_root") != p {
		t.Errorf("GetTree not idempotent")
	}
	if !slices.Contains(RegisteredTrees(), "registry_test_root") {
		t.Errorf("RegisteredTrees = %v", RegisteredTrees())
	}
	mustSet(t, p, "a.b", 1)
	if got := p.At("a").BranchName(true, true); got != "registry_test_root.a" {
		t.Errorf("BranchName = %q", got)
	}
}
