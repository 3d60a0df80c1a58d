package tree

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func mustSet(t *testing.T, n *Node, path string, v any) {
	t.Helper()
	if err := n.Set(path, v); err != nil {
		t.Fatalf("Set(%q): %v", path, err)
	}
}

func mustBranch(t *testing.T, n *Node, path string) *Node {
	t.Helper()
	b, err := n.MakeBranch(path)
	if err != nil {
		t.Fatalf("MakeBranch(%q): %v", path, err)
	}
	return b
}

func mustCopy(t *testing.T, n *Node) *Node {
	t.Helper()
	c, err := n.Copy()
	if err != nil {
		t.Fatalf("Copy(%s): %v", n.BranchName(true, true), err)
	}
	return c
}

func mustHash(t *testing.T, n *Node) uint64 {
	t.Helper()
	h, err := n.Hash()
	if err != nil {
		t.Fatalf("Hash(%s): %v", n.BranchName(true, true), err)
	}
	return h
}

func mustGet(t *testing.T, n *Node, path string) any {
	t.Helper()
	v, err := n.Get(path)
	if err != nil {
		t.Fatalf("Get(%q): %v", path, err)
	}
	return v
}

// randomSelfLinkedTree builds a tree of size entries mixing branches,
// values and aliases to earlier branches (including ancestors, so alias
// cycles occur).
func randomSelfLinkedTree(t *testing.T, seed uint64, size int) *Node {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, seed^0x5eed))
	p := New("")
	branches := []*Node{p}
	for i := range size {
		parent := branches[r.IntN(len(branches))]
		name := fmt.Sprintf("n%d", i)
		switch r.IntN(4) {
		case 0, 1:
			branches = append(branches, mustBranch(t, parent, name))
		case 2:
			if i%2 == 0 {
				mustSet(t, parent, name, i)
			} else {
				mustSet(t, parent, name, []int{i, i + 1})
			}
		case 3:
			mustSet(t, parent, name, branches[r.IntN(len(branches))])
		}
	}
	return p
}
