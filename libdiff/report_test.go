package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/treedict/tree"
)

func TestLines(t *testing.T) {
	from := "a = 1\nb = 2\nc = 3\n"
	to := "a = 1\nb = 20\nc = 3\nd = 4\n"
	got := Lines(from, to)
	want := []Line{
		{Equal, "a = 1"},
		{Delete, "b = 2"},
		{Insert, "b = 20"},
		{Equal, "c = 3"},
		{Insert, "d = 4"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Errorf("Changed = false")
	}
	if got := Format(got, false); got != "- b = 2\n+ b = 20\n+ d = 4\n" {
		t.Errorf("Format = %q", got)
	}
}

func TestReverse(t *testing.T) {
	lines := Lines("x\n", "y\n")
	rev := Reverse(lines)
	want := Lines("y\n", "x\n")
	if diff := cmp.Diff(want, rev); diff != "" {
		t.Errorf("reverse (-want +got):\n%s", diff)
	}
}

func TestTrees(t *testing.T) {
	a, b := tree.New("a"), tree.New("b")
	for _, n := range []*tree.Node{a, b} {
		if err := n.Set("x.y", 1); err != nil {
			t.Fatal(err)
		}
	}
	if lines := Trees(a, b); Changed(lines) {
		t.Errorf("equal trees differ:\n%s", Format(lines, true))
	}
	if err := b.Set("x.z", "s"); err != nil {
		t.Fatal(err)
	}
	got := Format(Trees(a, b), true)
	want := "  x.y = 1\n+ x.z = \"s\"\n"
	if got != want {
		t.Errorf("diff = %q, want %q", got, want)
	}
}
