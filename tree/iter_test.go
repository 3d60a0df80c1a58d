package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func iterTree(t *testing.T) *Node {
	p := New("t")
	mustSet(t, p, "a.x", 1)
	mustSet(t, p, "a.b.y", "s")
	mustBranch(t, p, "e")
	mustSet(t, p, "l", p.At("a.b"))
	mustSet(t, p, "z", nil)
	return p
}

func TestAll(t *testing.T) {
	p := iterTree(t)
	for _, tc := range []struct {
		name      string
		mode      BranchMode
		recursive bool
		want      []string
	}{
		{"all flat", BranchesAll, false, []string{"a", "e", "l", "z"}},
		{"all recursive", BranchesAll, true, []string{"a", "a.x", "a.b", "a.b.y", "e", "l", "z"}},
		{"only flat", BranchesOnly, false, []string{"a", "e", "l"}},
		{"only recursive", BranchesOnly, true, []string{"a", "a.b", "e", "l"}},
		{"none flat", BranchesNone, false, []string{"z"}},
		{"none recursive", BranchesNone, true, []string{"a.x", "a.b.y", "z"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for k := range p.All(tc.mode, tc.recursive) {
				got = append(got, k)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("keys (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAllKinds(t *testing.T) {
	p := iterTree(t)
	got := map[string]EntryKind{}
	for k, e := range p.All(BranchesAll, false) {
		got[k] = e.Kind
	}
	want := map[string]EntryKind{
		"a": BranchEntry,
		"e": BranchEntry,
		"l": AliasEntry,
		"z": ValueEntry,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("kinds (-want +got):\n%s", diff)
	}
}

func TestAllEarlyStop(t *testing.T) {
	p := iterTree(t)
	n := 0
	for range p.All(BranchesAll, true) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("n = %d", n)
	}
}

func TestAllAliasCycleTerminates(t *testing.T) {
	p := New("")
	mustSet(t, p, "a.up", p)
	var got []string
	for k := range p.All(BranchesAll, true) {
		got = append(got, k)
	}
	if diff := cmp.Diff([]string{"a", "a.up"}, got); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestAllMutationDuringIteration(t *testing.T) {
	p := New("")
	mustSet(t, p, "a", 1)
	mustSet(t, p, "b", 2)
	var got []string
	for k := range p.All(BranchesAll, false) {
		got = append(got, k)
		if k == "a" {
			if _, err := p.Detach("b"); err != nil {
				t.Fatal(err)
			}
			mustSet(t, p, "c", 3)
		}
	}
	if diff := cmp.Diff([]string{"a"}, got); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestAllDangling(t *testing.T) {
	p := New("")
	for k := range p.At("x").All(BranchesAll, true) {
		t.Errorf("dangling node yielded %q", k)
	}
}

func TestMakeReport(t *testing.T) {
	p := iterTree(t)
	want := `a.x = 1
a.b.y = "s"
e = {}
l -> t.a.b
z = null
`
	if diff := cmp.Diff(want, p.MakeReport()); diff != "" {
		t.Errorf("report (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, p.String()); diff != "" {
		t.Errorf("String (-want +got):\n%s", diff)
	}
	if got := New("").String(); got != "{}" {
		t.Errorf("empty String = %q", got)
	}
}

func TestReportLines(t *testing.T) {
	p := New("")
	other := New("o")
	mustSet(t, p, "v", other)
	mustSet(t, p, "'a.b'", []int{1, 2})
	got := p.ReportLines()
	want := []ReportLine{
		{Key: "v", Kind: AliasEntry, Text: "o"},
		{Key: `"a.b"`, Kind: ValueEntry, Text: "[1 2]"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
}

func TestEntryKindString(t *testing.T) {
	for k, want := range map[EntryKind]string{
		ValueEntry:    "value",
		BranchEntry:   "branch",
		AliasEntry:    "alias",
		EntryKind(42): "unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
