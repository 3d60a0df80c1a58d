package patch

import (
	"errors"
	"testing"

	"github.com/signadot/treedict/parse"
	"github.com/signadot/treedict/tree"
)

func mustParse(t *testing.T, in string) *tree.Node {
	t.Helper()
	n, err := parse.Parse([]byte(in), parse.ParseName("p"))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestApply(t *testing.T) {
	for _, tc := range []struct {
		name  string
		patch string
		want  string
	}{
		{
			name:  "json patch",
			patch: `[{"op": "add", "path": "/a/z", "value": 3}, {"op": "remove", "path": "/b"}]`,
			want:  "a: {x: 1, y: s, z: 3}\n",
		},
		{
			name:  "yaml json patch",
			patch: "- op: replace\n  path: /a/x\n  value: 2\n",
			want:  "a: {x: 2, y: s}\nb: [1, 2]\n",
		},
		{
			name:  "merge patch",
			patch: `{"a": {"y": null}, "c": true}`,
			want:  "a: {x: 1}\nb: [1, 2]\nc: true\n",
		},
		{
			name:  "yaml merge patch",
			patch: "b:\n  k: v\n",
			want:  "a: {x: 1, y: s}\nb: {k: v}\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := mustParse(t, "a: {x: 1, y: s}\nb: [1, 2]\n")
			before := p.MakeReport()
			got, err := Apply(p, []byte(tc.patch))
			if err != nil {
				t.Fatal(err)
			}
			want := mustParse(t, tc.want)
			if !got.Equal(want) {
				t.Errorf("got\n%s\nwant\n%s", got, want)
			}
			if got.Name() != "p" {
				t.Errorf("name = %q", got.Name())
			}
			if p.MakeReport() != before {
				t.Errorf("source changed")
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	p := mustParse(t, "a: 1\n")
	for _, in := range []string{
		"",
		"3",
		`[{"op": "remove", "path": "/nope"}]`,
		`[{"op": "bogus"}]`,
	} {
		if _, err := Apply(p, []byte(in)); !errors.Is(err, ErrPatch) {
			t.Errorf("Apply(%q) = %v", in, err)
		}
	}
}

func TestCreate(t *testing.T) {
	a := mustParse(t, "a: {x: 1, y: 2}\nb: s\n")
	b := mustParse(t, "a: {x: 1, y: 3}\nc: t\n")
	d, err := Create(a, b)
	if err != nil {
		t.Fatal(err)
	}
	kind, _, err := Detect(d)
	if err != nil || kind != MergePatch {
		t.Fatalf("Detect = %v, %v", kind, err)
	}
	got, err := Apply(a, d)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(b) {
		t.Errorf("created patch gives\n%s\nwant\n%s", got, b)
	}
}
