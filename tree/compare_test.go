package tree

import (
	"errors"
	"testing"
)

func TestEqual(t *testing.T) {
	type build func(t *testing.T) *Node
	for _, tc := range []struct {
		name string
		a, b build
		want bool
	}{
		{
			name: "empty",
			a:    func(t *testing.T) *Node { return New("a") },
			b:    func(t *testing.T) *Node { return New("b") },
			want: true,
		},
		{
			name: "insertion order",
			a: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "x", 1)
				mustSet(t, p, "y", []string{"s"})
				return p
			},
			b: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "y", []string{"s"})
				mustSet(t, p, "x", 1)
				return p
			},
			want: true,
		},
		{
			name: "alias vs owned",
			a: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "a.v", 1)
				mustSet(t, p, "b", p.At("a"))
				return p
			},
			b: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "a.v", 1)
				mustSet(t, p, "b.v", 1)
				return p
			},
			want: true,
		},
		{
			name: "value differs",
			a: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "a.v", 1)
				return p
			},
			b: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "a.v", 2)
				return p
			},
		},
		{
			name: "value vs branch",
			a: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "a", 1)
				return p
			},
			b: func(t *testing.T) *Node {
				p := New("")
				mustBranch(t, p, "a")
				return p
			},
		},
		{
			name: "extra key",
			a: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "a", 1)
				return p
			},
			b: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "a", 1)
				mustSet(t, p, "b", 1)
				return p
			},
		},
		{
			name: "cycles",
			a: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "a.up", p)
				mustSet(t, p, "v", 1)
				return p
			},
			b: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "v", 1)
				mustSet(t, p, "a.up", p)
				return p
			},
			want: true,
		},
		{
			name: "cycle lengths",
			a: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "a.x", 1)
				mustSet(t, p, "a.s", p.At("a"))
				return p.At("a")
			},
			b: func(t *testing.T) *Node {
				q := New("")
				mustSet(t, q, "a.x", 1)
				mustSet(t, q, "c.x", 1)
				mustSet(t, q, "a.s", q.At("c"))
				mustSet(t, q, "c.s", q.At("a"))
				return q.At("a")
			},
			want: true,
		},
		{
			name: "cycle lengths with distinct content",
			a: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "a.x", 1)
				mustSet(t, p, "a.s", p.At("a"))
				return p.At("a")
			},
			b: func(t *testing.T) *Node {
				q := New("")
				mustSet(t, q, "a.x", 1)
				mustSet(t, q, "c.x", 2)
				mustSet(t, q, "a.s", q.At("c"))
				mustSet(t, q, "c.s", q.At("a"))
				return q.At("a")
			},
		},
		{
			name: "trees inside values",
			a: func(t *testing.T) *Node {
				x := New("one")
				mustSet(t, x, "k", 1)
				p := New("")
				mustSet(t, p, "v", []any{x, "s"})
				return p
			},
			b: func(t *testing.T) *Node {
				y := New("two")
				mustSet(t, y, "k", 1)
				q := New("")
				mustSet(t, q, "v", []any{y, "s"})
				return q
			},
			want: true,
		},
		{
			name: "differing trees inside values",
			a: func(t *testing.T) *Node {
				x := New("one")
				mustSet(t, x, "k", 1)
				p := New("")
				mustSet(t, p, "v", []any{x})
				return p
			},
			b: func(t *testing.T) *Node {
				q := New("")
				mustSet(t, q, "v", []any{New("one")})
				return q
			},
		},
		{
			name: "cycle vs value",
			a: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "a.up", p)
				return p
			},
			b: func(t *testing.T) *Node {
				p := New("")
				mustSet(t, p, "a.up", 1)
				return p
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a, b := tc.a(t), tc.b(t)
			if got := a.Equal(b); got != tc.want {
				t.Errorf("a.Equal(b) = %t, want %t", got, tc.want)
			}
			if got := b.Equal(a); got != tc.want {
				t.Errorf("b.Equal(a) = %t, want %t", got, tc.want)
			}
			if tc.want && mustHash(t, a) != mustHash(t, b) {
				t.Errorf("equal trees hash differently")
			}
		})
	}
}

func TestHashDiffers(t *testing.T) {
	p := New("")
	mustSet(t, p, "a.b", 1)
	q := New("")
	mustSet(t, q, "a", 1)
	r := New("")
	mustSet(t, r, "a.b", "1")
	hs := map[uint64]string{}
	for name, n := range map[string]*Node{"p": p, "q": q, "r": r, "empty": New("")} {
		h := mustHash(t, n)
		if other, ok := hs[h]; ok {
			t.Errorf("%s and %s hash equally", name, other)
		}
		hs[h] = name
	}
}

func TestHashTracksMutation(t *testing.T) {
	p := New("")
	mustSet(t, p, "a", 1)
	h1 := mustHash(t, p)
	mustSet(t, p, "a", 2)
	if mustHash(t, p) == h1 {
		t.Errorf("hash unchanged after mutation")
	}
	mustSet(t, p, "a", 1)
	if mustHash(t, p) != h1 {
		t.Errorf("hash not restored")
	}
}

func TestHashUnhashableValue(t *testing.T) {
	p := New("")
	mustSet(t, p, "f", func() {})
	if _, err := p.Hash(); err == nil {
		t.Errorf("hashing a func succeeded")
	}
}

func TestHashSharedSubtree(t *testing.T) {
	p := New("")
	mustSet(t, p, "a.x", 1)
	mustSet(t, p, "b", p.At("a"))
	mustSet(t, p, "c", p.At("a"))
	q := mustCopy(t, p)
	if mustHash(t, p) != mustHash(t, q) {
		t.Errorf("copy hash differs")
	}
}

func TestHashCopyWithBackReference(t *testing.T) {
	p := New("")
	mustSet(t, p, "b.v", 1)
	mustSet(t, p, "a.c.x", 2)
	mustSet(t, p, "a.c.back", p.At("b"))
	mustSet(t, p, "b.c", p.At("a.c"))
	// b.c stays external to the copy and leads back to the original b
	q := mustCopy(t, p.At("b"))
	if !q.Equal(p.At("b")) {
		t.Fatalf("copy differs:\n%s\nvs\n%s", q, p.At("b"))
	}
	if mustHash(t, q) != mustHash(t, p.At("b")) {
		t.Errorf("copy hash differs")
	}
}

func TestHashDangling(t *testing.T) {
	p := New("")
	_, err := p.At("x").Hash()
	if !errors.Is(err, ErrAttributeAccess) {
		t.Errorf("Hash of dangling = %v", err)
	}
}
