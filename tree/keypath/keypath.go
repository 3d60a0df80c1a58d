package keypath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadPath is returned for key path strings which do not parse.
var ErrBadPath = errors.New("bad key path")

// KeyPath is a parsed dotted key path. Each element holds one segment and
// links to the rest of the path; a nil *KeyPath is the empty path.
type KeyPath struct {
	Field string
	Next  *KeyPath
}

// Parse parses a dotted key path.
//
// Examples:
//   - "" → nil
//   - "a" → a
//   - "a.b.c" → a → b → c
//   - "a.'b.c'" → a → "b.c"
//
// Empty segments ("a..b", ".a", "a.") and unterminated quotes are errors
// wrapping ErrBadPath.
func Parse(kp string) (*KeyPath, error) {
	if kp == "" {
		return nil, nil
	}
	var (
		head, tail *KeyPath
		rest       = kp
	)
	for {
		field, next, err := parseSegment(rest)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadPath, kp, err)
		}
		elt := &KeyPath{Field: field}
		if head == nil {
			head = elt
		} else {
			tail.Next = elt
		}
		tail = elt
		if next == "" {
			return head, nil
		}
		// next starts with the separator
		rest = next[1:]
		if rest == "" {
			return nil, fmt.Errorf("%w %q: trailing '.'", ErrBadPath, kp)
		}
	}
}

// MustParse is like Parse but panics on error.
func MustParse(kp string) *KeyPath {
	p, err := Parse(kp)
	if err != nil {
		panic(err)
	}
	return p
}

// parseSegment parses one segment at the start of frag and returns its
// unquoted value together with the remainder, which is either empty or
// starts with '.'.
func parseSegment(frag string) (string, string, error) {
	if frag == "" {
		return "", "", errors.New("empty segment")
	}
	switch frag[0] {
	case '.':
		return "", "", errors.New("empty segment")
	case '"', '\'':
		end, err := quotedEnd(frag)
		if err != nil {
			return "", "", err
		}
		field, err := Unquote(frag[:end])
		if err != nil {
			return "", "", err
		}
		rest := frag[end:]
		if rest != "" && rest[0] != '.' {
			return "", "", fmt.Errorf("unexpected %q after quoted segment", rest[0])
		}
		return field, rest, nil
	}
	i := strings.IndexByte(frag, '.')
	if i == -1 {
		i = len(frag)
	}
	field := frag[:i]
	if strings.ContainsAny(field, `"'`) {
		return "", "", fmt.Errorf("quote inside unquoted segment %q", field)
	}
	return field, frag[i:], nil
}

// quotedEnd returns the index just past the closing quote of the quoted
// segment starting at frag[0].
func quotedEnd(frag string) (int, error) {
	q := frag[0]
	esc := false
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case esc:
			esc = false
		case c == '\\':
			esc = true
		case c == q:
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unterminated quote in %q", frag)
}

// String returns the canonical dotted representation, quoting segments as
// needed.
func (p *KeyPath) String() string {
	if p == nil {
		return ""
	}
	b := &strings.Builder{}
	for x := p; x != nil; x = x.Next {
		if x != p {
			b.WriteByte('.')
		}
		b.WriteString(QuoteField(x.Field))
	}
	return b.String()
}

// Segments returns the unquoted segments of the path from first to last.
func (p *KeyPath) Segments() []string {
	var res []string
	for x := p; x != nil; x = x.Next {
		res = append(res, x.Field)
	}
	return res
}

// Len returns the number of segments.
func (p *KeyPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Last returns the final segment, or "" for the empty path.
func (p *KeyPath) Last() string {
	if p == nil {
		return ""
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x.Field
}

// Parent returns a copy of the path without its final segment.
func (p *KeyPath) Parent() *KeyPath {
	if p == nil || p.Next == nil {
		return nil
	}
	segs := p.Segments()
	return FromSegments(segs[:len(segs)-1]...)
}

// Append returns a copy of the path extended by field.
func (p *KeyPath) Append(field string) *KeyPath {
	return FromSegments(append(p.Segments(), field)...)
}

// FromSegments builds a path from unquoted segments.
func FromSegments(segs ...string) *KeyPath {
	var head *KeyPath
	for i := len(segs) - 1; i >= 0; i-- {
		head = &KeyPath{Field: segs[i], Next: head}
	}
	return head
}

// Compare orders paths segment by segment; a proper prefix sorts first.
func (p *KeyPath) Compare(o *KeyPath) int {
	a, b := p, o
	for a != nil && b != nil {
		if c := strings.Compare(a.Field, b.Field); c != 0 {
			return c
		}
		a, b = a.Next, b.Next
	}
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	default:
		return 1
	}
}

// Split splits a key path into its first segment and the remaining path,
// both in canonical string form.
// Panics if the path cannot be parsed.
//
// Examples:
//   - Split("a.b.c") → ("a", "b.c")
//   - Split("a") → ("a", "")
//   - Split("") → ("", "")
func Split(kp string) (first string, rest string) {
	p := MustParse(kp)
	if p == nil {
		return "", ""
	}
	return QuoteField(p.Field), p.Next.String()
}

// RSplit splits a key path into its parent path and its last segment.
// Panics if the path cannot be parsed.
//
// Examples:
//   - RSplit("a.b.c") → ("a.b", "c")
//   - RSplit("a") → ("", "a")
func RSplit(kp string) (parent string, last string) {
	p := MustParse(kp)
	if p == nil {
		return "", ""
	}
	return p.Parent().String(), QuoteField(p.Last())
}

// Join joins two key path strings with a separator, tolerating empty sides.
func Join(prefix, suffix string) string {
	switch {
	case prefix == "":
		return suffix
	case suffix == "":
		return prefix
	}
	return prefix + "." + suffix
}
