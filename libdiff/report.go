package libdiff

import (
	"strings"

	"github.com/signadot/treedict/tree"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Prefix returns the marker written before a line with op.
func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+ "
	case Delete:
		return "- "
	}
	return "  "
}

// Line is one line of a diff.
type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return l.Op.Prefix() + l.Text
}

// Lines diffs two texts line by line.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// Trees diffs the reports of from and to.
func Trees(from, to *tree.Node) []Line {
	return Lines(from.MakeReport(), to.MakeReport())
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Reverse returns the diff from "to" back to "from".
func Reverse(lines []Line) []Line {
	res := make([]Line, len(lines))
	for i, l := range lines {
		switch l.Op {
		case Insert:
			l.Op = Delete
		case Delete:
			l.Op = Insert
		}
		res[i] = l
	}
	return res
}

// Format renders lines one per row. Unchanged lines are omitted unless
// context is set.
func Format(lines []Line, context bool) string {
	b := &strings.Builder{}
	for _, l := range lines {
		if l.Op == Equal && !context {
			continue
		}
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}
