package tree

import "strings"

// ReportLine is one line of a tree report.
type ReportLine struct {
	Key  string
	Kind EntryKind
	// Text is the formatted value, the full name of an alias target, or
	// "{}" for an empty branch.
	Text string
}

// Sep returns the separator printed between Key and Text.
func (l ReportLine) Sep() string {
	if l.Kind == AliasEntry {
		return "->"
	}
	return "="
}

func (l ReportLine) String() string {
	return l.Key + " " + l.Sep() + " " + l.Text
}

// ReportLines lists the content of n, one line per value, alias and empty
// branch, in the order of n.All(BranchesAll, true).
func (n *Node) ReportLines() []ReportLine {
	var res []ReportLine
	for key, e := range n.All(BranchesAll, true) {
		line := ReportLine{Key: key, Kind: e.Kind}
		switch e.Kind {
		case ValueEntry:
			line.Text = FormatValue(e.Value)
		case AliasEntry:
			line.Text = e.Node.BranchName(true, true)
		case BranchEntry:
			if e.Node.Len() > 0 {
				continue
			}
			line.Text = "{}"
		}
		res = append(res, line)
	}
	return res
}

// MakeReport renders the content of n as text, one "key = value" or
// "key -> target" line per entry.
func (n *Node) MakeReport() string {
	b := &strings.Builder{}
	for _, l := range n.ReportLines() {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}
