package encode

import (
	"fmt"
	"io"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/signadot/treedict/format"
	"github.com/signadot/treedict/tree"
	"github.com/signadot/treedict/tree/keypath"
)

type EncState struct {
	format format.Format
	indent int
	links  bool

	Color func(ValueType, ColorAttr, string) string
}

func (es *EncState) color(t ValueType, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// Encode writes n to w. Colors apply to reports only.
func Encode(n *tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if n.IsDangling() {
		// a terminal lookup reports the missing segment
		_, err := n.Lookup("")
		return err
	}
	if es.format.IsReport() {
		return encodeReport(n, w, es)
	}
	ms := ToMapSlice(n, es.links)
	yopts := []yaml.EncodeOption{yaml.Indent(es.indent)}
	if es.format.IsJSON() {
		yopts = append(yopts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(ms, yopts...)
	if err != nil {
		return fmt.Errorf("encoding %s as %s: %w", n.BranchName(true, true), es.format, err)
	}
	_, err = w.Write(d)
	return err
}

// Link returns the string written in place of an alias to n.
func Link(n *tree.Node) string {
	return "-> " + n.BranchName(true, true)
}

// ToMapSlice converts n into ordered YAML content. Aliases are expanded,
// except when links is set or the alias closes a cycle, in which case the
// Link string of the target is used.
func ToMapSlice(n *tree.Node, links bool) yaml.MapSlice {
	x := &exporter{links: links}
	return x.node(n)
}

type exporter struct {
	links bool
	stack []*tree.Node
}

func (x *exporter) node(n *tree.Node) yaml.MapSlice {
	x.stack = append(x.stack, n)
	defer func() { x.stack = x.stack[:len(x.stack)-1] }()

	res := yaml.MapSlice{}
	for _, k := range n.Keys() {
		e, err := n.Lookup(keypath.QuoteField(k))
		if err != nil {
			continue
		}
		var v any
		switch e.Kind {
		case tree.ValueEntry:
			v = x.value(e.Value)
		case tree.BranchEntry:
			v = x.node(e.Node)
		case tree.AliasEntry:
			v = x.ref(e.Node)
		}
		res = append(res, yaml.MapItem{Key: k, Value: v})
	}
	return res
}

func (x *exporter) ref(n *tree.Node) any {
	if x.links || slices.Contains(x.stack, n) {
		return Link(n)
	}
	return x.node(n)
}

// value converts trees nested in payload values.
func (x *exporter) value(v any) any {
	switch y := v.(type) {
	case *tree.Node:
		if y == nil || y.IsDangling() {
			return nil
		}
		return x.ref(y)
	case []any:
		res := make([]any, len(y))
		for i := range y {
			res[i] = x.value(y[i])
		}
		return res
	case yaml.MapSlice:
		res := make(yaml.MapSlice, len(y))
		for i := range y {
			res[i] = yaml.MapItem{Key: y[i].Key, Value: x.value(y[i].Value)}
		}
		return res
	}
	return v
}

func encodeReport(n *tree.Node, w io.Writer, es *EncState) error {
	lines := n.ReportLines()
	if len(lines) == 0 {
		_, err := io.WriteString(w, es.color(ObjectType, ValueColor, "{}")+"\n")
		return err
	}
	for _, l := range lines {
		t := ObjectType
		switch l.Kind {
		case tree.AliasEntry:
			t = AliasType
		case tree.ValueEntry:
			v, err := n.Get(l.Key)
			if err != nil {
				return err
			}
			t = TypeOf(v)
		}
		line := es.color(t, FieldColor, l.Key) + " " +
			es.color(t, SepColor, l.Sep()) + " " +
			es.color(t, ValueColor, l.Text) + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
