package parse

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/signadot/treedict/tree"
	"github.com/signadot/treedict/tree/keypath"
)

// Parse builds a tree from the single document in d. An input holding
// several documents is an error; use ParseAll for streams.
func Parse(d []byte, opts ...ParseOption) (*tree.Node, error) {
	res, err := ParseAll(d, opts...)
	if err != nil {
		return nil, err
	}
	switch len(res) {
	case 0:
		return newRoot(opts...), nil
	case 1:
		return res[0], nil
	}
	return nil, fmt.Errorf("%w: expected 1 document, got %d", ErrParse, len(res))
}

// ParseAll builds one tree per document in d. With ParseInto, every
// document is loaded into the same node, later documents overriding
// earlier ones.
func ParseAll(d []byte, opts ...ParseOption) ([]*tree.Node, error) {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if !o.format.IsInput() {
		return nil, fmt.Errorf("%w: %s", ErrFormat, o.format)
	}
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	var res []*tree.Node
	for i, doc := range f.Docs {
		root := o.into
		if root == nil {
			root = tree.New(o.name)
		}
		b := &builder{anchors: map[string]*anchor{}}
		if err := b.document(root, doc.Body); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, root)
	}
	return res, nil
}

func newRoot(opts ...ParseOption) *tree.Node {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.into != nil {
		return o.into
	}
	return tree.New(o.name)
}

type anchor struct {
	// node is set for anchored mappings loaded as branches.
	node *tree.Node
	ast  ast.Node
}

type builder struct {
	anchors map[string]*anchor
}

func (b *builder) document(root *tree.Node, body ast.Node) error {
	switch x := body.(type) {
	case nil, *ast.NullNode, *ast.CommentGroupNode:
		return nil
	case *ast.TagNode:
		return b.document(root, x.Value)
	case *ast.AnchorNode:
		b.anchors[anchorName(x.Name)] = &anchor{node: root, ast: x.Value}
		return b.document(root, x.Value)
	case *ast.MappingNode, *ast.MappingValueNode:
		return b.mapping(root, x)
	}
	return fmt.Errorf("%w: got %s", ErrNotMapping, body.Type())
}

func (b *builder) mapping(n *tree.Node, m ast.Node) error {
	switch x := m.(type) {
	case *ast.MappingValueNode:
		return b.entry(n, x)
	case *ast.MappingNode:
		for _, mv := range x.Values {
			if err := b.entry(n, mv); err != nil {
				return err
			}
		}
		return nil
	case *ast.TagNode:
		return b.mapping(n, x.Value)
	}
	return fmt.Errorf("%w: got %s", ErrNotMapping, m.Type())
}

func (b *builder) entry(n *tree.Node, mv *ast.MappingValueNode) error {
	if _, ok := mv.Key.(*ast.MergeKeyNode); ok {
		return b.merge(n, mv.Value)
	}
	var k any
	if err := yaml.NodeToValue(mv.Key, &k); err != nil {
		return fmt.Errorf("%w: key %s: %w", ErrParse, mv.Key, err)
	}
	field := keypath.QuoteField(fmt.Sprint(k))
	return b.value(n, field, mv.Value)
}

func (b *builder) value(n *tree.Node, field string, v ast.Node) error {
	switch x := v.(type) {
	case *ast.AnchorNode:
		a := &anchor{ast: x.Value}
		b.anchors[anchorName(x.Name)] = a
		if isMapping(x.Value) {
			br, err := n.MakeBranch(field)
			if err != nil {
				return err
			}
			a.node = br
			return b.mapping(br, x.Value)
		}
		return b.value(n, field, x.Value)
	case *ast.AliasNode:
		a, err := b.alias(x)
		if err != nil {
			return err
		}
		if a.node != nil {
			return n.Set(field, a.node)
		}
		val, err := b.decode(a.ast)
		if err != nil {
			return err
		}
		return n.Set(field, val)
	case *ast.MappingNode, *ast.MappingValueNode:
		br, err := n.MakeBranch(field)
		if err != nil {
			return err
		}
		return b.mapping(br, x)
	case *ast.TagNode:
		if isMapping(x.Value) {
			return b.value(n, field, x.Value)
		}
	}
	val, err := b.decode(v)
	if err != nil {
		return err
	}
	return n.Set(field, val)
}

// merge applies a "<<" key: entries of the merged mappings are added to n
// unless n already holds them.
func (b *builder) merge(n *tree.Node, v ast.Node) error {
	switch x := v.(type) {
	case *ast.SequenceNode:
		for _, elt := range x.Values {
			if err := b.merge(n, elt); err != nil {
				return err
			}
		}
		return nil
	case *ast.AliasNode:
		a, err := b.alias(x)
		if err != nil {
			return err
		}
		if a.node == nil {
			return fmt.Errorf("%w: merge of non-mapping anchor %q", ErrNotMapping, anchorName(x.Value))
		}
		for k, e := range a.node.All(tree.BranchesAll, false) {
			if n.Has(k) {
				continue
			}
			if err := n.Set(k, e); err != nil {
				return err
			}
		}
		return nil
	case *ast.MappingValueNode:
		return b.mergeEntries(n, []*ast.MappingValueNode{x})
	case *ast.MappingNode:
		return b.mergeEntries(n, x.Values)
	}
	return fmt.Errorf("%w: merge value is %s", ErrNotMapping, v.Type())
}

func (b *builder) mergeEntries(n *tree.Node, mvs []*ast.MappingValueNode) error {
	for _, mv := range mvs {
		var k any
		if err := yaml.NodeToValue(mv.Key, &k); err != nil {
			return fmt.Errorf("%w: %w", ErrParse, err)
		}
		if n.Has(keypath.QuoteField(fmt.Sprint(k))) {
			continue
		}
		if err := b.entry(n, mv); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) alias(x *ast.AliasNode) (*anchor, error) {
	name := anchorName(x.Value)
	a, ok := b.anchors[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAnchor, name)
	}
	return a, nil
}

// decode converts a non-branch node into a payload value. Mappings inside
// sequences become yaml.MapSlice values, which keep their key order.
func (b *builder) decode(v ast.Node) (any, error) {
	switch x := v.(type) {
	case *ast.AnchorNode:
		b.anchors[anchorName(x.Name)] = &anchor{ast: x.Value}
		return b.decode(x.Value)
	case *ast.AliasNode:
		a, err := b.alias(x)
		if err != nil {
			return nil, err
		}
		return b.decode(a.ast)
	case *ast.SequenceNode:
		res := make([]any, 0, len(x.Values))
		for _, elt := range x.Values {
			d, err := b.decode(elt)
			if err != nil {
				return nil, err
			}
			res = append(res, d)
		}
		return res, nil
	case *ast.MappingValueNode:
		return b.decodeMapping([]*ast.MappingValueNode{x})
	case *ast.MappingNode:
		return b.decodeMapping(x.Values)
	case *ast.TagNode:
		if isCollection(x.Value) {
			return b.decode(x.Value)
		}
	}
	var res any
	if err := yaml.NodeToValue(v, &res, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return normalize(res), nil
}

func (b *builder) decodeMapping(mvs []*ast.MappingValueNode) (yaml.MapSlice, error) {
	res := make(yaml.MapSlice, 0, len(mvs))
	for _, mv := range mvs {
		var k any
		if err := yaml.NodeToValue(mv.Key, &k); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		v, err := b.decode(mv.Value)
		if err != nil {
			return nil, err
		}
		res = append(res, yaml.MapItem{Key: k, Value: v})
	}
	return res, nil
}

func anchorName(n ast.Node) string {
	if n == nil {
		return ""
	}
	return n.GetToken().Value
}

func isMapping(n ast.Node) bool {
	switch x := n.(type) {
	case *ast.MappingNode, *ast.MappingValueNode:
		return true
	case *ast.TagNode:
		return isMapping(x.Value)
	}
	return false
}

func isCollection(n ast.Node) bool {
	if _, ok := n.(*ast.SequenceNode); ok {
		return true
	}
	return isMapping(n)
}

// normalize maps decoded integers to int64 where they fit, so documents
// compare and hash alike whatever sign their numbers carry.
func normalize(v any) any {
	switch x := v.(type) {
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x)
		}
	case int:
		return int64(x)
	case []any:
		for i := range x {
			x[i] = normalize(x[i])
		}
	case yaml.MapSlice:
		for i := range x {
			x[i].Value = normalize(x[i].Value)
		}
	}
	return v
}
