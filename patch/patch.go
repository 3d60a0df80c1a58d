package patch

import (
	"bytes"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/signadot/treedict/debug"
	"github.com/signadot/treedict/encode"
	"github.com/signadot/treedict/format"
	"github.com/signadot/treedict/parse"
	"github.com/signadot/treedict/tree"
)

var ErrPatch = errors.New("patch error")

type Kind int

const (
	JSONPatch Kind = iota
	MergePatch
)

func (k Kind) String() string {
	switch k {
	case JSONPatch:
		return "json-patch"
	case MergePatch:
		return "merge-patch"
	}
	return "unknown"
}

// Detect returns the kind of the patch document d along with its JSON form.
func Detect(d []byte) (Kind, []byte, error) {
	j, err := yaml.YAMLToJSON(d)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	j = bytes.TrimSpace(j)
	if len(j) == 0 {
		return 0, nil, fmt.Errorf("%w: empty patch", ErrPatch)
	}
	switch j[0] {
	case '[':
		return JSONPatch, j, nil
	case '{':
		return MergePatch, j, nil
	}
	return 0, nil, fmt.Errorf("%w: patch must be a sequence or a mapping", ErrPatch)
}

// Apply returns the result of applying the patch document d to n as a new
// root named like n. n itself is unchanged.
func Apply(n *tree.Node, d []byte) (*tree.Node, error) {
	kind, p, err := Detect(d)
	if err != nil {
		return nil, err
	}
	src, err := toJSON(n)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("applying %s to %s\n", kind, n.BranchName(true, true))
	}
	var out []byte
	switch kind {
	case JSONPatch:
		ops, err := jsonpatch.DecodePatch(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		out, err = ops.Apply(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	case MergePatch:
		out, err = jsonpatch.MergePatch(src, p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	}
	res, err := parse.Parse(out, parse.ParseJSON(), parse.ParseName(n.Name()))
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	return res, nil
}

// Create returns a Merge Patch turning from into to.
func Create(from, to *tree.Node) ([]byte, error) {
	a, err := toJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := toJSON(to)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

func toJSON(n *tree.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(n, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
