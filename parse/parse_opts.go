package parse

import (
	"github.com/signadot/treedict/format"
	"github.com/signadot/treedict/tree"
)

type parseOpts struct {
	format format.Format
	name   string
	into   *tree.Node
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseName names the roots created for parsed documents.
func ParseName(name string) ParseOption {
	return func(o *parseOpts) { o.name = name }
}

// ParseInto loads the document into n rather than a fresh root. Existing
// content of n is kept unless the document overwrites it.
func ParseInto(n *tree.Node) ParseOption {
	return func(o *parseOpts) { o.into = n }
}
