// Package parse builds trees from YAML and JSON documents.
//
// Each document must be a mapping (or empty). Nested mappings become owned
// branches, sequences and scalars become values. YAML anchors on mappings
// are preserved: an alias to an anchored mapping is stored as a tree alias
// of the anchored branch, so both paths reach the same node.
//
// # Usage
//
//	t, err := parse.Parse([]byte("a:\n  x: 1\n"), parse.ParseName("cfg"))
//
//	docs, err := parse.ParseAll(input, parse.ParseJSON())
//
// # Related Packages
//
//   - github.com/signadot/treedict/tree - the trees built here
//   - github.com/signadot/treedict/encode - the reverse direction
package parse
