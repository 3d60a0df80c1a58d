// Package format names the document formats trees are read from and
// written to.
//
// # Usage
//
//	f, err := format.ParseFormat("j") // format.JSONFormat
//	name := f.String() + f.Suffix()  // "json.json"
//
// # Related Packages
//
//   - github.com/signadot/treedict/parse - build trees from documents
//   - github.com/signadot/treedict/encode - write trees as documents
package format
