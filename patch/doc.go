// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to trees.
//
// A patch document may be written in JSON or YAML. A sequence is a JSON
// Patch, a mapping is a Merge Patch.
//
//	q, err := patch.Apply(p, []byte(`[{"op": "add", "path": "/a/b", "value": 1}]`))
//	q, err := patch.Apply(p, []byte("a:\n  b: null\n"))
//
// Patching works on the JSON form of a tree, so the result is a new tree
// without aliases; see encode for how aliases are written.
package patch
