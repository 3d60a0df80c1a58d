// Package keypath provides dotted key path parsing and printing.
//
// A key path names a position in a tree by the chain of branch names leading
// to it:
//
//	"a"        // child a of the node the path is applied to
//	"a.b.c"    // grandchild c, through a and b
//	"a.'x.y'"  // child "x.y" of a; segments may be quoted
//
// Segments containing dots, quotes, whitespace or control characters must be
// quoted, with either single or double quotes. Double-quoted segments use Go
// escape rules; single-quoted segments recognize only \' and \\.
//
// # Usage
//
//	kp, err := keypath.Parse("defs.'a.1'.v")
//	kp.Segments()      // ["defs", "a.1", "v"]
//	kp.String()        // "defs.'a.1'.v"
//	kp.Parent()        // defs.'a.1'
//	kp.Append("w")     // defs.'a.1'.v.w
//
// The empty string is the empty path and parses to nil.
//
// # Related Packages
//
//   - github.com/signadot/treedict/tree - the tree navigated by key paths
package keypath
