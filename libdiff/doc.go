// Package libdiff computes line diffs between tree reports.
//
// # Usage
//
//	lines := libdiff.Trees(a, b)
//	if libdiff.Changed(lines) {
//	    fmt.Print(libdiff.Format(lines, false))
//	}
//
// Reports are compared as text, so the diff shows aliases as aliases even
// when the trees are structurally equal.
//
// # Related Packages
//
//   - github.com/signadot/treedict/tree - reports and structural equality
package libdiff
