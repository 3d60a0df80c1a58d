// Package encode writes trees as YAML, JSON or line reports.
//
// # Usage
//
//	err := encode.Encode(t, os.Stdout)                                  // yaml
//	err := encode.Encode(t, w, encode.EncodeFormat(format.JSONFormat))  // json
//	err := encode.Encode(t, w,
//	    encode.EncodeFormat(format.ReportFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// Aliases are written out as the content they reach. An alias which would
// revisit a node being written (an alias cycle) is written as a link string
// "-> tree.path" instead; EncodeLinks(true) writes every alias that way.
//
// # Related Packages
//
//   - github.com/signadot/treedict/tree - the trees written here
//   - github.com/signadot/treedict/parse - the reverse direction
package encode
