package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/signadot/treedict/parse"
	"github.com/signadot/treedict/tree"

	"github.com/scott-cotton/cli"
)

// loadArgs loads every document of the named files, or of the command
// input when there are none.
func loadArgs(cfg *MainConfig, cc *cli.Context, files []string) ([]*tree.Node, error) {
	if len(files) == 0 {
		return loadReader(cfg, cc.In, "-")
	}
	var res []*tree.Node
	for _, file := range files {
		docs, err := loadFile(cfg, cc, file)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			// registered roots come back once per file
			if !slices.Contains(res, doc) {
				res = append(res, doc)
			}
		}
	}
	return res, nil
}

// loadOne loads a file which must hold exactly one document.
func loadOne(cfg *MainConfig, cc *cli.Context, file string) (*tree.Node, error) {
	docs, err := loadFile(cfg, cc, file)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return tree.New(cfg.Name), nil
	case 1:
		return docs[0], nil
	}
	return nil, fmt.Errorf("%s: expected 1 document, got %d", file, len(docs))
}

func loadFile(cfg *MainConfig, cc *cli.Context, file string) ([]*tree.Node, error) {
	if file == "-" {
		return loadReader(cfg, cc.In, file)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	docs, err := loadReader(cfg, f, file)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	return docs, nil
}

func loadReader(cfg *MainConfig, r io.Reader, file string) ([]*tree.Node, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	opts := cfg.parseOpts(file)
	if cfg.Registry {
		opts = append(opts, parse.ParseInto(tree.GetTree(cfg.Name)))
	}
	docs, err := parse.ParseAll(in, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Registry && len(docs) > 1 {
		// every document was loaded into the same registered root
		docs = docs[:1]
	}
	if cfg.Verbose {
		for i, doc := range docs {
			theLog.Info("loaded", "file", file, "doc", i, "tree", doc.TreeName(), "keys", doc.Len())
		}
	}
	return docs, nil
}

func writeSep(w io.Writer, i, n int) error {
	if i == n-1 {
		return nil
	}
	_, err := io.WriteString(w, "---\n")
	return err
}
