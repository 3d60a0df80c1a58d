package main

import (
	"fmt"

	"github.com/signadot/treedict/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := loadArgs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	w := cc.Out
	opts := cfg.encOpts(w)
	for i, doc := range docs {
		if err := encode.Encode(doc, w, opts...); err != nil {
			return fmt.Errorf("error encoding document %d: %w", i, err)
		}
		if err := writeSep(w, i, len(docs)); err != nil {
			return err
		}
	}
	return nil
}
