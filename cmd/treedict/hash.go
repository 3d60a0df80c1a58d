package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := loadArgs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		h, err := doc.Hash()
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%016x %s\n", h, doc.TreeName())
	}
	return nil
}
