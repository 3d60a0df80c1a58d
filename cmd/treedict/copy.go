package main

import (
	"fmt"

	"github.com/signadot/treedict/encode"

	"github.com/scott-cotton/cli"
)

func copyCmd(cfg *CopyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Copy.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: copy requires a key path", cli.ErrUsage)
	}
	path := args[0]
	docs, err := loadArgs(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	w := cc.Out
	opts := cfg.encOpts(w)
	for i, doc := range docs {
		src, err := doc.Branch(path)
		if err != nil {
			return err
		}
		if cfg.Freeze {
			if err := src.Freeze(); err != nil {
				return err
			}
		}
		dst, err := src.Copy()
		if err != nil {
			return err
		}
		theLog.Info("copied", "from", src.BranchName(true, true), "to", dst.BranchName(true, true), "frozen", dst.IsFrozen())
		if err := encode.Encode(dst, w, opts...); err != nil {
			return err
		}
		if err := writeSep(w, i, len(docs)); err != nil {
			return err
		}
	}
	return nil
}
