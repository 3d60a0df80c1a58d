package main

import (
	"fmt"
	"os"

	"github.com/signadot/treedict/encode"
	"github.com/signadot/treedict/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Create {
		return createPatch(cfg, cc, args)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	var p []byte
	if cfg.String {
		p = []byte(args[0])
	} else {
		p, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read patch %q: %w", args[0], err)
		}
	}
	docs, err := loadArgs(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	w := cc.Out
	opts := cfg.encOpts(w)
	for i, doc := range docs {
		res, err := patch.Apply(doc, p)
		if err != nil {
			return fmt.Errorf("error patching document %d: %w", i, err)
		}
		if err := encode.Encode(res, w, opts...); err != nil {
			return err
		}
		if err := writeSep(w, i, len(docs)); err != nil {
			return err
		}
	}
	return nil
}

func createPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: patch -create requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := loadOne(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := loadOne(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	d, err := patch.Create(a, b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%s\n", d)
	return err
}
