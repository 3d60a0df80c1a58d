package main

import (
	"fmt"
	"io"

	"github.com/signadot/treedict/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := loadOne(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := loadOne(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if a.Equal(b) {
		return nil
	}
	lines := libdiff.Trees(a, b)
	if cfg.Reverse {
		lines = libdiff.Reverse(lines)
	}
	if _, err := io.WriteString(cc.Out, libdiff.Format(lines, cfg.Context)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
