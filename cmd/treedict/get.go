package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/treedict/encode"
	"github.com/signadot/treedict/tree"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a key path", cli.ErrUsage)
	}
	path := args[0]
	docs, err := loadArgs(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	w := cc.Out
	missing := false
	for i, doc := range docs {
		e, err := doc.Lookup(path)
		switch {
		case errors.Is(err, tree.ErrNotFound) && cfg.NoDangling:
			missing = true
			fmt.Fprintf(w, "%s: not found\n", path)
			continue
		case errors.Is(err, tree.ErrNotFound):
			// name the first missing segment as attribute access would
			_, err = doc.At(path).Lookup("")
			return err
		case err != nil:
			return err
		}
		if err := getEntry(cfg, w, e); err != nil {
			return err
		}
		if err := writeSep(w, i, len(docs)); err != nil {
			return err
		}
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getEntry(cfg *GetConfig, w io.Writer, e tree.Entry) error {
	opts := cfg.encOpts(w)
	if e.IsNode() {
		return encode.Encode(e.Node, w, opts...)
	}
	f := encode.FormatFromOpts(opts...)
	if f.IsReport() {
		_, err := io.WriteString(w, tree.FormatValue(e.Value)+"\n")
		return err
	}
	var yopts []yaml.EncodeOption
	if f.IsJSON() {
		yopts = append(yopts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(e.Value, yopts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
