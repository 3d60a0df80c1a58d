package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/treedict/encode"
	"github.com/signadot/treedict/format"
	"github.com/signadot/treedict/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='write reports with color'"`
	Links bool `cli:"name=links desc='write aliases as links'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Name     string `cli:"name=name desc='name of the trees loaded'"`
	Registry bool   `cli:"name=registry desc='load documents into registered trees'"`
	Verbose  bool   `cli:"name=v desc='log loaded documents'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// inFormat picks the input format: -I, then -j/-y, then the file suffix.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if f, ok := format.FromSuffix(filepath.Ext(file)); ok {
		return f
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat(file)),
		parse.ParseName(cfg.Name),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := format.ReportFormat
	switch {
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeLinks(cfg.Links),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	NoDangling bool `cli:"name=n desc='report missing paths as not found'"`

	Get *cli.Command
}

type HashConfig struct {
	*MainConfig

	Hash *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Context bool `cli:"name=c desc='show unchanged lines'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	Create bool `cli:"name=create desc='print the merge patch from the first file to the second'"`

	Patch *cli.Command
}

type CopyConfig struct {
	*MainConfig
	Freeze bool `cli:"name=freeze desc='freeze the source before copying'"`

	Copy *cli.Command
}
