package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/cxr-format/go-cxr/encode"
	"github.com/cxr-format/go-cxr/format"
	"github.com/cxr-format/go-cxr/node"
	"github.com/cxr-format/go-cxr/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	C bool `cli:"name=c aliases=cxr desc='do i/o in cxr'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.C:
		return format.CXRFormat, true
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	}
	return format.CXRFormat, false
}

func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, set := cfg.flagFormat(); set {
		return f
	}
	if f, err := format.FromPath(path); err == nil {
		return f
	}
	return format.CXRFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	f, _ := cfg.flagFormat()
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) && cfg.outFormat().IsCXR() {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// loadArg reads a document from a file path or "-" for stdin.
func loadArg(cfg *MainConfig, arg string) (*node.Document, error) {
	var (
		rd  io.Reader
		tag = "stdin"
	)
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rd = f
		tag = filepath.Base(arg)
	}
	d, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	f := cfg.inFormat(arg)
	var doc *node.Document
	if f.IsCXR() {
		doc, err = parse.Parse(d, tag)
	} else {
		doc, err = parse.ParsePacked(d, tag)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	doc.SetMode(f)
	return doc, nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Entry string `cli:"name=e desc='entry tag to select inside the group'"`

	Get *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool `cli:"name=merge desc='treat the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Groups bool `cli:"name=g aliases=groups desc='match groups instead of entries'"`

	Query *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress skip warnings'"`

	Tree *cli.Command
}
