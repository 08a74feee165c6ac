package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	cxr "github.com/cxr-format/go-cxr"
	"github.com/cxr-format/go-cxr/encode"
	"github.com/cxr-format/go-cxr/node"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a patch file and a target", cli.ErrUsage)
	}
	p, err := readArg(args[0])
	if err != nil {
		return err
	}
	doc, err := loadArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	var res *node.Document
	if cfg.Merge {
		res, err = cxr.MergePatch(doc, p)
	} else {
		res, err = cxr.ApplyPatch(doc, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, nil
}
