package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/cxr-format/go-cxr/dirstore"
	"github.com/cxr-format/go-cxr/encode"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: tree requires one directory or file argument", cli.ErrUsage)
	}
	var dOpts []dirstore.Option
	if cfg.Quiet {
		dOpts = append(dOpts, dirstore.WithWarn(func(string, error) {}))
	} else {
		dOpts = append(dOpts, dirstore.WithWarn(func(path string, err error) {
			fmt.Fprintf(os.Stderr, "ignoring %s: %v\n", path, err)
		}))
	}
	m, err := dirstore.Open(args[0], dOpts...)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", args[0], err)
	}
	return encode.Encode(m, cc.Out, cfg.encOpts(cc.Out)...)
}
