package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/cxr-format/go-cxr/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a group tag", cli.ErrUsage)
	}
	tag := args[0]
	if tag == "" {
		return fmt.Errorf("%w: invalid group tag \"\"", cli.ErrUsage)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	mCfg := cfg.MainConfig
	opts := mCfg.encOpts(cc.Out)
	for _, arg := range args {
		doc, err := loadArg(mCfg, arg)
		if err != nil {
			return err
		}
		g, err := doc.Get(tag)
		if err != nil {
			return fmt.Errorf("error getting %q from %s: %w", tag, arg, err)
		}
		if cfg.Entry == "" {
			if err := encode.Encode(g, cc.Out, opts...); err != nil {
				return err
			}
			continue
		}
		e, err := g.Get(cfg.Entry)
		if err != nil {
			return fmt.Errorf("error getting %q from group %q in %s: %w", cfg.Entry, tag, arg, err)
		}
		if _, err := fmt.Fprintln(cc.Out, e.Value()); err != nil {
			return err
		}
	}
	return nil
}
