package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/cxr-format/go-cxr/encode"
	"github.com/cxr-format/go-cxr/node"
	"github.com/cxr-format/go-cxr/query"
)

func queryCmd(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	pred, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", args[0], err)
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
		var res *node.Document
		if cfg.Groups {
			res, err = query.SelectGroups(doc, pred)
		} else {
			res, err = query.FilterDocument(doc, pred)
		}
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
