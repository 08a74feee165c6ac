package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	cxr "github.com/cxr-format/go-cxr"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := loadArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := loadArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	res, err := cxr.Diff(from, to)
	if err != nil {
		return err
	}
	if res == "" {
		return nil
	}
	if _, err := io.WriteString(cc.Out, res); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
