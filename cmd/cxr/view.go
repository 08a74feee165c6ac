package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/cxr-format/go-cxr/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return viewFiles(cfg, cc.Out, args)
}

func viewFiles(cfg *ViewConfig, w io.Writer, files []string) error {
	mCfg := cfg.MainConfig
	opts := mCfg.encOpts(w)
	for i, file := range files {
		doc, err := loadArg(mCfg, file)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := w.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(doc, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
