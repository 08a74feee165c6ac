package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/cxr-format/go-cxr/encode"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return convertFiles(cfg, cc.Out, args)
}

func convertFiles(cfg *ConvertConfig, w io.Writer, files []string) error {
	mCfg := cfg.MainConfig
	opts := mCfg.encOpts(w)
	for _, file := range files {
		doc, err := loadArg(mCfg, file)
		if err != nil {
			return err
		}
		if err := encode.Encode(doc, w, opts...); err != nil {
			return err
		}
	}
	return nil
}
