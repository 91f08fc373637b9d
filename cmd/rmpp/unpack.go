package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func unpack(cfg *UnpackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unpack.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := unpackArg(cfg, cc.Out, arg); err != nil {
			return fmt.Errorf("error unpacking %s: %w", arg, err)
		}
	}
	return nil
}

func unpackArg(cfg *UnpackConfig, w io.Writer, arg string) error {
	data, err := readArg(arg)
	if err != nil {
		return err
	}
	doc, err := cfg.render(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, doc)
	return err
}
