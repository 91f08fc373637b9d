package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func pack(cfg *PackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pack.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readArg(arg)
		if err != nil {
			return err
		}
		data, err := cfg.parse(string(doc))
		if err != nil {
			return fmt.Errorf("error packing %s: %w", arg, err)
		}
		if _, err := cc.Out.Write(data); err != nil {
			return err
		}
	}
	return nil
}
