package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two arguments", cli.ErrUsage)
	}
	docs := make([]string, 2)
	for i, arg := range args {
		data, err := readArg(arg)
		if err != nil {
			return err
		}
		// Indented documents diff line by line.
		wasPretty := cfg.Pretty
		cfg.Pretty = true
		doc, err := cfg.render(data)
		cfg.Pretty = wasPretty
		if err != nil {
			return fmt.Errorf("error unpacking %s: %w", arg, err)
		}
		docs[i] = doc
	}

	diffCfg := diffpatch.New()
	ca, cb, lines := diffCfg.DiffLinesToChars(docs[0], docs[1])
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(ca, cb, false), lines)

	colorize := ttyOut(cc.Out)
	for i := range diffs {
		d := &diffs[i]
		prefix, paint := " ", colorDefault
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
			if colorize {
				paint = color.RedString
			}
		case diffpatch.DiffInsert:
			prefix = "+"
			if colorize {
				paint = color.GreenString
			}
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			if _, err := fmt.Fprintln(cc.Out, paint("%s", prefix+" "+line)); err != nil {
				return err
			}
		}
	}
	return nil
}
