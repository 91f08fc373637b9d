package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/NoelleStern/rmpp"
)

type MainConfig struct {
	Pretty bool `cli:"name=p aliases=pretty desc='indent document output'"`
	Y      bool `cli:"name=y aliases=yaml desc='do document i/o in yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// render turns one MessagePack buffer into document text in the
// selected surface syntax.
func (cfg *MainConfig) render(data []byte) (string, error) {
	if cfg.Y {
		return rmpp.UnpackYAML(data)
	}
	return rmpp.UnpackJSON(data, cfg.Pretty)
}

// parse turns document text back into a MessagePack buffer.
func (cfg *MainConfig) parse(doc string) ([]byte, error) {
	if cfg.Y {
		return rmpp.PackYAML(doc)
	}
	return rmpp.PackJSON(doc)
}

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}

type UnpackConfig struct {
	*MainConfig

	Unpack *cli.Command
}

type PackConfig struct {
	*MainConfig

	Pack *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Color bool `cli:"name=color desc='force color output'"`

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
