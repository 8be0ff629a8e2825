package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`
	Y     bool `cli:"name=y aliases=yaml desc='output yaml'"`
	J     bool `cli:"name=j aliases=json desc='output json'"`

	Main *cli.Command
}

func (cfg *MainConfig) colorEnabled() bool {
	if cfg.Color {
		return true
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type LayoutConfig struct {
	*MainConfig
	Layout *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Patch bool `cli:"name=patch desc='output a json merge patch'"`

	Diff *cli.Command
}

type DecosConfig struct {
	*MainConfig
	Decos *cli.Command
}

func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return d, nil
}
