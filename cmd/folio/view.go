package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/folio-lang/folio/diag"
	"github.com/folio-lang/folio/dump"
	"github.com/folio-lang/folio/plain"
	"github.com/folio-lang/folio/syntax"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		pass := plain.Convert(d)
		if err := viewModel(cfg, cc, pass.Output); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		reportFeedback(pass.Feedback)
	}
	return nil
}

func viewModel(cfg *ViewConfig, cc *cli.Context, m *syntax.SyntaxModel) error {
	switch {
	case cfg.J:
		d, err := dump.JSON(m)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(append(d, '\n'))
		return err
	case cfg.Y:
		d, err := dump.YAML(m)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	default:
		return dump.Dump(cc.Out, m, dump.WithColor(cfg.colorEnabled()))
	}
}

// reportFeedback prints collected diagnostics without failing the
// command; deciding whether they block anything is up to the user.
func reportFeedback(fb diag.Feedback) {
	for _, d := range fb.Diags {
		fmt.Fprintf(os.Stderr, "%s\n", d)
	}
}
