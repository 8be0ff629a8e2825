package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/folio-lang/folio/plain"
	"github.com/folio-lang/folio/treediff"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff needs exactly two files", cli.ErrUsage)
	}
	oldSrc, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	newSrc, err := readInput(cc, args[1])
	if err != nil {
		return err
	}
	oldPass := plain.Convert(oldSrc)
	newPass := plain.Convert(newSrc)

	if cfg.Patch {
		p, err := treediff.MergePatch(oldPass.Output, newPass.Output)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(append(p, '\n'))
		return err
	}
	edits := treediff.Diff(oldPass.Output, newPass.Output)
	if len(edits) == 0 {
		fmt.Fprintln(cc.Out, "equal")
		return nil
	}
	for _, e := range edits {
		if _, err := fmt.Fprintf(cc.Out, "%s old=%s new=%s\n", e.Kind, e.Old, e.New); err != nil {
			return err
		}
	}
	return nil
}
