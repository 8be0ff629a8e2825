package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/folio-lang/folio/layout"
	"github.com/folio-lang/folio/layouter"
	"github.com/folio-lang/folio/plain"
)

func layoutRun(cfg *LayoutConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		pass := plain.Convert(d)
		lc := &layout.Context{Resources: dirResources{base: filepath.Dir(file)}}
		laid := layouter.Layout(context.Background(), lc, pass.Output)
		for _, c := range laid.Output {
			if _, err := fmt.Fprintf(cc.Out, "%s\n", c); err != nil {
				return err
			}
		}
		fb := pass.Feedback
		fb.Extend(laid.Feedback)
		reportFeedback(fb)
	}
	return nil
}

// dirResources serves load() calls from files next to the document.
type dirResources struct {
	base string
}

func (r dirResources) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(r.base, name))
}
