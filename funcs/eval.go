package funcs

import (
	"context"
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"

	"github.com/folio-lang/folio/debug"
	"github.com/folio-lang/folio/diag"
	"github.com/folio-lang/folio/layout"
	"github.com/folio-lang/folio/span"
)

// Eval evaluates a document expression at layout time and places the
// result as text. The expression source is kept as written so two
// invocations compare and clone structurally; compilation happens per
// layout call, keeping layout free of mutable state.
//
// Expressions may call load(name) to fetch data through the layout
// context's resources, which is where an evaluation can suspend.
type Eval struct {
	Source string
	Span   span.Span
}

func (e Eval) String() string {
	return "eval " + strconv.Quote(e.Source)
}

func (e Eval) Layout(ctx context.Context, lc *layout.Context) diag.Pass[layout.Commands] {
	fb := diag.NewFeedback()
	prg, err := expr.Compile(e.Source, exprOpts(ctx, lc)...)
	if err != nil {
		fb.AddDiag(diag.Errorf(e.Span, "cannot compile expression %q: %v", e.Source, err))
		return diag.NewPass(layout.Commands{}, fb)
	}
	res, err := expr.Run(prg, map[string]any{})
	if err != nil {
		fb.AddDiag(diag.Errorf(e.Span, "cannot evaluate expression %q: %v", e.Source, err))
		return diag.NewPass(layout.Commands{}, fb)
	}
	if debug.Eval() {
		debug.LogAny(map[string]any{"eval": e.Source, "result": fmt.Sprint(res)})
	}
	return diag.NewPass(layout.Commands{layout.AddText{Text: fmt.Sprint(res)}}, fb)
}

func (e Eval) Equal(o Eval) bool {
	return e.Source == o.Source && e.Span == o.Span
}

func (e Eval) Clone() Eval {
	return e
}

func exprOpts(ctx context.Context, lc *layout.Context) []expr.Option {
	return []expr.Option{
		expr.Function("load", func(params ...any) (any, error) {
			name := params[0].(string)
			if lc == nil || lc.Resources == nil {
				return nil, fmt.Errorf("no resources in layout context")
			}
			d, err := lc.Resources.Load(ctx, name)
			if err != nil {
				return nil, err
			}
			return string(d), nil
		},
			new(func(string) string)),
	}
}
