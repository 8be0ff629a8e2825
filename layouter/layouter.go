// Package layouter is a minimal sequential layout driver. It expands
// the tree's layout-model commands into the primitive command stream an
// engine consumes, laying out nodes in document order and concatenating
// feedback as it goes. Real engines may schedule differently; results
// must not depend on that.
package layouter

import (
	"context"

	"github.com/folio-lang/folio/debug"
	"github.com/folio-lang/folio/diag"
	"github.com/folio-lang/folio/layout"
	"github.com/folio-lang/folio/syntax"
)

// Layout drives m to completion. Cancelling ctx abandons the run at the
// next node boundary: the commands emitted so far are returned and the
// tree is left untouched (layout never mutates it).
func Layout(ctx context.Context, lc *layout.Context, m syntax.Model) diag.Pass[layout.Commands] {
	l := &layouter{ctx: ctx, lc: lc}
	pass := m.Layout(ctx, lc)
	l.fb.Extend(pass.Feedback)
	l.commands(pass.Output)
	if debug.Layout() {
		debug.LogAny(map[string]any{
			"commands": len(l.out),
			"diags":    len(l.fb.Diags),
		})
	}
	return diag.NewPass(l.out, l.fb)
}

type layouter struct {
	ctx context.Context
	lc  *layout.Context
	out layout.Commands
	fb  diag.Feedback
}

func (l *layouter) commands(cmds layout.Commands) {
	for _, c := range cmds {
		if l.ctx.Err() != nil {
			return
		}
		if lm, ok := c.(syntax.LayoutModel); ok {
			l.model(lm.Model)
			continue
		}
		l.out = append(l.out, c)
	}
}

func (l *layouter) model(m *syntax.SyntaxModel) {
	for _, n := range m.Nodes {
		if l.ctx.Err() != nil {
			return
		}
		l.node(n.V)
	}
}

func (l *layouter) node(n syntax.Node) {
	switch n.Kind {
	case syntax.SpaceNode:
		l.out = append(l.out, layout.AddSpace{})
	case syntax.ParbreakNode:
		l.out = append(l.out, layout.BreakParagraph{})
	case syntax.LinebreakNode:
		l.out = append(l.out, layout.BreakLine{})
	case syntax.TextNode:
		l.out = append(l.out, layout.AddText{Text: n.Text})
	case syntax.RawNode:
		for i, line := range n.Lines {
			if i > 0 {
				l.out = append(l.out, layout.BreakLine{})
			}
			l.out = append(l.out, layout.AddText{Text: line})
		}
	case syntax.ToggleItalicNode:
		l.out = append(l.out, layout.ToggleStyle{Style: layout.Italic})
	case syntax.ToggleBolderNode:
		l.out = append(l.out, layout.ToggleStyle{Style: layout.Bolder})
	case syntax.ModelNode:
		if n.Model == nil {
			return
		}
		pass := n.Model.Layout(l.ctx, l.lc)
		l.fb.Extend(pass.Feedback)
		l.commands(pass.Output)
	}
}
