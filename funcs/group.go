package funcs

import (
	"context"
	"fmt"

	"github.com/folio-lang/folio/diag"
	"github.com/folio-lang/folio/layout"
	"github.com/folio-lang/folio/syntax"
)

// Group wraps a nested syntax model, the simplest submodel: laying it
// out defers straight to the body.
type Group struct {
	Body *syntax.SyntaxModel
}

func (g Group) String() string {
	return fmt.Sprintf("group (%d nodes)", g.Body.Len())
}

func (g Group) Layout(ctx context.Context, lc *layout.Context) diag.Pass[layout.Commands] {
	return g.Body.Layout(ctx, lc)
}

func (g Group) Equal(o Group) bool {
	return g.Body.Equal(o.Body)
}

func (g Group) Clone() Group {
	return Group{Body: g.Body.Clone()}
}
