// Package dump renders syntax trees for humans and for tooling: an
// indented, optionally colored text view, plus JSON and YAML exports of
// trees and feedback bundles.
package dump

import (
	"fmt"
	"io"

	"github.com/folio-lang/folio/syntax"
)

type Option func(*opts)

type opts struct {
	color bool
}

// WithColor toggles ANSI colors in the text view.
func WithColor(on bool) Option {
	return func(o *opts) {
		o.color = on
	}
}

// Dump writes one line per node: the node's span followed by its kind
// and payload. Submodels are printed through their String form; their
// internals belong to their own types.
func Dump(w io.Writer, m *syntax.SyntaxModel, options ...Option) error {
	var o opts
	for _, opt := range options {
		opt(&o)
	}
	colors := NewColors()
	if !o.color {
		colors = &Colors{Default: colorDefault, Span: colorDefault}
	}
	if _, err := fmt.Fprintf(w, "%s\n", m); err != nil {
		return err
	}
	for _, n := range m.Nodes {
		line := fmt.Sprintf("  %s %s\n",
			colors.Span(n.Span.String()),
			colors.Get(n.V.Kind)(n.V.String()))
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
