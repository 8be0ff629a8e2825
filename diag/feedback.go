package diag

import (
	"github.com/folio-lang/folio/deco"
	"github.com/folio-lang/folio/span"
)

// Feedback accumulates diagnostics and decorations gathered while
// processing part of a document. Bundles merge by concatenation as
// results compose up the tree, keeping document order.
type Feedback struct {
	Diags []Diag
	Decos span.Vec[deco.Decoration]
}

func NewFeedback() Feedback {
	return Feedback{}
}

func (f *Feedback) AddDiag(d Diag) {
	f.Diags = append(f.Diags, d)
}

func (f *Feedback) AddDeco(d span.Spanned[deco.Decoration]) {
	f.Decos = append(f.Decos, d)
}

// Extend appends all of other's feedback to f.
func (f *Feedback) Extend(other Feedback) {
	f.Diags = append(f.Diags, other.Diags...)
	f.Decos = append(f.Decos, other.Decos...)
}

// HasErrors reports whether any collected diagnostic is an error. The
// caller decides what to do about it; this package never does.
func (f *Feedback) HasErrors() bool {
	for _, d := range f.Diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Pass pairs an operation's output with the feedback gathered while
// producing it. The output is always present, with zero or more
// diagnostics alongside.
type Pass[T any] struct {
	Output   T
	Feedback Feedback
}

func NewPass[T any](out T, fb Feedback) Pass[T] {
	return Pass[T]{Output: out, Feedback: fb}
}
