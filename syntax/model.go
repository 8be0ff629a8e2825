package syntax

import (
	"context"
	"fmt"

	"github.com/folio-lang/folio/diag"
	"github.com/folio-lang/folio/layout"
	"github.com/folio-lang/folio/span"
)

// Model is a parsed piece of source that can be laid out and in the
// future also be queried for information used for refactorings,
// autocomplete, etc.
//
// Layout receives a cancellable context and the engine's read-only
// layout context. It may block on resources the layout context exposes,
// but it must not mutate the receiver or shared state: given the same
// inputs it must produce the same commands regardless of how the driver
// schedules sibling layouts. Problems are reported through the returned
// feedback, never by aborting.
type Model interface {
	fmt.Stringer

	// Layout produces the commands a driver processes to lay this
	// model out, plus the feedback gathered along the way.
	Layout(ctx context.Context, lc *layout.Context) diag.Pass[layout.Commands]

	// EqualModel compares against another erased model. Values of
	// different concrete types are unequal, never an error.
	EqualModel(other Model) bool

	// CloneModel returns a deep copy owning entirely new storage.
	CloneModel() Model
}

// SyntaxModel is a tree representation of source code.
type SyntaxModel struct {
	// The syntactical elements making up this model.
	Nodes span.Vec[Node]
}

// New creates an empty syntax model.
func New() *SyntaxModel {
	return &SyntaxModel{}
}

// Add appends a node to the model. Construction is append-only: nodes
// arrive in left-to-right parse order and are never removed or
// reordered.
func (m *SyntaxModel) Add(node span.Spanned[Node]) {
	m.Nodes = append(m.Nodes, node)
}

func (m *SyntaxModel) Len() int {
	return len(m.Nodes)
}

// Equal reports ordered sequence equality of the two models' nodes.
func (m *SyntaxModel) Equal(o *SyntaxModel) bool {
	if m == nil || o == nil {
		return m == nil && o == nil
	}
	if len(m.Nodes) != len(o.Nodes) {
		return false
	}
	for i := range m.Nodes {
		if m.Nodes[i].Span != o.Nodes[i].Span {
			return false
		}
		if !m.Nodes[i].V.Equal(o.Nodes[i].V) {
			return false
		}
	}
	return true
}

// Clone deep-copies the model, recursively cloning every erased model
// value held by its nodes.
func (m *SyntaxModel) Clone() *SyntaxModel {
	res := &SyntaxModel{Nodes: make(span.Vec[Node], len(m.Nodes))}
	for i, n := range m.Nodes {
		res.Nodes[i] = span.At(n.V.Clone(), n.Span)
	}
	return res
}

func (m *SyntaxModel) String() string {
	return fmt.Sprintf("syntax-model (%d nodes)", len(m.Nodes))
}

// Layout always succeeds without suspension, yielding exactly one
// command instructing the driver to lay out this model's nodes. Node
// level diagnostics are produced upstream, not here.
func (m *SyntaxModel) Layout(ctx context.Context, lc *layout.Context) diag.Pass[layout.Commands] {
	return diag.NewPass(layout.Commands{LayoutModel{Model: m}}, diag.NewFeedback())
}

func (m *SyntaxModel) EqualModel(other Model) bool {
	o, ok := other.(*SyntaxModel)
	if !ok {
		return false
	}
	return m.Equal(o)
}

func (m *SyntaxModel) CloneModel() Model {
	return m.Clone()
}

// LayoutModel is the command asking the driver to lay out the nodes of
// a syntax model in sequence order.
type LayoutModel struct {
	Model *SyntaxModel
}

func (c LayoutModel) String() string {
	return "layout " + c.Model.String()
}
