// Package treediff computes what changed between two versions of a
// syntax tree, for incremental recompilation and for editor tooling.
// It relies only on the tree's structural equality, so submodels of any
// concrete type participate without special cases.
package treediff

import (
	"github.com/folio-lang/folio/debug"
	"github.com/folio-lang/folio/span"
	"github.com/folio-lang/folio/syntax"
)

type EditKind int

const (
	Insert EditKind = iota
	Delete
	Replace
)

func (k EditKind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "<unknown edit kind>"
}

// Edit describes one changed region. Old is the affected span in the
// old document, New the corresponding span in the new one; for pure
// insertions Old is the empty caret span at the insertion point, and
// symmetrically for deletions.
type Edit struct {
	Kind EditKind
	Old  span.Span
	New  span.Span
}

// Diff compares two trees node by node: the longest equal prefix and
// suffix are trimmed and the remainder reported as a single edit.
// Node spans are metadata, not content, so they do not influence
// matching.
func Diff(old, new *syntax.SyntaxModel) []Edit {
	on, nn := old.Nodes, new.Nodes
	p := 0
	for p < len(on) && p < len(nn) && on[p].V.Equal(nn[p].V) {
		p++
	}
	s := 0
	for s < len(on)-p && s < len(nn)-p && on[len(on)-1-s].V.Equal(nn[len(nn)-1-s].V) {
		s++
	}
	oldMid := on[p : len(on)-s]
	newMid := nn[p : len(nn)-s]
	if len(oldMid) == 0 && len(newMid) == 0 {
		return nil
	}

	kind := Replace
	switch {
	case len(oldMid) == 0:
		kind = Insert
	case len(newMid) == 0:
		kind = Delete
	}
	edit := Edit{
		Kind: kind,
		Old:  coverOrCaret(oldMid, on, p),
		New:  coverOrCaret(newMid, nn, p),
	}
	if debug.Diff() {
		debug.LogAny(map[string]any{
			"kind": edit.Kind.String(),
			"old":  edit.Old.String(),
			"new":  edit.New.String(),
		})
	}
	return []Edit{edit}
}

func coverOrCaret(mid, all span.Vec[syntax.Node], p int) span.Span {
	if len(mid) > 0 {
		res := mid[0].Span
		for _, n := range mid[1:] {
			res = res.Cover(n.Span)
		}
		return res
	}
	if p > 0 {
		end := all[p-1].Span.End
		return span.New(end, end)
	}
	return span.Span{}
}
