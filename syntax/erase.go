package syntax

import (
	"context"
	"fmt"

	"github.com/folio-lang/folio/diag"
	"github.com/folio-lang/folio/layout"
)

// Value is the contract a concrete type needs to live erased inside the
// tree: it can be laid out, compared against its own type, and deep
// cloned, and it owns all of its data. Nothing else is required; no
// registration, no central type list.
type Value[T any] interface {
	fmt.Stringer
	Layout(ctx context.Context, lc *layout.Context) diag.Pass[layout.Commands]
	Equal(other T) bool
	Clone() T
}

// erased adapts a Value to the Model interface. Equality recovers the
// concrete type with a checked assertion and delegates to the value's
// own Equal; cloning re-erases a deep copy.
type erased[T Value[T]] struct {
	v T
}

// Erase wraps a concrete value as an erased Model. The wrapper owns v;
// callers must not retain references into it afterwards.
func Erase[T Value[T]](v T) Model {
	return erased[T]{v: v}
}

func (e erased[T]) String() string {
	return e.v.String()
}

func (e erased[T]) Layout(ctx context.Context, lc *layout.Context) diag.Pass[layout.Commands] {
	return e.v.Layout(ctx, lc)
}

func (e erased[T]) EqualModel(other Model) bool {
	o, ok := other.(erased[T])
	if !ok {
		return false
	}
	return e.v.Equal(o.v)
}

func (e erased[T]) CloneModel() Model {
	return erased[T]{v: e.v.Clone()}
}

// As downcasts an erased model to the concrete type T. It works for
// values wrapped with [Erase] as well as for types implementing [Model]
// directly. A mismatched type yields false, never a fault.
func As[T Value[T]](m Model) (T, bool) {
	if e, ok := m.(erased[T]); ok {
		return e.v, true
	}
	t, ok := m.(T)
	return t, ok
}
