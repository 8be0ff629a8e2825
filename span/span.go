package span

import "fmt"

// Pos is a byte offset into the source.
type Pos int

// Span is a half-open byte range [Start, End) in the source. Spans are
// opaque metadata: the tree never interprets them, it only carries them.
type Span struct {
	Start Pos
	End   Pos
}

func New(start, end Pos) Span {
	return Span{Start: start, End: end}
}

func (s Span) Len() int {
	return int(s.End - s.Start)
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Spanned pairs a value with the span it came from.
type Spanned[T any] struct {
	Span Span
	V    T
}

// At wraps v with the given span.
func At[T any](v T, s Span) Spanned[T] {
	return Spanned[T]{Span: s, V: v}
}

// Zero wraps v with the zero span, for synthesized values that have no
// source location.
func Zero[T any](v T) Spanned[T] {
	return Spanned[T]{V: v}
}

// Map converts the payload while keeping the span.
func Map[T, U any](s Spanned[T], f func(T) U) Spanned[U] {
	return Spanned[U]{Span: s.Span, V: f(s.V)}
}

// Vec is an ordered sequence of spanned values. Order is document order;
// construction is append-only.
type Vec[T any] []Spanned[T]

func (v Vec[T]) Spans() []Span {
	res := make([]Span, len(v))
	for i := range v {
		res[i] = v[i].Span
	}
	return res
}
