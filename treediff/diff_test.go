package treediff

import (
	"testing"

	"github.com/folio-lang/folio/span"
	"github.com/folio-lang/folio/syntax"
)

func doc(words ...string) *syntax.SyntaxModel {
	m := syntax.New()
	off := span.Pos(0)
	for i, w := range words {
		if i > 0 {
			m.Add(span.At(syntax.Space(), span.New(off, off+1)))
			off++
		}
		end := off + span.Pos(len(w))
		m.Add(span.At(syntax.Text(w), span.New(off, end)))
		off = end
	}
	return m
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		old, new *syntax.SyntaxModel
		want     []Edit
	}{
		{
			"equal",
			doc("a", "b"),
			doc("a", "b"),
			nil,
		},
		{
			"replace middle",
			doc("a", "b", "c"),
			doc("a", "x", "c"),
			[]Edit{{Kind: Replace, Old: span.New(2, 3), New: span.New(2, 3)}},
		},
		{
			"insert at end",
			doc("a"),
			doc("a", "b"),
			[]Edit{{Kind: Insert, Old: span.New(1, 1), New: span.New(1, 3)}},
		},
		{
			"delete at end",
			doc("a", "b"),
			doc("a"),
			[]Edit{{Kind: Delete, Old: span.New(1, 3), New: span.New(1, 1)}},
		},
		{
			"empty to full",
			syntax.New(),
			doc("a"),
			[]Edit{{Kind: Insert, Old: span.Span{}, New: span.New(0, 1)}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.old, tt.new)
			if len(got) != len(tt.want) {
				t.Fatalf("Diff() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("edit %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDiffText(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		want     []TextEdit
	}{
		{"equal", "same", "same", nil},
		{"insert", "ac", "abc", []TextEdit{{Kind: Insert, Off: 1, New: "b"}}},
		{"delete", "abc", "ac", []TextEdit{{Kind: Delete, Off: 1, Old: "b"}}},
		{"replace", "cat", "cut", []TextEdit{{Kind: Replace, Off: 1, Old: "a", New: "u"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffText(tt.old, tt.new)
			if len(got) != len(tt.want) {
				t.Fatalf("DiffText() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("edit %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMergePatch(t *testing.T) {
	p, err := MergePatch(doc("a"), doc("a", "b"))
	if err != nil {
		t.Fatalf("MergePatch() error: %v", err)
	}
	if len(p) == 0 {
		t.Error("empty patch for changed trees")
	}
	same, err := MergePatch(doc("a"), doc("a"))
	if err != nil {
		t.Fatalf("MergePatch() error: %v", err)
	}
	if string(same) != "{}" {
		t.Errorf("patch for equal trees = %s, want {}", same)
	}
}
