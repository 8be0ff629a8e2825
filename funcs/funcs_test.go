package funcs

import (
	"context"
	"fmt"
	"testing"

	"github.com/folio-lang/folio/layout"
	"github.com/folio-lang/folio/span"
	"github.com/folio-lang/folio/syntax"
)

func TestGroupLayoutDefersToBody(t *testing.T) {
	body := syntax.New()
	body.Add(span.Zero(syntax.Text("inner")))
	g := Group{Body: body}

	pass := g.Layout(context.Background(), &layout.Context{})
	if len(pass.Output) != 1 {
		t.Fatalf("commands = %d, want 1", len(pass.Output))
	}
	cmd, ok := pass.Output[0].(syntax.LayoutModel)
	if !ok {
		t.Fatalf("command is %T, want LayoutModel", pass.Output[0])
	}
	if cmd.Model != body {
		t.Error("command does not reference the group body")
	}
}

func TestGroupEqualClone(t *testing.T) {
	mk := func(text string) Group {
		m := syntax.New()
		m.Add(span.Zero(syntax.Text(text)))
		return Group{Body: m}
	}
	a, b, c := mk("x"), mk("x"), mk("y")
	if !a.Equal(b) {
		t.Error("identical groups compare unequal")
	}
	if a.Equal(c) {
		t.Error("different groups compare equal")
	}
	clone := a.Clone()
	if !clone.Equal(a) {
		t.Error("clone not equal to original")
	}
	if clone.Body == a.Body {
		t.Error("clone aliases the original body")
	}
}

func TestEvalLayout(t *testing.T) {
	tests := []struct {
		name   string
		source string
		text   string
		diags  int
	}{
		{"arithmetic", "1 + 2", "3", 0},
		{"strings", `"a" + "b"`, "ab", 0},
		{"bad syntax", "1 +", "", 1},
		{"bad call", `foo(1)`, "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Eval{Source: tt.source, Span: span.New(0, 5)}
			pass := e.Layout(context.Background(), &layout.Context{})
			if len(pass.Feedback.Diags) != tt.diags {
				t.Fatalf("diags = %v, want %d", pass.Feedback.Diags, tt.diags)
			}
			if tt.diags > 0 {
				if len(pass.Output) != 0 {
					t.Errorf("commands = %v, want none", pass.Output)
				}
				if pass.Feedback.Diags[0].Span != span.New(0, 5) {
					t.Errorf("diag span = %v, want 0-5", pass.Feedback.Diags[0].Span)
				}
				return
			}
			if len(pass.Output) != 1 {
				t.Fatalf("commands = %v, want 1", pass.Output)
			}
			got, ok := pass.Output[0].(layout.AddText)
			if !ok {
				t.Fatalf("command is %T, want AddText", pass.Output[0])
			}
			if got.Text != tt.text {
				t.Errorf("text = %q, want %q", got.Text, tt.text)
			}
		})
	}
}

type mapResources map[string]string

func (m mapResources) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("no resource %q", name)
	}
	return []byte(v), nil
}

func TestEvalLoad(t *testing.T) {
	lc := &layout.Context{Resources: mapResources{"greeting": "hello"}}
	e := Eval{Source: `load("greeting") + "!"`}
	pass := e.Layout(context.Background(), lc)
	if len(pass.Feedback.Diags) != 0 {
		t.Fatalf("unexpected diags: %v", pass.Feedback.Diags)
	}
	if got := pass.Output[0].(layout.AddText).Text; got != "hello!" {
		t.Errorf("text = %q, want %q", got, "hello!")
	}
}

func TestEvalLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lc := &layout.Context{Resources: mapResources{"greeting": "hello"}}
	e := Eval{Source: `load("greeting")`}
	pass := e.Layout(ctx, lc)
	if len(pass.Output) != 0 {
		t.Errorf("commands after cancellation: %v", pass.Output)
	}
	if len(pass.Feedback.Diags) != 1 {
		t.Errorf("diags = %v, want 1", pass.Feedback.Diags)
	}
}

func TestEvalErased(t *testing.T) {
	a := syntax.Erase(Eval{Source: "1 + 2"})
	b := syntax.Erase(Eval{Source: "1 + 2"})
	g := syntax.Erase(Group{Body: syntax.New()})
	if !a.EqualModel(b) {
		t.Error("identical eval models compare unequal")
	}
	if a.EqualModel(g) {
		t.Error("eval equals group through erasure")
	}
	got, ok := syntax.As[Eval](a)
	if !ok || got.Source != "1 + 2" {
		t.Errorf("As[Eval] = %v, %v", got, ok)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	sym := groupSymbol{}
	if err := r.Register(sym); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := r.Register(sym); err == nil {
		t.Error("duplicate Register() succeeded")
	}
	if _, ok := r.Lookup("group"); !ok {
		t.Error("Lookup(group) failed")
	}
	if _, ok := r.Lookup("nope"); ok {
		t.Error("Lookup(nope) succeeded")
	}
}

func TestStdSymbols(t *testing.T) {
	for _, name := range []string{"group", "eval"} {
		sym, ok := Std().Lookup(name)
		if !ok {
			t.Fatalf("Std().Lookup(%q) failed", name)
		}
		var (
			m   syntax.Model
			err error
		)
		switch name {
		case "group":
			m, err = sym.Instance(syntax.New(), nil, span.Span{})
		case "eval":
			m, err = sym.Instance(nil, []string{"1"}, span.Span{})
		}
		if err != nil {
			t.Fatalf("Instance(%q) error: %v", name, err)
		}
		if m == nil {
			t.Fatalf("Instance(%q) = nil model", name)
		}
	}
}
