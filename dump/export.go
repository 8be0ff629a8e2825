package dump

import (
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/folio-lang/folio/deco"
	"github.com/folio-lang/folio/diag"
	"github.com/folio-lang/folio/span"
	"github.com/folio-lang/folio/syntax"
)

type docExport struct {
	Nodes []nodeExport `json:"nodes" yaml:"nodes"`
}

type nodeExport struct {
	Kind  syntax.NodeKind `json:"kind" yaml:"kind"`
	Span  spanExport      `json:"span" yaml:"span"`
	Text  string          `json:"text,omitempty" yaml:"text,omitempty"`
	Lines []string        `json:"lines,omitempty" yaml:"lines,omitempty"`
	Model string          `json:"model,omitempty" yaml:"model,omitempty"`
}

type spanExport struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func exportSpan(s span.Span) spanExport {
	return spanExport{Start: int(s.Start), End: int(s.End)}
}

func export(m *syntax.SyntaxModel) docExport {
	doc := docExport{Nodes: make([]nodeExport, 0, m.Len())}
	for _, n := range m.Nodes {
		e := nodeExport{Kind: n.V.Kind, Span: exportSpan(n.Span)}
		switch n.V.Kind {
		case syntax.TextNode:
			e.Text = n.V.Text
		case syntax.RawNode:
			e.Lines = n.V.Lines
		case syntax.ModelNode:
			e.Model = n.V.Model.String()
		}
		doc.Nodes = append(doc.Nodes, e)
	}
	return doc
}

// JSON serializes the tree's structure for tooling. Submodels appear in
// their String form only; erased values define no wire format.
func JSON(m *syntax.SyntaxModel) ([]byte, error) {
	return json.Marshal(export(m))
}

func YAML(m *syntax.SyntaxModel) ([]byte, error) {
	return yaml.Marshal(export(m))
}

type feedbackExport struct {
	Diags []diagExport `json:"diags,omitempty" yaml:"diags,omitempty"`
	Decos []decoExport `json:"decorations,omitempty" yaml:"decorations,omitempty"`
}

type diagExport struct {
	Severity diag.Severity `json:"severity" yaml:"severity"`
	Message  string        `json:"message" yaml:"message"`
	Span     spanExport    `json:"span" yaml:"span"`
}

type decoExport struct {
	Deco deco.Decoration `json:"deco" yaml:"deco"`
	Span spanExport      `json:"span" yaml:"span"`
}

// FeedbackYAML serializes a feedback bundle for tooling.
func FeedbackYAML(fb diag.Feedback) ([]byte, error) {
	e := feedbackExport{}
	for _, d := range fb.Diags {
		e.Diags = append(e.Diags, diagExport{
			Severity: d.Severity,
			Message:  d.Message,
			Span:     exportSpan(d.Span),
		})
	}
	for _, d := range fb.Decos {
		e.Decos = append(e.Decos, decoExport{Deco: d.V, Span: exportSpan(d.Span)})
	}
	return yaml.Marshal(e)
}
