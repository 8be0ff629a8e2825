package syntax

import (
	"fmt"
	"slices"
	"strconv"
)

type NodeKind int

const (
	SpaceNode NodeKind = iota
	ParbreakNode
	LinebreakNode
	TextNode
	RawNode
	ToggleItalicNode
	ToggleBolderNode
	ModelNode
)

func (k NodeKind) String() string {
	s, ok := map[NodeKind]string{
		SpaceNode:        "space",
		ParbreakNode:     "parbreak",
		LinebreakNode:    "linebreak",
		TextNode:         "text",
		RawNode:          "raw",
		ToggleItalicNode: "toggleItalic",
		ToggleBolderNode: "toggleBolder",
		ModelNode:        "model",
	}[k]
	if ok {
		return s
	}
	return "<unknown node kind>"
}

func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *NodeKind) UnmarshalText(b []byte) error {
	kk, ok := map[string]NodeKind{
		"space":        SpaceNode,
		"parbreak":     ParbreakNode,
		"linebreak":    LinebreakNode,
		"text":         TextNode,
		"raw":          RawNode,
		"toggleItalic": ToggleItalicNode,
		"toggleBolder": ToggleBolderNode,
		"model":        ModelNode,
	}[string(b)]
	if !ok {
		return fmt.Errorf("unrecognized node kind %q", b)
	}
	*k = kk
	return nil
}

func Kinds() []NodeKind {
	return []NodeKind{
		SpaceNode,
		ParbreakNode,
		LinebreakNode,
		TextNode,
		RawNode,
		ToggleItalicNode,
		ToggleBolderNode,
		ModelNode,
	}
}

// Node is one element of the syntax tree. Exactly one payload field is
// populated, selected by Kind; a node owns its payload exclusively.
type Node struct {
	Kind NodeKind

	// Text holds the payload of a TextNode.
	Text string
	// Lines holds the payload of a RawNode.
	Lines []string
	// Model holds the erased payload of a ModelNode.
	Model Model
}

// Whitespace containing less than two newlines.
func Space() Node {
	return Node{Kind: SpaceNode}
}

// Whitespace containing at least two newlines.
func Parbreak() Node {
	return Node{Kind: ParbreakNode}
}

// A forced line break.
func Linebreak() Node {
	return Node{Kind: LinebreakNode}
}

// Plain text.
func Text(s string) Node {
	return Node{Kind: TextNode, Text: s}
}

// Lines of raw text.
func Raw(lines []string) Node {
	return Node{Kind: RawNode, Lines: lines}
}

func ToggleItalic() Node {
	return Node{Kind: ToggleItalicNode}
}

func ToggleBolder() Node {
	return Node{Kind: ToggleBolderNode}
}

// Submodel wraps an erased model value, typically a function invocation.
func Submodel(m Model) Node {
	return Node{Kind: ModelNode, Model: m}
}

// Equal reports structural equality. Nodes of different kinds are never
// equal; model nodes delegate to the erased equality rule.
func (n Node) Equal(o Node) bool {
	if n.Kind != o.Kind {
		return false
	}
	switch n.Kind {
	case TextNode:
		return n.Text == o.Text
	case RawNode:
		return slices.Equal(n.Lines, o.Lines)
	case ModelNode:
		if n.Model == nil || o.Model == nil {
			return n.Model == nil && o.Model == nil
		}
		return n.Model.EqualModel(o.Model)
	default:
		return true
	}
}

// Clone returns a deep copy sharing no storage with n.
func (n Node) Clone() Node {
	res := n
	res.Lines = slices.Clone(n.Lines)
	if n.Model != nil {
		res.Model = n.Model.CloneModel()
	}
	return res
}

func (n Node) String() string {
	switch n.Kind {
	case TextNode:
		return "text " + strconv.Quote(n.Text)
	case RawNode:
		return fmt.Sprintf("raw (%d lines)", len(n.Lines))
	case ModelNode:
		if n.Model == nil {
			return "model <nil>"
		}
		return "model " + n.Model.String()
	default:
		return n.Kind.String()
	}
}
