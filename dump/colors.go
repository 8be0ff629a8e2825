package dump

import (
	"strings"

	"github.com/fatih/color"

	"github.com/folio-lang/folio/syntax"
)

type Colors struct {
	Default func(string, ...any) string
	Span    func(string, ...any) string
	Map     map[syntax.NodeKind]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Span:    color.RGB(96, 96, 96).SprintfFunc(),
		Map:     map[syntax.NodeKind]func(string, ...any) string{},
	}
	colors.Map[syntax.SpaceNode] = color.RGB(128, 128, 128).SprintfFunc()
	colors.Map[syntax.ParbreakNode] = color.RGB(128, 128, 128).SprintfFunc()
	colors.Map[syntax.LinebreakNode] = color.RGB(128, 128, 128).SprintfFunc()
	colors.Map[syntax.TextNode] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[syntax.RawNode] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[syntax.ToggleItalicNode] = color.CyanString
	colors.Map[syntax.ToggleBolderNode] = color.CyanString
	colors.Map[syntax.ModelNode] = color.RGB(74, 92, 138).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(k syntax.NodeKind) func(string, ...any) string {
	f := c.Map[k]
	if f == nil {
		return c.Default
	}
	return f
}
