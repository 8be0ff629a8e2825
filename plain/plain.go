// Package plain turns plain text into a syntax model: words become text
// nodes, whitespace becomes spaces or paragraph breaks. No grammar is
// involved; the folio parser proper is a separate component that feeds
// trees through the same producer contract. plain exists so tooling and
// tests have a real source of spanned nodes.
package plain

import (
	"unicode"
	"unicode/utf8"

	"github.com/folio-lang/folio/diag"
	"github.com/folio-lang/folio/span"
	"github.com/folio-lang/folio/syntax"
)

// Convert scans src into a syntax model with byte-accurate spans.
// Whitespace runs containing at least two newlines become paragraph
// breaks, other runs single spaces. Invalid UTF-8 bytes are replaced
// and reported as warnings, never as hard failures.
func Convert(src []byte) diag.Pass[*syntax.SyntaxModel] {
	c := converter{src: src, model: syntax.New()}
	c.run()
	return diag.NewPass(c.model, c.fb)
}

type converter struct {
	src   []byte
	model *syntax.SyntaxModel
	fb    diag.Feedback
}

func (c *converter) run() {
	i := 0
	for i < len(c.src) {
		r, size := utf8.DecodeRune(c.src[i:])
		if r != utf8.RuneError || size != 1 {
			if unicode.IsSpace(r) {
				i = c.whitespace(i)
				continue
			}
		}
		i = c.text(i)
	}
}

// whitespace consumes a whitespace run starting at off and appends the
// matching node.
func (c *converter) whitespace(off int) int {
	i := off
	newlines := 0
	for i < len(c.src) {
		r, size := utf8.DecodeRune(c.src[i:])
		if r == utf8.RuneError && size == 1 || !unicode.IsSpace(r) {
			break
		}
		if r == '\n' {
			newlines++
		}
		i += size
	}
	node := syntax.Space()
	if newlines >= 2 {
		node = syntax.Parbreak()
	}
	c.model.Add(span.At(node, span.New(span.Pos(off), span.Pos(i))))
	return i
}

// text consumes a non-whitespace run starting at off and appends a text
// node. Invalid bytes become replacement runes and warnings.
func (c *converter) text(off int) int {
	i := off
	var buf []byte
	for i < len(c.src) {
		r, size := utf8.DecodeRune(c.src[i:])
		if r == utf8.RuneError && size == 1 {
			c.fb.AddDiag(diag.Warnf(span.New(span.Pos(i), span.Pos(i+1)), "invalid utf8"))
			buf = utf8.AppendRune(buf, utf8.RuneError)
			i += size
			continue
		}
		if unicode.IsSpace(r) {
			break
		}
		buf = append(buf, c.src[i:i+size]...)
		i += size
	}
	c.model.Add(span.At(syntax.Text(string(buf)), span.New(span.Pos(off), span.Pos(i))))
	return i
}
