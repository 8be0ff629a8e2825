package layout

import (
	"fmt"
	"strconv"
)

// Style is a text style that can be toggled on and off.
type Style int

const (
	Italic Style = iota
	Bolder
)

func (s Style) String() string {
	switch s {
	case Italic:
		return "italic"
	case Bolder:
		return "bolder"
	}
	return "<unknown style>"
}

// AddText places a run of text.
type AddText struct {
	Text string
}

func (c AddText) String() string {
	return "add-text " + strconv.Quote(c.Text)
}

// AddSpace places inter-word spacing.
type AddSpace struct{}

func (AddSpace) String() string { return "add-space" }

// BreakLine forces a line break.
type BreakLine struct{}

func (BreakLine) String() string { return "break-line" }

// BreakParagraph ends the current paragraph.
type BreakParagraph struct{}

func (BreakParagraph) String() string { return "break-paragraph" }

// ToggleStyle flips a text style.
type ToggleStyle struct {
	Style Style
}

func (c ToggleStyle) String() string {
	return fmt.Sprintf("toggle-style %s", c.Style)
}
