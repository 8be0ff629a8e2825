package treediff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// TextEdit is one edit inside a text payload, offset in bytes into the
// old text.
type TextEdit struct {
	Kind EditKind
	Off  int
	Old  string
	New  string
}

// DiffText refines a changed text payload into byte-level edits, used
// when a tree edit replaces a single text node and callers want the
// smaller delta. Adjacent delete/insert pairs merge into replacements.
func DiffText(old, new string) []TextEdit {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(old, "\n") && strings.Contains(new, "\n")
	diffs := diffCfg.DiffMain(old, new, doMultiLine)

	var res []TextEdit
	off := 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			res = append(res, TextEdit{Kind: Delete, Off: off, Old: diff.Text})
			off += len(diff.Text)
		case diffpatch.DiffInsert:
			if n := len(res); n > 0 && res[n-1].Kind == Delete && res[n-1].Off+len(res[n-1].Old) == off {
				res[n-1].Kind = Replace
				res[n-1].New = diff.Text
				break
			}
			res = append(res, TextEdit{Kind: Insert, Off: off, New: diff.Text})
		case diffpatch.DiffEqual:
			off += len(diff.Text)
		}
	}
	return res
}
