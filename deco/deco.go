// Package deco defines the semantic highlighting categories attached to
// source spans during parsing and name resolution. They are pure tags,
// produced as metadata and consumed read-only by editor tooling.
package deco

import "fmt"

type Decoration int

const (
	ValidFuncName Decoration = iota
	InvalidFuncName
	ArgumentKey
	ObjectKey
	Italic
	Bold
)

func (d Decoration) String() string {
	s, ok := map[Decoration]string{
		ValidFuncName:   "validFuncName",
		InvalidFuncName: "invalidFuncName",
		ArgumentKey:     "argumentKey",
		ObjectKey:       "objectKey",
		Italic:          "italic",
		Bold:            "bold",
	}[d]
	if ok {
		return s
	}
	return "<unknown decoration>"
}

func (d Decoration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Decoration) UnmarshalText(b []byte) error {
	dd, ok := map[string]Decoration{
		"validFuncName":   ValidFuncName,
		"invalidFuncName": InvalidFuncName,
		"argumentKey":     ArgumentKey,
		"objectKey":       ObjectKey,
		"italic":          Italic,
		"bold":            Bold,
	}[string(b)]
	if !ok {
		return fmt.Errorf("unrecognized decoration %q", b)
	}
	*d = dd
	return nil
}

func Decorations() []Decoration {
	return []Decoration{
		ValidFuncName,
		InvalidFuncName,
		ArgumentKey,
		ObjectKey,
		Italic,
		Bold,
	}
}
