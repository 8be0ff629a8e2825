package treediff

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/folio-lang/folio/dump"
	"github.com/folio-lang/folio/syntax"
)

// MergePatch returns a JSON merge patch between the serialized forms of
// two trees, for consumers that track documents as JSON.
func MergePatch(old, new *syntax.SyntaxModel) ([]byte, error) {
	a, err := dump.JSON(old)
	if err != nil {
		return nil, err
	}
	b, err := dump.JSON(new)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}
