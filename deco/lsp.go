package deco

import "go.lsp.dev/protocol"

// SemanticToken maps a decoration onto an LSP semantic token type so
// editors can highlight spans without knowing folio's categories. Picking
// concrete colors is the editor's business.
func (d Decoration) SemanticToken() protocol.SemanticTokenTypes {
	switch d {
	case ValidFuncName, InvalidFuncName:
		return protocol.SemanticTokenFunction
	case ArgumentKey:
		return protocol.SemanticTokenParameter
	case ObjectKey:
		return protocol.SemanticTokenProperty
	case Italic, Bold:
		return protocol.SemanticTokenModifier
	default:
		return protocol.SemanticTokenString
	}
}

// SemanticModifiers returns the LSP token modifiers for a decoration.
// Invalid function names are flagged so editors can render them as
// unresolved references.
func (d Decoration) SemanticModifiers() []protocol.SemanticTokenModifiers {
	switch d {
	case InvalidFuncName:
		return []protocol.SemanticTokenModifiers{"deprecated"}
	case ValidFuncName:
		return []protocol.SemanticTokenModifiers{"defaultLibrary"}
	default:
		return nil
	}
}
