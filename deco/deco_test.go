package deco

import "testing"

func TestWireNames(t *testing.T) {
	tests := []struct {
		d    Decoration
		name string
	}{
		{ValidFuncName, "validFuncName"},
		{InvalidFuncName, "invalidFuncName"},
		{ArgumentKey, "argumentKey"},
		{ObjectKey, "objectKey"},
		{Italic, "italic"},
		{Bold, "bold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.d.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error: %v", err)
			}
			if string(b) != tt.name {
				t.Errorf("MarshalText() = %q, want %q", b, tt.name)
			}
			var back Decoration
			if err := back.UnmarshalText(b); err != nil {
				t.Fatalf("UnmarshalText(%q) error: %v", b, err)
			}
			if back != tt.d {
				t.Errorf("UnmarshalText(%q) = %v, want %v", b, back, tt.d)
			}
		})
	}
}

func TestUnmarshalUnknown(t *testing.T) {
	var d Decoration
	if err := d.UnmarshalText([]byte("wiggly")); err == nil {
		t.Error("UnmarshalText(wiggly) = nil, want error")
	}
}

func TestSemanticTokens(t *testing.T) {
	for _, d := range Decorations() {
		if d.SemanticToken() == "" {
			t.Errorf("%s has no semantic token type", d)
		}
	}
	if InvalidFuncName.SemanticToken() != ValidFuncName.SemanticToken() {
		t.Error("function name decorations should share a token type")
	}
	if len(InvalidFuncName.SemanticModifiers()) == 0 {
		t.Error("invalid function names should carry a modifier")
	}
}
