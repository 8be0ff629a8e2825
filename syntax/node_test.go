package syntax

import (
	"testing"
)

func TestNodeEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Node
		expected bool
	}{
		{"space == space", Space(), Space(), true},
		{"parbreak == parbreak", Parbreak(), Parbreak(), true},
		{"linebreak == linebreak", Linebreak(), Linebreak(), true},
		{"space != parbreak", Space(), Parbreak(), false},
		{"text == text", Text("hi"), Text("hi"), true},
		{"text != text", Text("hi"), Text("ho"), false},
		{"text != space", Text("hi"), Space(), false},
		{"raw == raw", Raw([]string{"a", "b"}), Raw([]string{"a", "b"}), true},
		{"raw != raw", Raw([]string{"a"}), Raw([]string{"b"}), false},
		{"toggleItalic == toggleItalic", ToggleItalic(), ToggleItalic(), true},
		{"toggleItalic != toggleBolder", ToggleItalic(), ToggleBolder(), false},
		{"model == model", Submodel(Erase(noteModel{text: "x"})), Submodel(Erase(noteModel{text: "x"})), true},
		{"model != model", Submodel(Erase(noteModel{text: "x"})), Submodel(Erase(noteModel{text: "y"})), false},
		{"model cross type", Submodel(Erase(noteModel{text: "x"})), Submodel(Erase(markModel{text: "x"})), false},
		{"model != text", Submodel(Erase(noteModel{text: "x"})), Text("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("Equal() = %v, want %v", got, tt.expected)
			}
			// equality is symmetric
			if got := tt.b.Equal(tt.a); got != tt.expected {
				t.Errorf("Equal(b, a) = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNodeClone(t *testing.T) {
	raw := Raw([]string{"a", "b"})
	clone := raw.Clone()
	clone.Lines[0] = "zap"
	if !raw.Equal(Raw([]string{"a", "b"})) {
		t.Error("mutating a cloned raw node changed the original")
	}

	mn := Submodel(Erase(listModel{items: []string{"a"}}))
	mc := mn.Clone()
	if !mn.Equal(mc) {
		t.Error("cloned model node not equal to original")
	}
	cv, ok := As[listModel](mc.Model)
	if !ok {
		t.Fatal("downcast of cloned model failed")
	}
	cv.items[0] = "zap"
	if !mn.Equal(Submodel(Erase(listModel{items: []string{"a"}}))) {
		t.Error("mutating a cloned model changed the original")
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error: %v", err)
		}
		var back NodeKind
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", b, err)
		}
		if back != k {
			t.Errorf("round trip %v != %v", back, k)
		}
	}
}
