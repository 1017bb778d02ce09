package growstr

import "testing"

func TestString_Search(t *testing.T) {
	s := mustFromString(t, "abc世界abc")

	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"IndexByte", s.IndexByte('b'), 1},
		{"IndexByte missing", s.IndexByte('z'), -1},
		{"LastIndexByte", s.LastIndexByte('b'), 10},
		{"IndexRune", s.IndexRune('界'), 6},
		{"IndexRune missing", s.IndexRune('x'), -1},
		{"Index", s.Index("世界"), 3},
		{"Index empty", s.Index(""), 0},
		{"LastIndex", s.LastIndex("abc"), 9},
		{"LastIndex missing", s.LastIndex("abd"), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, tt.got)
			}
		})
	}
}

func TestString_PrefixSuffix(t *testing.T) {
	s := mustFromString(t, "こんにちは world")

	if !s.HasPrefix("こんにちは") || s.HasPrefix("world") {
		t.Error("HasPrefix mismatch")
	}
	if !s.HasSuffix("world") || s.HasSuffix("こんにちは") {
		t.Error("HasSuffix mismatch")
	}
	if !s.HasPrefix("") || !s.HasSuffix("") {
		t.Error("every string has the empty prefix and suffix")
	}
	if !s.Contains("ちは w") || s.Contains("xyz") {
		t.Error("Contains mismatch")
	}
}
