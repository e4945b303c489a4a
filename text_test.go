package table

import "testing"

func TestTruncateText(t *testing.T) {
	s := DefaultStyle() // 8px glyphs

	tests := []struct {
		name     string
		text     string
		maxWidth float32
		want     string
	}{
		{"fits", "Alice", 100, "Alice"},
		{"exact", "Alice", 40, "Alice"},
		{"truncated", "Alice", 30, "A.."},
		{"suffix only", "Alice", 16, ".."},
		{"nothing fits", "Alice", 10, ""},
		{"empty", "", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateText(s, tt.text, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateText(%q, %v) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestMeasureTextCountsRunes(t *testing.T) {
	s := DefaultStyle()
	s.FontScale = 2
	if got := s.MeasureText("héllo").X; got != 80 {
		t.Errorf("expected 80, got %v", got)
	}
}
