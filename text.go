package table

import "unicode/utf8"

// MeasureText returns the size of text drawn with the bitmap font.
// Every glyph is one fixed-size cell.
func (s Style) MeasureText(text string) Vec2 {
	n := float32(utf8.RuneCountInString(text))
	return Vec2{X: n * s.CharWidth * s.FontScale, Y: s.CharHeight * s.FontScale}
}

// TruncateText shortens text with a ".." suffix so it fits in maxWidth.
func TruncateText(s Style, text string, maxWidth float32) string {
	return TruncateTextWithSuffix(s, text, maxWidth, "..")
}

// TruncateTextWithSuffix shortens text so that text+suffix fits in maxWidth.
// Text that already fits is returned unchanged. If not even the suffix
// fits, the empty string is returned.
func TruncateTextWithSuffix(s Style, text string, maxWidth float32, suffix string) string {
	if s.MeasureText(text).X <= maxWidth {
		return text
	}

	targetWidth := maxWidth - s.MeasureText(suffix).X
	if targetWidth < 0 {
		return ""
	}

	runes := []rune(text)
	for len(runes) > 0 {
		if s.MeasureText(string(runes)).X <= targetWidth {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}

	return suffix
}
