package table

import "testing"

func TestFontAtlasPlacesGlyphs(t *testing.T) {
	data := FontAtlas()
	if len(data) != FontAtlasWidth*FontAtlasHeight {
		t.Fatalf("atlas size = %d, want %d", len(data), FontAtlasWidth*FontAtlasHeight)
	}

	// '|' is index 92: column 12, row 5. Its stem is pixels 3 and 4.
	ox, oy := 12*glyphSize, 5*glyphSize
	for y := 0; y < 7; y++ {
		for x := 0; x < glyphSize; x++ {
			got := data[(oy+y)*FontAtlasWidth+ox+x]
			want := byte(0)
			if x == 3 || x == 4 {
				want = 255
			}
			if got != want {
				t.Fatalf("'|' pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}

	// Space is blank.
	for y := 0; y < glyphSize; y++ {
		for x := 0; x < glyphSize; x++ {
			if data[y*FontAtlasWidth+x] != 0 {
				t.Fatalf("space pixel (%d,%d) set", x, y)
			}
		}
	}
}

func TestAddTextUsesAtlasCell(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddText(0, 0, "!", ColorWhite, 1, 8, 8)
	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("vertices = %d, want 4", len(dl.VtxBuffer))
	}
	// '!' is index 1: second column of the first row.
	if got := dl.VtxBuffer[0].TexCoord; got != [2]float32{8.0 / 128, 0} {
		t.Errorf("top-left uv = %v", got)
	}
	if got := dl.VtxBuffer[2].TexCoord; got != [2]float32{16.0 / 128, 8.0 / 48} {
		t.Errorf("bottom-right uv = %v", got)
	}
}
