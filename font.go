package table

// Built-in font atlas layout: ASCII 32-127 as 8x8 glyphs in a 16x6 grid.
// DrawList.AddText emits texture coordinates for this layout.
const (
	glyphSize       = 8
	atlasCols       = 16
	FontAtlasWidth  = atlasCols * glyphSize // 128
	FontAtlasHeight = 6 * glyphSize         // 48
)

// glyphs holds one bit per pixel, MSB first, for each printable character.
// Characters without an entry render blank.
var glyphs = map[byte][glyphSize]byte{
	'0':  {0x3c, 0x66, 0x6e, 0x76, 0x66, 0x66, 0x3c, 0x00},
	'1':  {0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x7e, 0x00},
	'2':  {0x3c, 0x66, 0x06, 0x1c, 0x30, 0x60, 0x7e, 0x00},
	'3':  {0x3c, 0x66, 0x06, 0x1c, 0x06, 0x66, 0x3c, 0x00},
	'4':  {0x0c, 0x1c, 0x3c, 0x6c, 0x7e, 0x0c, 0x0c, 0x00},
	'5':  {0x7e, 0x60, 0x7c, 0x06, 0x06, 0x66, 0x3c, 0x00},
	'6':  {0x1c, 0x30, 0x60, 0x7c, 0x66, 0x66, 0x3c, 0x00},
	'7':  {0x7e, 0x06, 0x0c, 0x18, 0x30, 0x30, 0x30, 0x00},
	'8':  {0x3c, 0x66, 0x66, 0x3c, 0x66, 0x66, 0x3c, 0x00},
	'9':  {0x3c, 0x66, 0x66, 0x3e, 0x06, 0x0c, 0x38, 0x00},
	'A':  {0x18, 0x3c, 0x66, 0x66, 0x7e, 0x66, 0x66, 0x00},
	'B':  {0x7c, 0x66, 0x66, 0x7c, 0x66, 0x66, 0x7c, 0x00},
	'C':  {0x3c, 0x66, 0x60, 0x60, 0x60, 0x66, 0x3c, 0x00},
	'D':  {0x78, 0x6c, 0x66, 0x66, 0x66, 0x6c, 0x78, 0x00},
	'E':  {0x7e, 0x60, 0x60, 0x7c, 0x60, 0x60, 0x7e, 0x00},
	'F':  {0x7e, 0x60, 0x60, 0x7c, 0x60, 0x60, 0x60, 0x00},
	'G':  {0x3c, 0x66, 0x60, 0x6e, 0x66, 0x66, 0x3e, 0x00},
	'H':  {0x66, 0x66, 0x66, 0x7e, 0x66, 0x66, 0x66, 0x00},
	'I':  {0x7e, 0x18, 0x18, 0x18, 0x18, 0x18, 0x7e, 0x00},
	'J':  {0x3e, 0x0c, 0x0c, 0x0c, 0x0c, 0x6c, 0x38, 0x00},
	'K':  {0x66, 0x6c, 0x78, 0x70, 0x78, 0x6c, 0x66, 0x00},
	'L':  {0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x7e, 0x00},
	'M':  {0x63, 0x77, 0x7f, 0x6b, 0x63, 0x63, 0x63, 0x00},
	'N':  {0x66, 0x76, 0x7e, 0x7e, 0x6e, 0x66, 0x66, 0x00},
	'O':  {0x3c, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3c, 0x00},
	'P':  {0x7c, 0x66, 0x66, 0x7c, 0x60, 0x60, 0x60, 0x00},
	'Q':  {0x3c, 0x66, 0x66, 0x66, 0x6a, 0x6c, 0x36, 0x00},
	'R':  {0x7c, 0x66, 0x66, 0x7c, 0x6c, 0x66, 0x66, 0x00},
	'S':  {0x3c, 0x66, 0x60, 0x3c, 0x06, 0x66, 0x3c, 0x00},
	'T':  {0x7e, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00},
	'U':  {0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3c, 0x00},
	'V':  {0x66, 0x66, 0x66, 0x66, 0x66, 0x3c, 0x18, 0x00},
	'W':  {0x63, 0x63, 0x63, 0x6b, 0x7f, 0x77, 0x63, 0x00},
	'X':  {0x66, 0x66, 0x3c, 0x18, 0x3c, 0x66, 0x66, 0x00},
	'Y':  {0x66, 0x66, 0x66, 0x3c, 0x18, 0x18, 0x18, 0x00},
	'Z':  {0x7e, 0x06, 0x0c, 0x18, 0x30, 0x60, 0x7e, 0x00},
	'a':  {0x00, 0x00, 0x3c, 0x06, 0x3e, 0x66, 0x3e, 0x00},
	'b':  {0x60, 0x60, 0x7c, 0x66, 0x66, 0x66, 0x7c, 0x00},
	'c':  {0x00, 0x00, 0x3c, 0x66, 0x60, 0x66, 0x3c, 0x00},
	'd':  {0x06, 0x06, 0x3e, 0x66, 0x66, 0x66, 0x3e, 0x00},
	'e':  {0x00, 0x00, 0x3c, 0x66, 0x7e, 0x60, 0x3c, 0x00},
	'f':  {0x1c, 0x30, 0x30, 0x7c, 0x30, 0x30, 0x30, 0x00},
	'g':  {0x00, 0x00, 0x3e, 0x66, 0x66, 0x3e, 0x06, 0x3c},
	'h':  {0x60, 0x60, 0x7c, 0x66, 0x66, 0x66, 0x66, 0x00},
	'i':  {0x18, 0x00, 0x38, 0x18, 0x18, 0x18, 0x3c, 0x00},
	'j':  {0x0c, 0x00, 0x1c, 0x0c, 0x0c, 0x0c, 0x6c, 0x38},
	'k':  {0x60, 0x60, 0x66, 0x6c, 0x78, 0x6c, 0x66, 0x00},
	'l':  {0x38, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3c, 0x00},
	'm':  {0x00, 0x00, 0x76, 0x7f, 0x6b, 0x6b, 0x63, 0x00},
	'n':  {0x00, 0x00, 0x7c, 0x66, 0x66, 0x66, 0x66, 0x00},
	'o':  {0x00, 0x00, 0x3c, 0x66, 0x66, 0x66, 0x3c, 0x00},
	'p':  {0x00, 0x00, 0x7c, 0x66, 0x66, 0x7c, 0x60, 0x60},
	'q':  {0x00, 0x00, 0x3e, 0x66, 0x66, 0x3e, 0x06, 0x06},
	'r':  {0x00, 0x00, 0x6c, 0x76, 0x60, 0x60, 0x60, 0x00},
	's':  {0x00, 0x00, 0x3e, 0x60, 0x3c, 0x06, 0x7c, 0x00},
	't':  {0x30, 0x30, 0x7c, 0x30, 0x30, 0x30, 0x1c, 0x00},
	'u':  {0x00, 0x00, 0x66, 0x66, 0x66, 0x66, 0x3e, 0x00},
	'v':  {0x00, 0x00, 0x66, 0x66, 0x66, 0x3c, 0x18, 0x00},
	'w':  {0x00, 0x00, 0x63, 0x6b, 0x6b, 0x7f, 0x36, 0x00},
	'x':  {0x00, 0x00, 0x66, 0x3c, 0x18, 0x3c, 0x66, 0x00},
	'y':  {0x00, 0x00, 0x66, 0x66, 0x66, 0x3e, 0x06, 0x3c},
	'z':  {0x00, 0x00, 0x7e, 0x0c, 0x18, 0x30, 0x7e, 0x00},
	' ':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'.':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00},
	',':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x30},
	':':  {0x00, 0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x00},
	';':  {0x00, 0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x30},
	'=':  {0x00, 0x00, 0x7e, 0x00, 0x7e, 0x00, 0x00, 0x00},
	'-':  {0x00, 0x00, 0x00, 0x7e, 0x00, 0x00, 0x00, 0x00},
	'+':  {0x00, 0x18, 0x18, 0x7e, 0x18, 0x18, 0x00, 0x00},
	'[':  {0x1c, 0x18, 0x18, 0x18, 0x18, 0x18, 0x1c, 0x00},
	']':  {0x38, 0x18, 0x18, 0x18, 0x18, 0x18, 0x38, 0x00},
	'>':  {0x60, 0x30, 0x18, 0x0c, 0x18, 0x30, 0x60, 0x00},
	'<':  {0x06, 0x0c, 0x18, 0x30, 0x18, 0x0c, 0x06, 0x00},
	'/':  {0x02, 0x06, 0x0c, 0x18, 0x30, 0x60, 0x40, 0x00},
	'\\': {0x40, 0x60, 0x30, 0x18, 0x0c, 0x06, 0x02, 0x00},
	'_':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7e, 0x00},
	'(':  {0x0c, 0x18, 0x30, 0x30, 0x30, 0x18, 0x0c, 0x00},
	')':  {0x30, 0x18, 0x0c, 0x0c, 0x0c, 0x18, 0x30, 0x00},
	'*':  {0x00, 0x66, 0x3c, 0xff, 0x3c, 0x66, 0x00, 0x00},
	'|':  {0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00},
	'?':  {0x3c, 0x66, 0x06, 0x1c, 0x18, 0x00, 0x18, 0x00},
	'!':  {0x18, 0x18, 0x18, 0x18, 0x18, 0x00, 0x18, 0x00},
	'@':  {0x3c, 0x66, 0x6e, 0x6a, 0x6e, 0x60, 0x3c, 0x00},
	'#':  {0x24, 0x7e, 0x24, 0x24, 0x7e, 0x24, 0x00, 0x00},
	'$':  {0x18, 0x3e, 0x60, 0x3c, 0x06, 0x7c, 0x18, 0x00},
	'%':  {0x62, 0x64, 0x08, 0x10, 0x26, 0x46, 0x00, 0x00},
	'^':  {0x18, 0x3c, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00},
	'&':  {0x38, 0x6c, 0x38, 0x76, 0xdc, 0xcc, 0x76, 0x00},
	'\'': {0x18, 0x18, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00},
	'"':  {0x66, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'`':  {0x30, 0x18, 0x0c, 0x00, 0x00, 0x00, 0x00, 0x00},
	'~':  {0x00, 0x00, 0x76, 0xdc, 0x00, 0x00, 0x00, 0x00},
	'{':  {0x0e, 0x18, 0x18, 0x70, 0x18, 0x18, 0x0e, 0x00},
	'}':  {0x70, 0x18, 0x18, 0x0e, 0x18, 0x18, 0x70, 0x00},
}

// FontAtlas rasterizes the built-in font into a single-channel image of
// FontAtlasWidth x FontAtlasHeight bytes, one byte of coverage per pixel.
func FontAtlas() []byte {
	data := make([]byte, FontAtlasWidth*FontAtlasHeight)

	for ch, rows := range glyphs {
		if ch < 32 || ch > 127 {
			continue
		}
		idx := int(ch - 32)
		ox := (idx % atlasCols) * glyphSize
		oy := (idx / atlasCols) * glyphSize

		for y, bits := range rows {
			for x := 0; x < glyphSize; x++ {
				if bits&(0x80>>x) != 0 {
					data[(oy+y)*FontAtlasWidth+ox+x] = 255
				}
			}
		}
	}

	return data
}
