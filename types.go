package table

// Vec2 is a point or a size in framebuffer pixels.
type Vec2 struct {
	X, Y float32
}

// Rect is the box Layout assigns to a node.
type Rect struct {
	X, Y float32 // Top-left corner
	W, H float32
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so adjacent rows never both contain a point.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Vertex is one corner of a painted quad.
// Field order matches the attribute layout of the OpenGL backend.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // packed, see RGBA
}

// DrawCmd is a run of indices drawn with one texture and clip rectangle.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 = untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// Packed colors, 0xAABBGGRR.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorTransparent uint32 = 0x00000000
)

// RGBA packs 8-bit components into a color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA splits a packed color into its components.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
