package table

// lifecycle is the two-state tag shared by rows and cells.
// The only transition is attached -> closed.
type lifecycle uint8

const (
	attached lifecycle = iota
	closed
)

// Cell owns one element inside a row.
type Cell[T any] struct {
	parent Element
	elem   Element
	state  lifecycle

	kv     KeyValue[T]
	coords Coords
	width  float32
}

// newCell creates the cell element, labels it with the key and attaches it
// to parent.
func newCell[T any](s Surface, parent Element, kv KeyValue[T], coords Coords, width float32) *Cell[T] {
	e := s.CreateElement(KindCell)
	e.SetText(kv.Key())
	e.SetWidth(width)
	parent.AppendChild(e)

	return &Cell[T]{
		parent: parent,
		elem:   e,
		kv:     kv,
		coords: coords,
		width:  width,
	}
}

// KeyValue returns the label/value pair the cell was created with.
func (c *Cell[T]) KeyValue() KeyValue[T] {
	return c.kv
}

// Coords returns the position the cell was created at.
func (c *Cell[T]) Coords() Coords {
	return c.coords
}

// Width returns the cell width in pixels.
func (c *Cell[T]) Width() float32 {
	return c.width
}

// Closed reports whether the cell has been removed from the surface.
func (c *Cell[T]) Closed() bool {
	return c.state == closed
}

// close detaches the cell element. Calling close again does nothing.
// Only the owning row tears its cells down.
func (c *Cell[T]) close() {
	if c.state == closed {
		return
	}

	c.parent.RemoveChild(c.elem)
	c.elem = nil
	c.state = closed
}
