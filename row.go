package table

// Row owns an ordered run of cells and an optional click handler.
type Row[T any] struct {
	surface Surface
	parent  Element
	elem    Element
	state   lifecycle

	index   int
	cells   []*Cell[T]
	onClick func()
}

// newRow creates the row element, wires onClick (if any) and attaches the
// row to parent. Cells are added with push.
func newRow[T any](s Surface, parent Element, index int, onClick func()) *Row[T] {
	e := s.CreateElement(KindRow)
	if onClick != nil {
		e.SetOnClick(onClick)
	}
	parent.AppendChild(e)

	return &Row[T]{
		surface: s,
		parent:  parent,
		elem:    e,
		index:   index,
		onClick: onClick,
	}
}

// push appends a cell for kv using col's width.
// A closed row ignores the call.
func (r *Row[T]) push(kv KeyValue[T], col Column) {
	if r.state == closed {
		return
	}

	coords := NewCoords(r.index, len(r.cells))
	r.cells = append(r.cells, newCell(r.surface, r.elem, kv, coords, col.Width()))
}

// Index returns the row index assigned at creation.
func (r *Row[T]) Index() int {
	return r.index
}

// Len returns the number of live cells.
func (r *Row[T]) Len() int {
	return len(r.cells)
}

// Cell returns the i-th cell.
func (r *Row[T]) Cell(i int) (*Cell[T], bool) {
	if i < 0 || i >= len(r.cells) {
		return nil, false
	}
	return r.cells[i], true
}

// Cells returns a copy of the row's cells in column order.
func (r *Row[T]) Cells() []*Cell[T] {
	out := make([]*Cell[T], len(r.cells))
	copy(out, r.cells)
	return out
}

// Clickable reports whether the row was created with a click handler.
func (r *Row[T]) Clickable() bool {
	return r.onClick != nil
}

// Closed reports whether the row has been torn down.
func (r *Row[T]) Closed() bool {
	return r.state == closed
}

// close closes every cell, then detaches the row element.
// Calling close again does nothing. Only the owning table tears rows down,
// so the header and the body stay consistent with Len and Coords.
func (r *Row[T]) close() {
	if r.state == closed {
		return
	}

	for len(r.cells) > 0 {
		last := len(r.cells) - 1
		c := r.cells[last]
		r.cells[last] = nil
		r.cells = r.cells[:last]
		c.close()
	}

	if r.onClick != nil {
		r.elem.SetOnClick(nil)
	}
	r.parent.RemoveChild(r.elem)
	r.elem = nil
	r.state = closed
}
