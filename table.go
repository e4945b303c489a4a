package table

import "fmt"

// Table is a header row of fixed-width columns above a body of data rows.
//
// The column set is fixed at construction. Rows are appended with Push and
// removed all at once with Clear; the header row lives as long as the table.
// T is the payload type carried by body cells.
//
// A Table is not safe for concurrent use. Drive it from the same goroutine
// that owns its surface.
type Table[T any] struct {
	surface Surface
	parent  Element
	elem    Element // container
	header  Element
	body    Element
	state   lifecycle

	cols []Column
	head *Row[string]
	rows []*Row[T]
}

// New builds a table inside parent. The header row shows the column titles
// and is not clickable.
func New[T any](surface Surface, parent Element, cols ...Column) *Table[T] {
	t := &Table[T]{
		surface: surface,
		parent:  parent,
		elem:    surface.CreateElement(KindTable),
		header:  surface.CreateElement(KindHeader),
		body:    surface.CreateElement(KindBody),
		cols:    make([]Column, len(cols)),
	}
	copy(t.cols, cols)

	t.setHeader()

	t.elem.AppendChild(t.header)
	t.elem.AppendChild(t.body)
	parent.AppendChild(t.elem)

	return t
}

func (t *Table[T]) setHeader() {
	t.head = newRow[string](t.surface, t.header, 0, nil)
	for i, c := range t.cols {
		if c.Width() <= 0 {
			logger.Warn("non-positive column width", "column", i, "title", c.Title(), "width", c.Width())
		}
		t.head.push(NewKeyValue(c.Title(), c.Title()), c)
	}
}

// NumCols returns the number of columns.
func (t *Table[T]) NumCols() int {
	return len(t.cols)
}

// Columns returns a copy of the column definitions.
func (t *Table[T]) Columns() []Column {
	out := make([]Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// Header returns the header row.
func (t *Table[T]) Header() *Row[string] {
	return t.head
}

// Len returns the number of body rows.
func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Row returns the i-th body row.
func (t *Table[T]) Row(i int) (*Row[T], bool) {
	if i < 0 || i >= len(t.rows) {
		return nil, false
	}
	return t.rows[i], true
}

// Push appends a body row with one cell per value, in column order.
// onClick may be nil; otherwise it runs whenever the row is clicked.
//
// values must hold exactly one entry per column. A mismatched call is logged,
// returns an error wrapping ErrColumnCount and leaves the table untouched.
func (t *Table[T]) Push(values []KeyValue[T], onClick func()) error {
	if t.state == closed {
		logger.Error("push on closed table")
		return ErrClosed
	}
	if len(values) != len(t.cols) {
		logger.Error("invalid number of columns", "got", len(values), "want", len(t.cols))
		return fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(values), len(t.cols))
	}

	r := newRow[T](t.surface, t.body, len(t.rows), onClick)
	for i, kv := range values {
		r.push(kv, t.cols[i])
	}
	t.rows = append(t.rows, r)

	logger.Debug("row pushed", "index", r.Index(), "cells", r.Len(), "clickable", onClick != nil)
	return nil
}

// Clear closes every body row, last row first. Each row is fully torn down
// before the next one starts. The header is left alone, and the next Push
// starts again at row index 0.
func (t *Table[T]) Clear() {
	n := len(t.rows)
	for len(t.rows) > 0 {
		last := len(t.rows) - 1
		r := t.rows[last]
		t.rows[last] = nil
		t.rows = t.rows[:last]
		r.close()
	}

	if n > 0 {
		logger.Debug("table cleared", "rows", n)
	}
}

// Close clears the body, closes the header and detaches the table from its
// parent. Calling Close again does nothing.
func (t *Table[T]) Close() {
	if t.state == closed {
		return
	}

	t.Clear()
	t.head.close()
	t.parent.RemoveChild(t.elem)
	t.elem = nil
	t.state = closed
}
