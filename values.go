package table

import "fmt"

// KeyValue pairs the label a cell displays with the value it stands for.
// Only the key is ever rendered; the value travels with the cell so callers
// can read it back, e.g. from a row click handler.
type KeyValue[T any] struct {
	key   string
	value T
}

// NewKeyValue creates a KeyValue.
func NewKeyValue[T any](key string, value T) KeyValue[T] {
	return KeyValue[T]{key: key, value: value}
}

// Key returns the display text.
func (kv KeyValue[T]) Key() string {
	return kv.key
}

// Value returns the payload.
func (kv KeyValue[T]) Value() T {
	return kv.value
}

// Column describes one table column. The title doubles as the header label.
type Column struct {
	title string
	width float32 // pixels
}

// NewColumn creates a column with a fixed pixel width.
func NewColumn(title string, width float32) Column {
	return Column{title: title, width: width}
}

// Title returns the column title.
func (c Column) Title() string {
	return c.title
}

// Width returns the column width in pixels.
func (c Column) Width() float32 {
	return c.width
}

// Coords is the (row, column) position a cell was created at.
// Coords are assigned once and never recomputed.
type Coords struct {
	row    int
	column int
}

// NewCoords creates a Coords.
func NewCoords(row, column int) Coords {
	return Coords{row: row, column: column}
}

// Row returns the row index.
func (c Coords) Row() int {
	return c.row
}

// Column returns the column index.
func (c Coords) Column() int {
	return c.column
}

func (c Coords) String() string {
	return fmt.Sprintf("(%d,%d)", c.row, c.column)
}
