package table

import "sort"

// RowClipper gives the range of stacked rows that intersect a vertical span.
// Rows must be laid out top to bottom without overlap, as Layout places the
// children of a body.
//
// Usage:
//
//	c := NewRowClipper(body.Children(), clipTop, clipBottom)
//	for i := c.StartIdx; i < c.EndIdx; i++ {
//	    // draw rows[i]
//	}
type RowClipper struct {
	StartIdx int // First visible row (inclusive)
	EndIdx   int // Last visible row (exclusive)
}

// NewRowClipper finds the rows of rows that overlap [top, bottom).
func NewRowClipper(rows []*Node, top, bottom float32) RowClipper {
	if len(rows) == 0 || bottom <= top {
		return RowClipper{}
	}

	start := sort.Search(len(rows), func(i int) bool {
		r := rows[i].rect
		return r.Y+r.H > top
	})
	end := sort.Search(len(rows), func(i int) bool {
		return rows[i].rect.Y >= bottom
	})
	if end < start {
		end = start
	}

	return RowClipper{StartIdx: start, EndIdx: end}
}

// ShouldRender returns true if row idx is in the visible range.
func (c RowClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// VisibleCount returns the number of rows in the visible range.
func (c RowClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}
