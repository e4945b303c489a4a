// Package term paints table documents as terminal text.
//
// Painter turns the pixel layout of a table.Document into fixed-width text
// lines: one line per row, header rows first. HitRow maps a terminal cell back
// to the row node printed there so mouse clicks can be dispatched with
// Node.Click.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/table"
)

const (
	ellipsis  = ".."
	marker    = ">"
	noMarker  = " "
	gutter    = 2 // marker column plus one space
	defaultPx = 8
)

// Painter renders table documents as text.
type Painter struct {
	// CellWidth is how many pixels of column width make one terminal column.
	CellWidth float32

	// Separator goes between cells of a row.
	Separator string

	Header  lipgloss.Style
	Body    lipgloss.Style
	Hovered lipgloss.Style
	Marker  lipgloss.Style
}

// NewPainter returns a Painter for table.DefaultStyle.
func NewPainter() *Painter {
	return NewStylePainter(table.DefaultStyle())
}

// NewStylePainter returns a Painter whose colors follow s. One glyph of the
// bitmap font (s.CharWidth pixels) becomes one terminal column.
func NewStylePainter(s table.Style) *Painter {
	per := s.CharWidth
	if per <= 0 {
		per = defaultPx
	}

	header := s.HeaderTextColor
	if header == 0 {
		header = s.TextColor
	}

	return &Painter{
		CellWidth: per,
		Separator: " ",
		Header:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(hexColor(header)),
		Body:      lipgloss.NewStyle().Foreground(hexColor(s.TextColor)),
		Hovered:   lipgloss.NewStyle().Reverse(true),
		Marker:    lipgloss.NewStyle().Foreground(hexColor(header)),
	}
}

// hexColor converts a packed table color to a lipgloss color, dropping alpha.
func hexColor(c uint32) lipgloss.Color {
	r, g, b, _ := table.UnpackRGBA(c)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// Render returns root's rows as newline-separated lines.
func (p *Painter) Render(root *table.Node) string {
	return p.RenderHover(root, -1)
}

// RenderHover is Render with line hover drawn in the Hovered style when the
// row printed there is clickable. A negative hover highlights nothing.
func (p *Painter) RenderHover(root *table.Node, hover int) string {
	rows := Rows(root)
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		lines = append(lines, p.renderRow(row, i == hover))
	}
	return strings.Join(lines, "\n")
}

func (p *Painter) renderRow(row *table.Node, hovered bool) string {
	header := isHeader(row)

	mark := noMarker
	if row.Clickable() {
		mark = p.Marker.Render(marker)
	}

	cells := row.Children()
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		parts = append(parts, fit(c.Text(), p.columns(c.Width())))
	}
	text := strings.Join(parts, p.Separator)

	switch {
	case header:
		text = p.Header.Render(text)
	case hovered && row.Clickable():
		text = p.Hovered.Render(text)
	default:
		text = p.Body.Render(text)
	}

	return mark + " " + text
}

// HitRow returns the row printed at terminal cell (x, y), or nil.
// Line 0 is the first header row.
func (p *Painter) HitRow(root *table.Node, x, y int) *table.Node {
	rows := Rows(root)
	if y < 0 || y >= len(rows) || x < 0 {
		return nil
	}
	row := rows[y]
	if x >= p.lineWidth(row) {
		return nil
	}
	return row
}

// lineWidth is the printed width of a row in terminal columns.
func (p *Painter) lineWidth(row *table.Node) int {
	w := gutter
	cells := row.Children()
	for i, c := range cells {
		if i > 0 {
			w += runewidth.StringWidth(p.Separator)
		}
		w += p.columns(c.Width())
	}
	return w
}

// columns converts a pixel width to terminal columns.
func (p *Painter) columns(px float32) int {
	per := p.CellWidth
	if per <= 0 {
		per = defaultPx
	}
	if px <= 0 {
		return 0
	}
	return int(px / per)
}

// fit truncates text to exactly width terminal columns, padding with spaces.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	tail := ellipsis
	if width <= runewidth.StringWidth(ellipsis) {
		tail = ""
	}
	return runewidth.FillRight(runewidth.Truncate(text, width, tail), width)
}

// Rows returns every row node under root in print order.
func Rows(root *table.Node) []*table.Node {
	var rows []*table.Node
	root.Walk(func(n *table.Node) bool {
		if n.Kind() == table.KindRow {
			rows = append(rows, n)
			return false
		}
		return true
	})
	return rows
}

func isHeader(row *table.Node) bool {
	parent := row.Parent()
	return parent != nil && parent.Kind() == table.KindHeader
}
