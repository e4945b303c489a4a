package table

// LayoutType defines the direction children are placed in.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Children stack top to bottom
	LayoutHorizontal                   // Children sit side by side
)

// layoutFor returns how children of a node of kind k are arranged.
func layoutFor(k Kind) LayoutType {
	if k == KindRow {
		return LayoutHorizontal
	}
	return LayoutVertical
}

// Layout positions root and all of its descendants starting at origin and
// returns the size of root. Cells take their own width and one row height;
// rows place cells left to right; every other node stacks its children
// vertically and is as wide as its widest child.
func Layout(root *Node, origin Vec2, s Style) Vec2 {
	return layoutNode(root, origin, s)
}

func layoutNode(n *Node, pos Vec2, s Style) Vec2 {
	if n.kind == KindCell {
		size := Vec2{X: maxf(n.width, 0), Y: s.RowHeight()}
		n.rect = Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
		return size
	}

	size := layoutChildren(n, pos, s)
	if n.kind == KindRow && len(n.children) == 0 {
		size.Y = s.RowHeight()
	}
	n.rect = Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	return size
}

// layoutChildren places the children of n and returns their bounding size.
func layoutChildren(n *Node, pos Vec2, s Style) Vec2 {
	var size Vec2
	cursor := pos
	horizontal := layoutFor(n.kind) == LayoutHorizontal

	for _, c := range n.children {
		cs := layoutNode(c, cursor, s)
		if horizontal {
			cursor.X += cs.X
			size.X += cs.X
			size.Y = maxf(size.Y, cs.Y)
		} else {
			cursor.Y += cs.Y
			size.Y += cs.Y
			size.X = maxf(size.X, cs.X)
		}
	}
	return size
}
