package table

// Paint draws a laid-out node tree into dl. Call Layout first.
// fontTex is the bitmap font texture; hover is the mouse position used to
// highlight clickable rows.
//
// Backgrounds and borders are emitted before any text so the draw list
// switches texture once. Body rows outside the current clip rectangle of dl
// are skipped.
func Paint(dl *DrawList, root *Node, s Style, fontTex uint32, hover Vec2) {
	dl.SetTexture(0)
	paintTree(dl, root, func(n *Node, index int) {
		paintBackground(dl, n, index, s, hover)
	})

	dl.SetTexture(fontTex)
	paintTree(dl, root, func(n *Node, _ int) {
		if n.kind == KindCell {
			paintCellText(dl, n, s)
		}
	})
}

// paintTree calls fn for every node under root, parents first, with the
// node's position among its siblings. Bodies only visit visible rows.
func paintTree(dl *DrawList, n *Node, fn func(n *Node, index int)) {
	fn(n, 0)
	paintChildren(dl, n, fn)
}

func paintChildren(dl *DrawList, n *Node, fn func(n *Node, index int)) {
	start, end := 0, len(n.children)
	if n.kind == KindBody {
		clip := NewRowClipper(n.children, dl.currentClip[1], dl.currentClip[3])
		start, end = clip.StartIdx, clip.EndIdx
	}

	for i := start; i < end; i++ {
		c := n.children[i]
		fn(c, i)
		paintChildren(dl, c, fn)
	}
}

func paintBackground(dl *DrawList, n *Node, index int, s Style, hover Vec2) {
	r := n.rect

	switch n.kind {
	case KindTable:
		dl.AddRect(r.X, r.Y, r.W, r.H, s.BackgroundColor)
		if s.BorderSize > 0 {
			dl.AddRectOutline(r.X, r.Y, r.W, r.H, s.BorderColor, s.BorderSize)
		}

	case KindHeader:
		dl.AddRect(r.X, r.Y, r.W, r.H, s.HeaderBgColor)

	case KindRow:
		if n.parent == nil || n.parent.kind != KindBody {
			return
		}
		if n.onClick != nil && r.Contains(hover) {
			dl.AddRect(r.X, r.Y, r.W, r.H, s.HoveredBgColor)
		} else if s.RowBgAltColor != 0 && index%2 == 1 {
			dl.AddRect(r.X, r.Y, r.W, r.H, s.RowBgAltColor)
		}

	case KindCell:
		// Vertical border between columns
		if s.BorderSize > 0 && n.parent != nil && index < len(n.parent.children)-1 {
			dl.AddRect(r.X+r.W-s.BorderSize, r.Y, s.BorderSize, r.H, s.BorderColor)
		}
	}
}

func paintCellText(dl *DrawList, n *Node, s Style) {
	r := n.rect
	color := s.TextColor
	if row := n.parent; row != nil && row.parent != nil && row.parent.kind == KindHeader {
		color = s.headerText()
	}

	text := TruncateText(s, n.text, r.W-2*s.CellPadding)
	if text == "" {
		return
	}

	dl.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	dl.AddText(r.X+s.CellPadding, r.Y+s.RowPadding, text, color, s.FontScale, s.CharWidth, s.CharHeight)
	dl.PopClipRect()
}
