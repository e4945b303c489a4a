package table

import "testing"

func TestNodeAppendMovesChild(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement(KindBody).(*Node)
	b := doc.CreateElement(KindBody).(*Node)
	c := doc.CreateElement(KindRow).(*Node)

	a.AppendChild(c)
	b.AppendChild(c)

	if a.Len() != 0 {
		t.Errorf("expected c removed from a, a has %d children", a.Len())
	}
	if b.Len() != 1 || c.Parent() != b {
		t.Error("expected c to be a child of b")
	}
}

func TestNodeRemoveChild(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	first := doc.CreateElement(KindRow).(*Node)
	second := doc.CreateElement(KindRow).(*Node)
	stranger := doc.CreateElement(KindRow).(*Node)

	root.AppendChild(first)
	root.AppendChild(second)

	root.RemoveChild(stranger)
	if root.Len() != 2 {
		t.Fatalf("removing a non-child changed the tree: %d children", root.Len())
	}

	root.RemoveChild(first)
	root.RemoveChild(first)
	if root.Len() != 1 || root.Children()[0] != second {
		t.Errorf("expected only second to remain, got %d children", root.Len())
	}
	if first.Parent() != nil {
		t.Error("removed node should have no parent")
	}
}

type foreignElement struct{}

func (foreignElement) AppendChild(Element) {}
func (foreignElement) RemoveChild(Element) {}
func (foreignElement) SetText(string)      {}
func (foreignElement) SetWidth(float32)    {}
func (foreignElement) SetOnClick(func())   {}

func TestNodeIgnoresForeignElements(t *testing.T) {
	doc := NewDocument()
	doc.Root().AppendChild(foreignElement{})
	doc.Root().RemoveChild(foreignElement{})

	if doc.Root().Len() != 0 {
		t.Errorf("expected foreign element to be ignored, got %d children", doc.Root().Len())
	}
}

func TestNodeClickBubbles(t *testing.T) {
	doc := NewDocument()
	row := doc.CreateElement(KindRow).(*Node)
	cell := doc.CreateElement(KindCell).(*Node)
	row.AppendChild(cell)
	doc.Root().AppendChild(row)

	if cell.Click() {
		t.Error("click without any handler should not be handled")
	}

	clicks := 0
	row.SetOnClick(func() { clicks++ })
	if !cell.Click() {
		t.Error("click on cell should bubble to row")
	}
	if clicks != 1 {
		t.Errorf("expected 1 click, got %d", clicks)
	}

	row.SetOnClick(nil)
	if row.Clickable() {
		t.Error("SetOnClick(nil) should remove the handler")
	}
}

func TestWalkSkipsSubtree(t *testing.T) {
	doc := NewDocument()
	row := doc.CreateElement(KindRow).(*Node)
	row.AppendChild(doc.CreateElement(KindCell))
	row.AppendChild(doc.CreateElement(KindCell))
	doc.Root().AppendChild(row)

	visited := 0
	doc.Root().Walk(func(n *Node) bool {
		visited++
		return n.Kind() != KindRow
	})
	if visited != 2 {
		t.Errorf("expected root and row only, visited %d", visited)
	}
	if got := doc.Root().Count(KindCell); got != 2 {
		t.Errorf("expected 2 cells, got %d", got)
	}
}
