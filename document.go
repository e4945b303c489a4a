package table

// Document is an in-memory retained element tree that implements Surface.
// Hosts lay it out and paint it every frame; tests inspect it directly.
type Document struct {
	root *Node
}

// NewDocument creates a document with an empty root node.
func NewDocument() *Document {
	return &Document{root: &Node{kind: KindRoot}}
}

// Root returns the root node. Tables are usually built directly under it.
func (d *Document) Root() *Node {
	return d.root
}

// CreateElement returns a new detached node.
func (d *Document) CreateElement(kind Kind) Element {
	return &Node{kind: kind}
}

// Node is one element of a Document.
type Node struct {
	kind     Kind
	text     string
	width    float32
	onClick  func()
	parent   *Node
	children []*Node

	// Set by Layout
	rect Rect
}

var _ Element = (*Node)(nil)

// AppendChild adds child as the last child of n. A child that already has a
// parent is moved. Elements from other surfaces are ignored.
func (n *Node) AppendChild(child Element) {
	c, ok := child.(*Node)
	if !ok || c == nil {
		logger.Debug("append of foreign element ignored", "parent", n.kind)
		return
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveChild detaches child from n. Removing a node that is not a child of
// n does nothing.
func (n *Node) RemoveChild(child Element) {
	c, ok := child.(*Node)
	if !ok || c == nil || c.parent != n {
		return
	}
	for i, cur := range n.children {
		if cur == c {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			break
		}
	}
	c.parent = nil
}

// SetText sets the displayed text.
func (n *Node) SetText(text string) {
	n.text = text
}

// SetWidth sets the width in pixels.
func (n *Node) SetWidth(px float32) {
	n.width = px
}

// SetOnClick sets the click handler. nil removes it.
func (n *Node) SetOnClick(fn func()) {
	n.onClick = fn
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Text returns the displayed text.
func (n *Node) Text() string { return n.text }

// Width returns the width set with SetWidth.
func (n *Node) Width() float32 { return n.width }

// Parent returns the parent node, or nil for detached and root nodes.
func (n *Node) Parent() *Node { return n.parent }

// Rect returns the rectangle assigned by the last Layout call.
func (n *Node) Rect() Rect { return n.rect }

// Clickable reports whether the node has a click handler.
func (n *Node) Clickable() bool { return n.onClick != nil }

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Count returns how many nodes of kind are in the subtree rooted at n.
func (n *Node) Count(kind Kind) int {
	count := 0
	n.Walk(func(c *Node) bool {
		if c.kind == kind {
			count++
		}
		return true
	})
	return count
}

// HitTest returns the deepest node whose rectangle contains p, or nil.
// Later siblings win over earlier ones.
func (n *Node) HitTest(p Vec2) *Node {
	if !n.rect.Contains(p) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(p); hit != nil {
			return hit
		}
	}
	return n
}

// Click runs the handler of n or of its nearest ancestor that has one.
// Returns false if nothing handled the click.
func (n *Node) Click() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.onClick != nil {
			cur.onClick()
			return true
		}
	}
	return false
}

// Dispatch delivers a click at p to the node under it.
func (d *Document) Dispatch(p Vec2) bool {
	hit := d.root.HitTest(p)
	if hit == nil {
		return false
	}
	return hit.Click()
}
