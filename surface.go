package table

// Kind identifies what an element represents in the table structure.
// Surfaces use it to pick how an element is laid out and drawn.
type Kind uint8

const (
	KindRoot   Kind = iota // Top-level container owned by the host
	KindTable              // One table: header + body
	KindHeader             // Holds the header row
	KindBody               // Holds the data rows
	KindRow                // Horizontal run of cells
	KindCell               // Single text slot with a fixed width
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindTable:
		return "table"
	case KindHeader:
		return "header"
	case KindBody:
		return "body"
	case KindRow:
		return "row"
	case KindCell:
		return "cell"
	default:
		return "unknown"
	}
}

// Element is a node on a visual surface.
// The table only ever writes to elements; it never reads their state back.
type Element interface {
	AppendChild(child Element)
	RemoveChild(child Element)
	SetText(text string)
	SetWidth(px float32)
	SetOnClick(fn func())
}

// Surface creates elements. A Document is the bundled implementation;
// any other drawing backend can provide its own.
type Surface interface {
	CreateElement(kind Kind) Element
}
