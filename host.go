package table

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Host owns a Document and turns it into frames: it lays the document out,
// delivers mouse clicks to clickable rows and paints the result.
type Host struct {
	renderer Renderer
	style    Style
	origin   Vec2
	doc      *Document
	size     Vec2 // laid-out size of the last frame
}

// HostOption configures a Host instance.
type HostOption func(*Host)

// WithStyle sets the host style.
func WithStyle(style Style) HostOption {
	return func(h *Host) { h.style = style }
}

// WithOrigin sets the top-left position the document is laid out at.
func WithOrigin(origin Vec2) HostOption {
	return func(h *Host) { h.origin = origin }
}

// WithDocument uses an existing document instead of a fresh one.
func WithDocument(doc *Document) HostOption {
	return func(h *Host) {
		if doc != nil {
			h.doc = doc
		}
	}
}

// NewHost creates a new Host.
func NewHost(renderer Renderer, opts ...HostOption) *Host {
	h := &Host{
		renderer: renderer,
		style:    DefaultStyle(),
		doc:      NewDocument(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Document returns the document tables should be built into.
func (h *Host) Document() *Document {
	return h.doc
}

// Frame lays out the document, dispatches a left click from input (if one
// happened this frame), paints and renders. input may be nil.
func (h *Host) Frame(input *InputState, displaySize Vec2) error {
	root := h.doc.Root()
	h.size = Layout(root, h.origin, h.style)

	hover := Vec2{X: -1e9, Y: -1e9}
	if input != nil {
		hover = input.MousePos()
		if input.MouseClicked(MouseButtonLeft) && h.doc.Dispatch(hover) {
			// The handler may have pushed or cleared rows
			h.size = Layout(root, h.origin, h.style)
		}
	}

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, displaySize.X, displaySize.Y)
	Paint(dl, root, h.style, h.renderer.FontTextureID(), hover)
	dl.PopClipRect()

	return h.renderer.Render(dl)
}

// Size returns the size of the document as laid out by the last Frame.
func (h *Host) Size() Vec2 {
	return h.size
}

// Style returns the current style.
func (h *Host) Style() Style {
	return h.style
}

// SetStyle sets the style used from the next frame on.
func (h *Host) SetStyle(style Style) {
	h.style = style
}

// Resize notifies the renderer of a display size change.
func (h *Host) Resize(width, height int) {
	h.renderer.Resize(width, height)
}
