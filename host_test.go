package table_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/table"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	vertices    int
	err         error
}

func (m *mockRenderer) Render(dl *table.DrawList) error {
	m.renderCalls++
	m.vertices = len(dl.VtxBuffer)
	return m.err
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func TestHostFrameRenders(t *testing.T) {
	renderer := &mockRenderer{}
	host := table.NewHost(renderer, table.WithStyle(table.GTAStyle()))
	doc := host.Document()
	table.New[string](doc, doc.Root(), table.NewColumn("Name", 100))

	if err := host.Frame(nil, table.Vec2{X: 800, Y: 600}); err != nil {
		t.Fatalf("Frame returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.vertices == 0 {
		t.Error("expected painted vertices")
	}
	if got := host.Size(); got.X != 100 || got.Y != table.GTAStyle().RowHeight() {
		t.Errorf("unexpected laid-out size %+v", got)
	}
}

func TestHostFrameDispatchesClickOnce(t *testing.T) {
	renderer := &mockRenderer{}
	host := table.NewHost(renderer, table.WithOrigin(table.Vec2{X: 5, Y: 5}))
	doc := host.Document()
	tbl := table.New[int](doc, doc.Root(), table.NewColumn("Name", 100), table.NewColumn("Age", 50))

	clicks := 0
	_ = tbl.Push([]table.KeyValue[int]{table.NewKeyValue("Alice", 1), table.NewKeyValue("30", 30)}, func() {
		clicks++
	})

	rh := host.Style().RowHeight()
	input := table.NewInputState()
	input.SetMousePos(20, 5+rh+rh/2)
	input.SetMouseButton(table.MouseButtonLeft, true)

	if err := host.Frame(input, table.Vec2{X: 800, Y: 600}); err != nil {
		t.Fatalf("Frame returned error: %v", err)
	}
	if clicks != 1 {
		t.Fatalf("expected 1 click, got %d", clicks)
	}

	// Button still held on the next frame: no new press
	input.Reset()
	if err := host.Frame(input, table.Vec2{X: 800, Y: 600}); err != nil {
		t.Fatalf("Frame returned error: %v", err)
	}
	if clicks != 1 {
		t.Errorf("expected click to fire once per press, got %d", clicks)
	}
}

func TestHostFrameClickCanClear(t *testing.T) {
	renderer := &mockRenderer{}
	host := table.NewHost(renderer)
	doc := host.Document()
	tbl := table.New[int](doc, doc.Root(), table.NewColumn("N", 100))
	_ = tbl.Push([]table.KeyValue[int]{table.NewKeyValue("x", 0)}, tbl.Clear)

	rh := host.Style().RowHeight()
	input := table.NewInputState()
	input.SetMousePos(10, rh+1)
	input.SetMouseButton(table.MouseButtonLeft, true)

	if err := host.Frame(input, table.Vec2{X: 800, Y: 600}); err != nil {
		t.Fatalf("Frame returned error: %v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("expected handler to clear the table, got %d rows", tbl.Len())
	}
	if got := host.Size().Y; got != rh {
		t.Errorf("expected relayout to header height %v, got %v", rh, got)
	}
}

func TestHostFrameReturnsRendererError(t *testing.T) {
	want := errors.New("boom")
	host := table.NewHost(&mockRenderer{err: want})
	if err := host.Frame(nil, table.Vec2{X: 1, Y: 1}); !errors.Is(err, want) {
		t.Errorf("expected renderer error, got %v", err)
	}
}

func TestHostSetStyleAppliesNextFrame(t *testing.T) {
	host := table.NewHost(&mockRenderer{})
	doc := host.Document()
	table.New[string](doc, doc.Root(), table.NewColumn("Name", 100))

	if err := host.Frame(nil, table.Vec2{X: 800, Y: 600}); err != nil {
		t.Fatalf("Frame returned error: %v", err)
	}
	if got, want := host.Size().Y, table.DefaultStyle().RowHeight(); got != want {
		t.Fatalf("default height = %v, want %v", got, want)
	}

	host.SetStyle(table.GTAStyle())
	if err := host.Frame(nil, table.Vec2{X: 800, Y: 600}); err != nil {
		t.Fatalf("Frame returned error: %v", err)
	}
	if got, want := host.Size().Y, table.GTAStyle().RowHeight(); got != want {
		t.Errorf("GTA height = %v, want %v", got, want)
	}
}
