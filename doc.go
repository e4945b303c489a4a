/*
Package table provides a retained table widget: a header row of named,
fixed-width columns above a body of data rows that grows with Push and is
emptied with Clear. Rows can carry a click handler.

# Overview

The widget is an ownership tree that mirrors the element tree it builds on a
Surface:

	Table ── header element ── header Row ── Cell (one per column)
	      └─ body element ──── Row ──────── Cell (one per column)
	                           Row ──────── ...

A Table owns its Rows, a Row owns its Cells. Nothing points back up the tree.
Every Row and Cell is either attached or closed; Close is idempotent.

# Quick Start

	doc := table.NewDocument()
	t := table.New[int](doc, doc.Root(),
	    table.NewColumn("Name", 100),
	    table.NewColumn("Age", 50),
	)

	err := t.Push([]table.KeyValue[int]{
	    table.NewKeyValue("Alice", 1),
	    table.NewKeyValue("30", 30),
	}, func() { fmt.Println("clicked Alice") })

	t.Clear() // header stays

Push rejects a call whose value count differs from the column count: it logs,
returns an error wrapping ErrColumnCount and changes nothing.

# Surfaces

Surface and Element are the only things the table needs from its host:
create an element, append or remove a child, set text, set width and set a
click handler. Document is the bundled in-memory implementation. It keeps
the tree, lays it out (Layout), hit-tests it and delivers clicks to the
nearest clickable ancestor (Document.Dispatch).

# Drawing

Host drives a Document frame by frame:

	renderer, _ := opengl.NewRenderer(800, 600)
	host := table.NewHost(renderer, table.WithStyle(table.GTAStyle()))
	t := table.New[string](host.Document(), host.Document().Root(), cols...)

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    input := adapter.Update()
	    if err := host.Frame(input, table.Vec2{X: 800, Y: 600}); err != nil {
	        return err
	    }
	    adapter.EndFrame()
	}

Frame lays the document out, sends a left click to the row under the mouse,
paints into a pooled DrawList and passes it to the Renderer. Body rows
outside the display are not painted (see RowClipper). The
backend/opengl package renders DrawLists with OpenGL 4.1; backend/term paints
a Document as terminal text for bubbletea programs.

# Coordinates

Each cell records the (row, column) it was created at. Coordinates are never
recomputed; rows are only ever removed all at once by Clear, after which
numbering restarts at 0.
*/
package table
