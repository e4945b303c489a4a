package table

import "testing"

func TestCloseIsIdempotent(t *testing.T) {
	doc := NewDocument()
	tbl := New[int](doc, doc.Root(), NewColumn("Name", 100), NewColumn("Age", 50))
	if err := tbl.Push([]KeyValue[int]{NewKeyValue("a", 1), NewKeyValue("b", 2)}, func() {}); err != nil {
		t.Fatalf("Push: %v", err)
	}
	body := doc.Root().children[0].children[1]

	row := tbl.rows[0]
	cell := row.cells[0]

	cell.close()
	cell.close()
	if !cell.Closed() {
		t.Error("cell should be closed")
	}
	if got := doc.Root().Count(KindCell); got != 3 {
		t.Errorf("expected 3 cell nodes (2 header + 1 body), got %d", got)
	}

	row.close()
	row.close()
	if !row.Closed() {
		t.Error("row should be closed")
	}
	if body.Len() != 0 {
		t.Errorf("expected empty body, got %d", body.Len())
	}

	// Clear must tolerate rows that were already closed
	tbl.Clear()
	if tbl.Len() != 0 {
		t.Errorf("expected 0 rows, got %d", tbl.Len())
	}
}

func TestRowCloseDropsClickHandler(t *testing.T) {
	doc := NewDocument()
	tbl := New[int](doc, doc.Root(), NewColumn("Name", 100))
	if err := tbl.Push([]KeyValue[int]{NewKeyValue("a", 1)}, func() {}); err != nil {
		t.Fatalf("Push: %v", err)
	}
	node := doc.Root().children[0].children[1].children[0]

	tbl.rows[0].close()
	if node.Clickable() || node.Parent() != nil {
		t.Errorf("closed row node: clickable=%v parent=%v", node.Clickable(), node.Parent())
	}
}
