package table

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestDebugLogFollowsVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(io.Discard)
	defer SetVerbose(false)

	doc := NewDocument()
	tbl := New[int](doc, doc.Root(), NewColumn("Name", 100))
	push := func() {
		if err := tbl.Push([]KeyValue[int]{NewKeyValue("a", 1)}, nil); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}

	SetVerbose(false)
	push()
	tbl.Clear()
	if buf.Len() != 0 {
		t.Fatalf("debug output without verbose: %q", buf.String())
	}

	SetVerbose(true)
	push()
	tbl.Clear()
	out := buf.String()
	if !strings.Contains(out, "row pushed") || !strings.Contains(out, "table cleared") {
		t.Errorf("missing debug lines: %q", out)
	}
}
