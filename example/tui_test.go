package main

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/go-theft-auto/table"
)

func newTestModel(t *testing.T) *tuiModel {
	t.Helper()
	m, err := newTUIModel(&app{})
	if err != nil {
		t.Fatalf("newTUIModel: %v", err)
	}
	t.Cleanup(m.t.Close)
	return m
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTUIClickShowsRow(t *testing.T) {
	m := newTestModel(t)

	m.Update(click(3, 2))
	if got, want := m.status.text, "Bob | 41 | Oslo"; got != want {
		t.Errorf("status = %q, want %q", got, want)
	}

	// Header has no handler.
	m.Update(click(3, 0))
	if got := m.status.text; got != "Bob | 41 | Oslo" {
		t.Errorf("status after header click = %q", got)
	}
}

func TestTUIClearAndReload(t *testing.T) {
	m := newTestModel(t)

	m.Update(key("c"))
	if m.t.Len() != 0 {
		t.Fatalf("Len after clear = %d", m.t.Len())
	}
	if view := ansi.Strip(m.View()); strings.Contains(view, "Alice") || !strings.Contains(view, "Name") {
		t.Errorf("view after clear:\n%s", view)
	}

	m.Update(key("r"))
	if m.t.Len() != 5 {
		t.Fatalf("Len after reload = %d, want 5", m.t.Len())
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Alice") {
		t.Errorf("view after reload:\n%s", view)
	}
}

func TestTUIQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("no command for q")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestPrintTable(t *testing.T) {
	var buf strings.Builder
	a := &app{out: &buf}

	if err := a.printTable(); err != nil {
		t.Fatalf("printTable: %v", err)
	}

	lines := strings.Split(strings.TrimRight(ansi.Strip(buf.String()), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want header + 5 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "  Name") || !strings.HasPrefix(lines[1], "> Alice") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd(io.Discard)
	for _, name := range []string{"verbose", "data", "no-color"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing --%s", name)
		}
	}

	var subs []string
	for _, c := range cmd.Commands() {
		subs = append(subs, c.Name())
	}
	if got := strings.Join(subs, ","); got != "gl,term" {
		t.Errorf("subcommands = %s, want gl,term", got)
	}
}

func TestNextStyleToggles(t *testing.T) {
	gta := table.GTAStyle()
	if got := nextStyle(gta); got != table.DefaultStyle() {
		t.Error("GTA style should switch to default")
	}
	if got := nextStyle(table.DefaultStyle()); got != gta {
		t.Error("default style should switch to GTA")
	}
}

func TestTUIHoverFollowsPointer(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if m.hover != 2 {
		t.Fatalf("hover = %d, want 2", m.hover)
	}

	m.Update(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if m.hover != 4 {
		t.Errorf("hover = %d after move, want 4", m.hover)
	}
	if m.status.text != "" {
		t.Errorf("motion ran a click handler: %q", m.status.text)
	}
}
