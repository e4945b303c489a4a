package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/go-theft-auto/table"
	"github.com/go-theft-auto/table/backend/term"
)

const logFile = "tabledemo.log"

var helpStyle = lipgloss.NewStyle().Faint(true)

func newTermCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Show the table in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTerm()
		},
	}
}

func (a *app) runTerm() error {
	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return a.printTable()
	}

	// The alternate screen owns stderr while the program runs.
	if a.verbose {
		f, err := os.Create(logFile)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		table.SetLogOutput(f)
	} else {
		table.SetLogOutput(io.Discard)
	}
	defer table.SetLogOutput(nil)

	m, err := newTUIModel(a)
	if err != nil {
		return err
	}
	defer m.t.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// printTable writes the table once, for pipes and redirects.
func (a *app) printTable() error {
	doc := table.NewDocument()
	t, err := a.load(doc)
	if err != nil {
		return err
	}
	defer t.Close()

	_, err = fmt.Fprintln(a.out, term.NewPainter().Render(doc.Root()))
	return err
}

// lastLine keeps the most recent line written to it.
type lastLine struct {
	text string
}

func (l *lastLine) Write(p []byte) (int, error) {
	l.text = strings.TrimRight(string(p), "\n")
	return len(p), nil
}

type tuiModel struct {
	app     *app
	doc     *table.Document
	t       *table.Table[int]
	painter *term.Painter
	status  *lastLine
	hover   int
}

// newTUIModel loads the dataset into a fresh document. Row clicks are shown
// in the status line instead of being printed.
func newTUIModel(a *app) (*tuiModel, error) {
	status := &lastLine{}
	a.out = status

	doc := table.NewDocument()
	t, err := a.load(doc)
	if err != nil {
		return nil, err
	}

	return &tuiModel{
		app:     a,
		doc:     doc,
		t:       t,
		painter: term.NewPainter(),
		status:  status,
		hover:   -1,
	}, nil
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "c":
			m.t.Clear()
			m.status.text = ""
		case "r":
			if err := m.app.reload(m.t); err != nil {
				m.status.text = err.Error()
			}
		}

	case tea.MouseMsg:
		m.hover = msg.Y
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if row := m.painter.HitRow(m.doc.Root(), msg.X, msg.Y); row != nil {
				row.Click()
			}
		}
	}

	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(m.painter.RenderHover(m.doc.Root(), m.hover))
	b.WriteString("\n\n")
	b.WriteString(m.status.text)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("click a row · c clear · r reload · q quit"))
	return b.String()
}
