// Example tabledemo shows a table of people in an OpenGL window or in the
// terminal. Clicking a row prints it; C clears the table and R reloads it.
// In the window, S switches between the GTA and the default style.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                      # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/ gl              # OpenGL window
//	go run ./example/ term            # terminal, mouse enabled
//	go run ./example/ --data my.yaml term
//	go run ./example/ term | cat      # not a terminal: print the table once
//
// The dataset is YAML (or TOML for .toml files):
//
//	columns:
//	  - {title: Name, width: 160}
//	rows:
//	  - [Alice]
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/table"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is the state shared by the subcommands.
type app struct {
	out      io.Writer
	dataPath string
	verbose  bool
	noColor  bool
}

// load builds a table for the configured dataset into doc. Clicking a row
// prints it to a.out.
func (a *app) load(doc *table.Document) (*table.Table[int], error) {
	ds, err := loadDataset(a.dataPath)
	if err != nil {
		return nil, err
	}
	t := table.New[int](doc, doc.Root(), ds.columns()...)
	if err := ds.fill(t, a.printRow); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return t, nil
}

// reload replaces the rows of t with a fresh read of the dataset.
// The header is kept; a changed column set needs a restart.
func (a *app) reload(t *table.Table[int]) error {
	ds, err := loadDataset(a.dataPath)
	if err != nil {
		return err
	}
	t.Clear()
	return ds.fill(t, a.printRow)
}

func (a *app) printRow(fields []string) func() {
	return func() {
		fmt.Fprintln(a.out, describeRow(fields))
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:   "tabledemo",
		Short: "Show a clickable table",
		Long:  `Show a table loaded from a YAML dataset in an OpenGL window or in the terminal.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			table.SetVerbose(a.verbose)
			if a.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log table operations")
	rootCmd.PersistentFlags().StringVar(&a.dataPath, "data", "", "YAML or TOML dataset to show (default: built-in people list)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable terminal styling")

	rootCmd.AddCommand(newGLCmd(a), newTermCmd(a))

	return rootCmd
}
