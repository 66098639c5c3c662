package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/gatehound/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// ShowRoutes prints a compact listing; the interactive view lives in
// BrowseRoutes.
func (t *TUI) ShowRoutes(results []m.ScanResult) error {
	for _, result := range results {
		_, _ = fmt.Fprintf(t.output, "%s: %d routes, %d flagged\n",
			result.Root, len(result.Routes), len(result.Unprotected()))

		for _, route := range result.Routes {
			_, _ = fmt.Fprintf(t.output, "  %-20s %-7s %s\n",
				route.Verdict, FormatMethods(route.Methods), route.FullPath)
		}
	}

	return nil
}

// ShowGraph writes the project graph as DOT. Graph output is consumed
// by tooling, so it is never rendered interactively.
func (t *TUI) ShowGraph(root m.Path, graph m.Graph) error {
	return WriteDOT(t.output, root, graph)
}

// ShowFrameworks lists the supported framework selectors.
func (t *TUI) ShowFrameworks(ids []m.Framework) error {
	for _, id := range ids {
		_, _ = fmt.Fprintf(t.output, "%s\n", id)
	}

	return nil
}

// BrowseRoutes opens the interactive route browser.
func (t *TUI) BrowseRoutes(results []m.ScanResult) error {
	model := newRoutesModel(results)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
