package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/gatehound/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

var verdictStyles = map[m.Verdict]lipgloss.Style{
	m.VerdictProtected:          lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	m.VerdictInheritedProtected: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	m.VerdictUnprotected:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	m.VerdictAmbiguous:          lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

// ShowRoutes renders one table per scanned project plus a verdict
// summary footer and any diagnostics.
func (s *SimpleUI) ShowRoutes(results []m.ScanResult) error {
	for _, result := range results {
		s.printf("# %s\n\n", result.Root)

		if len(result.Routes) == 0 {
			s.printf("no routes found\n\n")
		} else {
			s.renderRouteTable(result.Routes)
		}

		s.renderDiagnostics(result.Diagnostics)
	}

	return nil
}

func (s *SimpleUI) renderRouteTable(routes []m.Route) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Verdict", "Framework", "Methods", "Path", "Guards", "Location"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	totals := map[m.Verdict]int{}

	for _, route := range routes {
		totals[route.Verdict]++

		table.Append([]string{
			renderVerdict(route.Verdict),
			string(route.Framework),
			FormatMethods(route.Methods),
			route.FullPath,
			strings.Join(route.EffectiveGuards, ", "),
			route.Location.String(),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(routes)),
		"",
		"",
		"",
		"",
		summarizeTotals(totals),
	})

	table.Render()
	s.printf("%s\n", tableBuffer.String())
}

func (s *SimpleUI) renderDiagnostics(diags []m.Diagnostic) {
	for _, diag := range diags {
		s.printf("%s %s:%d %s\n", diag.Severity, diag.File, diag.Line, diag.Message)
	}

	if len(diags) > 0 {
		s.printf("\n")
	}
}

// ShowGraph writes the project graph as DOT.
func (s *SimpleUI) ShowGraph(root m.Path, graph m.Graph) error {
	return WriteDOT(s.cmd.OutOrStdout(), root, graph)
}

// ShowFrameworks lists the supported framework selectors.
func (s *SimpleUI) ShowFrameworks(ids []m.Framework) error {
	for _, id := range ids {
		s.printf("%s\n", id)
	}

	return nil
}

// BrowseRoutes degrades to the plain listing; interactive browsing
// needs a terminal.
func (s *SimpleUI) BrowseRoutes(results []m.ScanResult) error {
	return s.ShowRoutes(results)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderVerdict(verdict m.Verdict) string {
	if style, ok := verdictStyles[verdict]; ok {
		return style.Render(string(verdict))
	}

	return string(verdict)
}

func summarizeTotals(totals map[m.Verdict]int) string {
	order := []m.Verdict{
		m.VerdictUnprotected, m.VerdictAmbiguous,
		m.VerdictProtected, m.VerdictInheritedProtected,
	}

	var parts []string

	for _, verdict := range order {
		if totals[verdict] > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", verdict, totals[verdict]))
		}
	}

	return strings.Join(parts, "  ")
}

// FormatMethods compresses a full method set to "*" so unrestricted
// routes do not dominate the listing.
func FormatMethods(methods []string) string {
	if len(methods) == len(m.AllMethods) {
		return "*"
	}

	return strings.Join(methods, ",")
}
