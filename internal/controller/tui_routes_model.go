package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/gatehound/internal/model"
)

// routeItem is one route row in the browser list.
type routeItem struct {
	route m.Route
	root  m.Path
}

func (i routeItem) FilterValue() string {
	return i.route.FullPath + " " + string(i.route.Framework)
}

// routeDelegate renders one route per line: verdict, methods, path.
type routeDelegate struct{}

func (d routeDelegate) Height() int  { return 1 }
func (d routeDelegate) Spacing() int { return 0 }
func (d routeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d routeDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	ri, ok := item.(routeItem)
	if !ok {
		return
	}

	verdict := renderVerdict(ri.route.Verdict)

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	if index == lm.Index() {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	width := lm.Width() - 32
	path := truncateToWidth(ri.route.FullPath, width)

	line := fmt.Sprintf("%-30s %-7s %s",
		verdict,
		FormatMethods(ri.route.Methods),
		pathStyle.Render(path),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// routesModel is the Bubble Tea model backing the route browser.
type routesModel struct {
	width     int
	height    int
	routeList list.Model
	total     int
	flagged   int
}

func newRoutesModel(results []m.ScanResult) routesModel {
	routeList := list.New([]list.Item{}, routeDelegate{}, 80, 20)
	routeList.SetShowPagination(false)
	routeList.SetShowFilter(true)
	routeList.SetShowHelp(false)
	routeList.SetShowTitle(false)
	routeList.SetShowStatusBar(false)
	routeList.FilterInput.Placeholder = "Filter by path…"

	var (
		items   []list.Item
		flagged int
	)

	for _, result := range results {
		for _, route := range result.Routes {
			items = append(items, routeItem{route: route, root: result.Root})

			if route.Verdict == m.VerdictUnprotected || route.Verdict == m.VerdictAmbiguous {
				flagged++
			}
		}
	}

	routeList.SetItems(items)

	return routesModel{
		routeList: routeList,
		total:     len(items),
		flagged:   flagged,
	}
}

func (rm routesModel) Init() tea.Cmd {
	return nil
}

func (rm routesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.routeList.SetWidth(rm.width)

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			if rm.routeList.FilterState() != list.Filtering {
				return rm, tea.Quit
			}
		}

		var newList list.Model

		newList, cmd = rm.routeList.Update(msg)
		rm.routeList = newList
	}

	return rm, cmd
}

func (rm routesModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Gatehound Route Browser")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Routes: %s   Flagged: %s",
		accentStyle.Render(fmt.Sprintf("%d", rm.total)),
		accentStyle.Render(fmt.Sprintf("%d", rm.flagged)),
	))

	selected := rm.renderSelected()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	listHeight := rm.height - 10
	if listHeight < 5 {
		listHeight = 5
	}

	rm.routeList.SetHeight(listHeight)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		rm.routeList.View(),
		selected,
		footer,
	)
}

// renderSelected shows the detail line for the highlighted route:
// guards, handler and declaration site.
func (rm routesModel) renderSelected() string {
	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(1, 0, 0, 2)

	item, ok := rm.routeList.SelectedItem().(routeItem)
	if !ok {
		return detailStyle.Render("")
	}

	guards := "none"
	if len(item.route.EffectiveGuards) > 0 {
		guards = fmt.Sprintf("%v", item.route.EffectiveGuards)
	}

	return detailStyle.Render(fmt.Sprintf(
		"guards: %s  handler: %s  at %s",
		guards, item.route.HandlerRef, item.route.Location,
	))
}
