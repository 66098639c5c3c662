// Package controller provides output adapters for presenting scan
// results: a plain table UI for terminals and pipes, an interactive
// browser, and a DOT renderer for graph tooling.
package controller

import (
	m "github.com/mouse-blink/gatehound/internal/model"
)

// UI defines the interface for presenting scan output.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	// ShowRoutes renders the route listing for one or more scanned
	// projects, including diagnostics.
	ShowRoutes(results []m.ScanResult) error

	// ShowGraph emits the containment graph of one project in DOT form.
	ShowGraph(root m.Path, graph m.Graph) error

	// ShowFrameworks lists the supported framework selectors.
	ShowFrameworks(ids []m.Framework) error

	// BrowseRoutes opens an interactive route browser where the
	// implementation supports one, falling back to ShowRoutes.
	BrowseRoutes(results []m.ScanResult) error
}
