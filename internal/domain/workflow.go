package domain

import (
	"context"
	"fmt"

	"github.com/mouse-blink/gatehound/internal/adapter"
	"github.com/mouse-blink/gatehound/internal/controller"
	"github.com/mouse-blink/gatehound/internal/domain/frameworks"
	m "github.com/mouse-blink/gatehound/internal/model"
)

// Route listing sort modes accepted by --sort.
const (
	SortByPath = "path"
	SortByFile = "file"
)

// Workflow defines the interface for route-audit operations.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) ([]m.ScanResult, error)
	Which(ctx context.Context, args WhichArgs) error
	View(args ViewArgs) error
	Viz(ctx context.Context, args VizArgs) error
	Browse(ctx context.Context, args BrowseArgs) error
	Frameworks() error
}

// WhichArgs parameterizes the route listing command.
type WhichArgs struct {
	ScanArgs

	// Sort selects the listing order: SortByPath or SortByFile.
	Sort string

	// UnprotectedOnly drops PROTECTED and INHERITED_PROTECTED routes
	// from the listing.
	UnprotectedOnly bool

	// Output optionally names a JSON file the results are saved to.
	Output m.Path
}

// ViewArgs parameterizes re-listing a previously saved scan.
type ViewArgs struct {
	// Input names the JSON file a scan was saved to.
	Input m.Path

	Sort            string
	UnprotectedOnly bool
}

// VizArgs parameterizes the graph command.
type VizArgs struct {
	ScanArgs
}

// BrowseArgs parameterizes the interactive browser command.
type BrowseArgs struct {
	ScanArgs
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.ReportStore
	ui        controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided
// adapters.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, store adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		ui:        ui,
	}
}

// Which scans, filters, sorts and lists routes.
func (w *workflow) Which(ctx context.Context, args WhichArgs) error {
	results, err := w.Scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	if err := arrangeListing(results, args.Sort, args.UnprotectedOnly); err != nil {
		return err
	}

	if args.Output != "" {
		if err := w.store.SaveResults(args.Output, results); err != nil {
			return err
		}
	}

	return w.ui.ShowRoutes(results)
}

// View re-lists a scan previously saved with --output, without touching
// the source tree.
func (w *workflow) View(args ViewArgs) error {
	results, err := w.store.LoadResults(args.Input)
	if err != nil {
		return err
	}

	if err := arrangeListing(results, args.Sort, args.UnprotectedOnly); err != nil {
		return err
	}

	return w.ui.ShowRoutes(results)
}

func arrangeListing(results []m.ScanResult, sortMode string, unprotectedOnly bool) error {
	for i := range results {
		if unprotectedOnly {
			results[i].Routes = results[i].Unprotected()
		}

		switch sortMode {
		case SortByFile:
			sortRoutesByFile(results[i].Routes)
		case SortByPath, "":
			sortRoutesByPath(results[i].Routes)
		default:
			return fmt.Errorf("unknown sort mode %q", sortMode)
		}
	}

	return nil
}

// Viz scans and emits one DOT graph per project root.
func (w *workflow) Viz(ctx context.Context, args VizArgs) error {
	results, err := w.Scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	for _, result := range results {
		if err := w.ui.ShowGraph(result.Root, BuildGraph(result)); err != nil {
			return err
		}
	}

	return nil
}

// Browse scans and opens the interactive route browser.
func (w *workflow) Browse(ctx context.Context, args BrowseArgs) error {
	results, err := w.Scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	return w.ui.BrowseRoutes(results)
}

// Frameworks lists the registered framework selectors.
func (w *workflow) Frameworks() error {
	adapters := frameworks.All()

	ids := make([]m.Framework, 0, len(adapters))
	for _, a := range adapters {
		ids = append(ids, a.ID())
	}

	return w.ui.ShowFrameworks(ids)
}

// applyPatterns extends the registered guard tables with user-supplied
// vocabulary from a --patterns file.
func (w *workflow) applyPatterns(path m.Path) error {
	if path == "" {
		return nil
	}

	cfg, err := adapter.LoadPatternConfig(w.fsAdapter, path)
	if err != nil {
		return err
	}

	for id, set := range cfg.Frameworks {
		fw, ok := frameworks.Lookup(m.Framework(id))
		if !ok {
			return &frameworks.UnknownFrameworkError{Selector: m.Framework(id)}
		}

		fw.Guards().Extend(set.Auth, set.Public)
	}

	return nil
}
