package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gatehound/internal/model"
)

func TestWhichFiltersAndSaves(t *testing.T) {
	w, fs, store, ui := newTestWorkflow(t)

	fs.EXPECT().ListFiles(m.Path("proj"), mock.Anything).Return([]m.Path{"proj/app.py"}, nil)
	fs.EXPECT().ReadFile(m.Path("proj/app.py")).Return([]byte(flaskFixture), nil)

	var saved, shown []m.ScanResult

	store.EXPECT().SaveResults(m.Path("report.json"), mock.Anything).
		Run(func(_ m.Path, results []m.ScanResult) { saved = results }).
		Return(nil)
	ui.EXPECT().ShowRoutes(mock.Anything).
		Run(func(results []m.ScanResult) { shown = results }).
		Return(nil)

	err := w.Which(context.Background(), WhichArgs{
		ScanArgs:        ScanArgs{Roots: []m.Path{"proj"}},
		UnprotectedOnly: true,
		Output:          "report.json",
	})

	require.NoError(t, err)

	require.Len(t, shown, 1)
	require.Len(t, shown[0].Routes, 1)
	assert.Equal(t, "/health", shown[0].Routes[0].FullPath)
	assert.Equal(t, m.VerdictUnprotected, shown[0].Routes[0].Verdict)

	assert.Equal(t, shown, saved)
}

func TestWhichSortsByFile(t *testing.T) {
	w, fs, _, ui := newTestWorkflow(t)

	fs.EXPECT().ListFiles(m.Path("proj"), mock.Anything).Return([]m.Path{"proj/app.py"}, nil)
	fs.EXPECT().ReadFile(m.Path("proj/app.py")).Return([]byte(flaskFixture), nil)

	var shown []m.ScanResult

	ui.EXPECT().ShowRoutes(mock.Anything).
		Run(func(results []m.ScanResult) { shown = results }).
		Return(nil)

	err := w.Which(context.Background(), WhichArgs{
		ScanArgs: ScanArgs{Roots: []m.Path{"proj"}},
		Sort:     SortByFile,
	})

	require.NoError(t, err)
	require.Len(t, shown, 1)
	require.Len(t, shown[0].Routes, 2)

	// Declaration order, not path order.
	assert.Equal(t, "/health", shown[0].Routes[0].FullPath)
	assert.Equal(t, "/admin", shown[0].Routes[1].FullPath)
}

func TestWhichRejectsUnknownSortMode(t *testing.T) {
	w, fs, _, _ := newTestWorkflow(t)

	fs.EXPECT().ListFiles(m.Path("proj"), mock.Anything).Return(nil, nil)

	err := w.Which(context.Background(), WhichArgs{
		ScanArgs: ScanArgs{Roots: []m.Path{"proj"}},
		Sort:     "size",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort mode")
}

func TestViewReListsSavedScan(t *testing.T) {
	w, _, store, ui := newTestWorkflow(t)

	saved := []m.ScanResult{{
		Root: "proj",
		Routes: []m.Route{
			{FullPath: "/b", Methods: []string{"GET"}, Verdict: m.VerdictProtected},
			{FullPath: "/a", Methods: []string{"GET"}, Verdict: m.VerdictUnprotected},
		},
	}}

	store.EXPECT().LoadResults(m.Path("report.json")).Return(saved, nil)

	var shown []m.ScanResult

	ui.EXPECT().ShowRoutes(mock.Anything).
		Run(func(results []m.ScanResult) { shown = results }).
		Return(nil)

	err := w.View(ViewArgs{Input: "report.json", UnprotectedOnly: true})

	require.NoError(t, err)
	require.Len(t, shown, 1)
	require.Len(t, shown[0].Routes, 1)
	assert.Equal(t, "/a", shown[0].Routes[0].FullPath)
}

func TestViewPropagatesLoadError(t *testing.T) {
	w, _, store, _ := newTestWorkflow(t)

	store.EXPECT().LoadResults(m.Path("missing.json")).Return(nil, assert.AnError)

	err := w.View(ViewArgs{Input: "missing.json"})

	require.ErrorIs(t, err, assert.AnError)
}

func TestVizEmitsOneGraphPerRoot(t *testing.T) {
	w, fs, _, ui := newTestWorkflow(t)

	fs.EXPECT().ListFiles(m.Path("a"), mock.Anything).Return([]m.Path{"a/app.py"}, nil)
	fs.EXPECT().ReadFile(m.Path("a/app.py")).Return([]byte(flaskFixture), nil)
	fs.EXPECT().ListFiles(m.Path("b"), mock.Anything).Return(nil, nil)

	var roots []m.Path

	ui.EXPECT().ShowGraph(mock.Anything, mock.Anything).
		Run(func(root m.Path, graph m.Graph) { roots = append(roots, root) }).
		Return(nil).
		Times(2)

	err := w.Viz(context.Background(), VizArgs{ScanArgs{Roots: []m.Path{"a", "b"}}})

	require.NoError(t, err)
	assert.Equal(t, []m.Path{"a", "b"}, roots)
}

func TestBrowseHandsResultsToUI(t *testing.T) {
	w, fs, _, ui := newTestWorkflow(t)

	fs.EXPECT().ListFiles(m.Path("proj"), mock.Anything).Return(nil, nil)
	ui.EXPECT().BrowseRoutes(mock.Anything).Return(nil)

	err := w.Browse(context.Background(), BrowseArgs{ScanArgs{Roots: []m.Path{"proj"}}})

	require.NoError(t, err)
}

func TestFrameworksListsRegisteredIDs(t *testing.T) {
	w, _, _, ui := newTestWorkflow(t)

	var ids []m.Framework

	ui.EXPECT().ShowFrameworks(mock.Anything).
		Run(func(got []m.Framework) { ids = got }).
		Return(nil)

	require.NoError(t, w.Frameworks())

	assert.Len(t, ids, 16)
	assert.Contains(t, ids, m.FrameworkFlask)
	assert.Contains(t, ids, m.FrameworkAngular)
}

func TestApplyPatternsUnknownFramework(t *testing.T) {
	w, fs, _, _ := newTestWorkflow(t)

	fs.EXPECT().ReadFile(m.Path("patterns.yml")).
		Return([]byte("frameworks:\n  struts:\n    auth: [CustomInterceptor]\n"), nil)

	err := w.applyPatterns("patterns.yml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "struts")
}
