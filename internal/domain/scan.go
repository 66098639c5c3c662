package domain

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/gatehound/internal/domain/frameworks"
	m "github.com/mouse-blink/gatehound/internal/model"
)

// ScanArgs holds the parameters for scanning one or more project roots.
type ScanArgs struct {
	// Roots are project paths, each optionally suffixed with "/..." for
	// recursive traversal. Every root is scanned as its own project.
	Roots []m.Path

	// Frameworks restricts extraction to the named adapters. Empty
	// means autodetect across all registered adapters.
	Frameworks []m.Framework

	// Exclude holds regular expressions matched against file paths.
	Exclude []string

	// Workers bounds the number of files extracted concurrently.
	Workers int

	// Patterns optionally names a guard-vocabulary extension file.
	Patterns m.Path
}

// Scan runs the full pipeline for every root: list, extract, normalize,
// classify. Per-file trouble becomes a diagnostic; only unusable input
// (a missing root, a bad selector) fails the call.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) ([]m.ScanResult, error) {
	adapters, err := frameworks.Resolve(args.Frameworks)
	if err != nil {
		return nil, err
	}

	if err := w.applyPatterns(args.Patterns); err != nil {
		return nil, err
	}

	exclude, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	results := make([]m.ScanResult, 0, len(args.Roots))

	for _, root := range args.Roots {
		result, err := w.scanProject(ctx, root, adapters, exclude, args.Workers)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}

// fileExtraction is one file's worth of raw output, collected before
// the project-wide normalize step.
type fileExtraction struct {
	candidates  []m.RouteCandidate
	scopes      []m.Scope
	diagnostics []m.Diagnostic
}

func (w *workflow) scanProject(ctx context.Context, root m.Path, adapters []frameworks.Adapter, exclude []*regexp.Regexp, workers int) (m.ScanResult, error) {
	files, err := w.fsAdapter.ListFiles(root, exclude)
	if err != nil {
		return m.ScanResult{}, err
	}

	if workers <= 0 {
		workers = 1
	}

	var (
		mu         sync.Mutex
		candidates []m.RouteCandidate
		scopes     []m.Scope
		diags      []m.Diagnostic
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for _, file := range files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			extraction := w.extractFile(file, adapters)

			mu.Lock()
			candidates = append(candidates, extraction.candidates...)
			scopes = append(scopes, extraction.scopes...)
			diags = append(diags, extraction.diagnostics...)
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.ScanResult{}, err
	}

	// Barrier: every file is in, project-wide resolution can start.
	result := m.ScanResult{Root: root, Scopes: scopes, Diagnostics: diags}

	norm, err := newNormalizer(scopes)
	if err != nil {
		var cyclic *CyclicScopeError
		if errors.As(err, &cyclic) {
			result.Diagnostics = append(result.Diagnostics, m.Diagnostic{
				File:     root,
				Message:  cyclic.Error(),
				Severity: m.SeverityError,
			})

			return result, nil
		}

		return m.ScanResult{}, err
	}

	routes, mergeDiags := norm.normalize(candidates)
	result.Diagnostics = append(result.Diagnostics, mergeDiags...)
	result.Routes = classify(routes)

	sortRoutesByPath(result.Routes)

	return result, nil
}

// extractFile runs every matching adapter over one file. Unreadable
// files degrade to a diagnostic so the rest of the scan proceeds.
func (w *workflow) extractFile(file m.Path, adapters []frameworks.Adapter) fileExtraction {
	var out fileExtraction

	content, err := w.fsAdapter.ReadFile(file)
	if err != nil {
		out.diagnostics = append(out.diagnostics, m.Diagnostic{
			File:     file,
			Message:  "unreadable file: " + err.Error(),
			Severity: m.SeverityWarning,
		})

		return out
	}

	source := m.SourceFile{Path: file, Content: content}

	for _, adapter := range frameworks.Detect(adapters, source) {
		extraction, diags := adapter.Extract(source)

		out.candidates = append(out.candidates, extraction.Candidates...)
		out.scopes = append(out.scopes, extraction.Scopes...)
		out.diagnostics = append(out.diagnostics, diags...)
	}

	return out
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}

		out = append(out, re)
	}

	return out, nil
}

func sortRoutesByPath(routes []m.Route) {
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].FullPath != routes[j].FullPath {
			return routes[i].FullPath < routes[j].FullPath
		}

		return routes[i].Key() < routes[j].Key()
	})
}

func sortRoutesByFile(routes []m.Route) {
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Location.File != routes[j].Location.File {
			return routes[i].Location.File < routes[j].Location.File
		}

		return routes[i].Location.Line < routes[j].Location.Line
	})
}
