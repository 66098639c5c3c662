package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// normalizer consolidates the raw candidates and scopes of one project
// into the canonical route set: mount prefixes resolved, method sets
// expanded, guards folded in inheritance order, duplicates merged.
type normalizer struct {
	scopes  []m.Scope
	byID    map[m.ScopeID]int
	parents map[m.ScopeID][]int // memoized ancestry, nearest first
}

func newNormalizer(scopes []m.Scope) (*normalizer, error) {
	n := &normalizer{
		scopes:  scopes,
		byID:    make(map[m.ScopeID]int, len(scopes)),
		parents: make(map[m.ScopeID][]int, len(scopes)),
	}

	for i, scope := range scopes {
		n.byID[scope.ID] = i
	}

	// The parent walk must terminate for every scope before any path is
	// resolved; a cycle poisons the whole project.
	for _, scope := range scopes {
		if _, err := n.ancestry(scope.ID); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// ancestry returns arena indices from the given scope outward to the
// root, detecting cycles with a visited set over indices.
func (n *normalizer) ancestry(id m.ScopeID) ([]int, error) {
	if cached, ok := n.parents[id]; ok {
		return cached, nil
	}

	var chain []int

	visited := make(map[int]struct{})

	current := id
	for current != "" {
		idx, ok := n.byID[current]
		if !ok {
			break // dangling parent reference: treat as root
		}

		if _, seen := visited[idx]; seen {
			return nil, &CyclicScopeError{Scope: id}
		}

		visited[idx] = struct{}{}
		chain = append(chain, idx)
		current = n.scopes[idx].ParentID
	}

	n.parents[id] = chain

	return chain, nil
}

// normalize resolves every candidate into a Route and merges colliding
// declarations. Collisions union guard sets, keep first-seen
// provenance and surface a diagnostic.
func (n *normalizer) normalize(candidates []m.RouteCandidate) ([]m.Route, []m.Diagnostic) {
	var (
		routes []m.Route
		diags  []m.Diagnostic
	)

	index := make(map[string]int)

	for _, candidate := range candidates {
		route := n.resolve(candidate)

		key := route.Key()
		if at, ok := index[key]; ok {
			merged := mergeRoutes(routes[at], route)
			routes[at] = merged
			diags = append(diags, m.Diagnostic{
				File:     candidate.Location.File,
				Line:     candidate.Location.Line,
				Message:  fmt.Sprintf("duplicate route %s %s merged with %s", strings.Join(route.Methods, ","), route.FullPath, routes[at].Location),
				Severity: m.SeverityWarning,
			})

			continue
		}

		index[key] = len(routes)
		routes = append(routes, route)
	}

	return routes, diags
}

// resolve computes full path and effective guards for one candidate.
func (n *normalizer) resolve(candidate m.RouteCandidate) m.Route {
	chain, _ := n.ancestry(candidate.ScopeID) // cycles are rejected in newNormalizer

	segments := []string{candidate.PathPattern}
	guards := append([]string(nil), candidate.DeclaredGuards...)

	// Nearest scope first: prefixes prepend, inherited guards append.
	for _, idx := range chain {
		scope := n.scopes[idx]
		segments = append([]string{scope.MountPrefix}, segments...)
		guards = append(guards, scope.InheritedGuards...)
	}

	return m.Route{
		Framework:       candidate.Framework,
		FullPath:        joinPath(segments),
		Methods:         m.NormalizeMethods(candidate.Methods),
		EffectiveGuards: guards,
		DeclaredGuards:  append([]string(nil), candidate.DeclaredGuards...),
		HandlerRef:      candidate.HandlerRef,
		Location:        candidate.Location,
		ScopeID:         candidate.ScopeID,
	}
}

// mergeRoutes unions the guard sets of two colliding routes. The
// union is monotonic: nothing from either side is dropped.
func mergeRoutes(kept, next m.Route) m.Route {
	kept.EffectiveGuards = unionStrings(kept.EffectiveGuards, next.EffectiveGuards)
	kept.DeclaredGuards = unionStrings(kept.DeclaredGuards, next.DeclaredGuards)
	kept.Collisions++

	return kept
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	out := append([]string(nil), a...)

	for _, s := range a {
		seen[s] = struct{}{}
	}

	for _, s := range b {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}

			out = append(out, s)
		}
	}

	return out
}

// joinPath concatenates prefix segments into a canonical path: single
// separators, a leading slash, template placeholders untouched.
func joinPath(segments []string) string {
	var parts []string

	for _, segment := range segments {
		segment = strings.Trim(segment, "/")
		if segment != "" {
			parts = append(parts, segment)
		}
	}

	if len(parts) == 0 {
		return "/"
	}

	return "/" + strings.Join(parts, "/")
}
