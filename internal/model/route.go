// Package model defines the data structures shared across the scan pipeline.
package model

import (
	"fmt"
	"sort"
	"strings"
)

// Path represents a file system path.
type Path string

// Framework identifies a supported web framework family.
type Framework string

// Supported framework identifiers, as accepted by the --framework flag.
const (
	FrameworkDjango  Framework = "django"
	FrameworkFlask   Framework = "flask"
	FrameworkSanic   Framework = "sanic"
	FrameworkLaravel Framework = "laravel"
	FrameworkSymfony Framework = "symfony"
	FrameworkCakePHP Framework = "cakephp"
	FrameworkRails   Framework = "rails"
	FrameworkGrape   Framework = "grape"
	FrameworkJAXRS   Framework = "jaxrs"
	FrameworkSpring  Framework = "spring"
	FrameworkGorilla Framework = "gorilla"
	FrameworkGin     Framework = "gin"
	FrameworkChi     Framework = "chi"
	FrameworkExpress Framework = "express"
	FrameworkReact   Framework = "react"
	FrameworkAngular Framework = "angular"
)

// DynamicPathPlaceholder marks a path segment that could not be resolved
// statically (e.g. built from a runtime variable). Such routes are still
// reported so dynamic registrations are never silently missed.
const DynamicPathPlaceholder = "<dynamic>"

// SourceLocation points at the declaration a record was extracted from.
type SourceLocation struct {
	File Path `json:"file"`
	Line int  `json:"line"`
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// ScopeID identifies a Scope within one project scan. IDs are arena
// indices assigned by the extracting adapter, namespaced per file by
// the scanner before normalization.
type ScopeID string

// Scope represents a grouping construct: a router group, blueprint,
// namespace block, controller class or module. Scopes contribute a
// mount prefix and inherited guards to every nested candidate.
type Scope struct {
	ID              ScopeID        `json:"id"`
	MountPrefix     string         `json:"mount_prefix"`
	InheritedGuards []string       `json:"inherited_guards,omitempty"`
	ParentID        ScopeID        `json:"parent_id,omitempty"`
	Name            string         `json:"name,omitempty"`
	Location        SourceLocation `json:"location"`
}

// RouteCandidate is a pre-normalization route extraction, local to one
// file. PathPattern is never resolved against mount prefixes here;
// prefix resolution belongs to the normalizer.
type RouteCandidate struct {
	Framework      Framework      `json:"framework"`
	PathPattern    string         `json:"path_pattern"`
	Methods        []string       `json:"methods,omitempty"`
	HandlerRef     string         `json:"handler_ref"`
	DeclaredGuards []string       `json:"declared_guards,omitempty"`
	ScopeID        ScopeID        `json:"scope_id,omitempty"`
	Location       SourceLocation `json:"location"`
}

// Verdict is the classifier's determination of a route's
// auth-protection status.
type Verdict string

const (
	// VerdictProtected means a known auth guard is declared directly on
	// the route.
	VerdictProtected Verdict = "PROTECTED"

	// VerdictInheritedProtected means the only matching auth guards come
	// from enclosing scopes.
	VerdictInheritedProtected Verdict = "INHERITED_PROTECTED"

	// VerdictUnprotected means no guard at any depth matches a known
	// auth pattern, or an explicit public override is present.
	VerdictUnprotected Verdict = "UNPROTECTED"

	// VerdictAmbiguous means an auth-looking guard is present that the
	// pattern tables cannot classify. Never collapsed into UNPROTECTED:
	// recall on "something auth-like is here" dominates precision.
	VerdictAmbiguous Verdict = "AMBIGUOUS"
)

// Route is a canonical, deduplicated route after scope resolution.
type Route struct {
	Framework       Framework      `json:"framework"`
	FullPath        string         `json:"full_path"`
	Methods         []string       `json:"methods"`
	EffectiveGuards []string       `json:"effective_guards,omitempty"`
	DeclaredGuards  []string       `json:"declared_guards,omitempty"`
	Verdict         Verdict        `json:"verdict"`
	HandlerRef      string         `json:"handler_ref"`
	Location        SourceLocation `json:"location"`
	ScopeID         ScopeID        `json:"scope_id,omitempty"`
	Collisions      int            `json:"collisions,omitempty"`
}

// Key returns the dedup identity of a route: full path plus the
// expanded method set.
func (r Route) Key() string {
	return r.FullPath + " " + strings.Join(r.Methods, ",")
}

// AllMethods is the expansion used when a declaration leaves the
// method set unspecified.
var AllMethods = []string{"DELETE", "GET", "HEAD", "OPTIONS", "PATCH", "POST", "PUT"}

// NormalizeMethods upper-cases, dedups and sorts a method set,
// expanding an empty set to AllMethods.
func NormalizeMethods(methods []string) []string {
	if len(methods) == 0 {
		out := make([]string, len(AllMethods))
		copy(out, AllMethods)

		return out
	}

	seen := make(map[string]struct{}, len(methods))

	var out []string

	for _, method := range methods {
		upper := strings.ToUpper(strings.TrimSpace(method))
		if upper == "" {
			continue
		}

		if _, ok := seen[upper]; ok {
			continue
		}

		seen[upper] = struct{}{}

		out = append(out, upper)
	}

	sort.Strings(out)

	return out
}
