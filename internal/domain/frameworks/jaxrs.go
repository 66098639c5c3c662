package frameworks

import (
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// jaxrsAdapter extracts JAX-RS resource classes. A class-level @Path
// becomes a scope; method-level HTTP verb annotations become
// candidates; @RolesAllowed/@DenyAll guard, @PermitAll overrides.
type jaxrsAdapter struct {
	guards GuardTable
}

func newJAXRSAdapter() *jaxrsAdapter {
	return &jaxrsAdapter{
		guards: GuardTable{
			Auth:   []string{"rolesallowed", "denyall", "authenticated"},
			Public: []string{"permitall"},
			Hints:  defaultHints(),
		},
	}
}

func (a *jaxrsAdapter) ID() m.Framework { return m.FrameworkJAXRS }

func (a *jaxrsAdapter) Guards() *GuardTable { return &a.guards }

func (a *jaxrsAdapter) Match(file m.SourceFile) bool {
	if filepath.Ext(string(file.Path)) != ".java" {
		return false
	}

	content := string(file.Content)

	return strings.Contains(content, "javax.ws.rs") || strings.Contains(content, "jakarta.ws.rs")
}

var jaxrsVerbs = map[string]string{
	"GET": "GET", "POST": "POST", "PUT": "PUT", "DELETE": "DELETE",
	"PATCH": "PATCH", "HEAD": "HEAD", "OPTIONS": "OPTIONS",
}

func (a *jaxrsAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	var (
		ext        Extraction
		classScope m.ScopeID
	)

	walkJavaDecls(file.Content, func(decl javaDecl) {
		var (
			path    string
			methods []string
			guards  []string
			routed  bool
		)

		for _, ann := range decl.annotations {
			name := annotationName(ann)

			switch {
			case name == "Path":
				path = annotationPath(ann)
				routed = true
			case jaxrsVerbs[name] != "":
				methods = append(methods, jaxrsVerbs[name])
				routed = true
			default:
				if a.guards.Classify(ann.text) != GuardIrrelevant {
					guards = append(guards, strings.TrimPrefix(ann.text, "@"))
				}
			}
		}

		if decl.kind == javaClass {
			if !routed && len(guards) == 0 {
				classScope = ""

				return
			}

			classScope = scopeIDAt(file.Path, decl.line)
			ext.Scopes = append(ext.Scopes, m.Scope{
				ID:              classScope,
				MountPrefix:     path,
				InheritedGuards: guards,
				Name:            decl.name,
				Location:        m.SourceLocation{File: file.Path, Line: decl.line},
			})

			return
		}

		if !routed || len(methods) == 0 {
			return
		}

		ext.Candidates = append(ext.Candidates, m.RouteCandidate{
			Framework:      a.ID(),
			PathPattern:    path,
			Methods:        methods,
			HandlerRef:     decl.name,
			DeclaredGuards: guards,
			ScopeID:        classScope,
			Location:       m.SourceLocation{File: file.Path, Line: decl.line},
		})
	})

	return ext, nil
}

func init() {
	Register(newJAXRSAdapter())
}
