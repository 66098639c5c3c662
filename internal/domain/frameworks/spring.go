package frameworks

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// springAdapter extracts Spring MVC controllers. Class-level
// @RequestMapping becomes a scope; @GetMapping and friends become
// candidates; method-security annotations guard. A
// @PreAuthorize("permitAll()") expression counts as a public override
// because the table checks public patterns first.
type springAdapter struct {
	guards GuardTable
}

func newSpringAdapter() *springAdapter {
	return &springAdapter{
		guards: GuardTable{
			Auth: []string{
				"preauthorize", "postauthorize", "secured", "rolesallowed",
				"hasrole", "hasauthority", "isauthenticated", "denyall",
			},
			Public: []string{"permitall", "isanonymous", "anonymousallowed"},
			Hints:  defaultHints(),
		},
	}
}

func (a *springAdapter) ID() m.Framework { return m.FrameworkSpring }

func (a *springAdapter) Guards() *GuardTable { return &a.guards }

func (a *springAdapter) Match(file m.SourceFile) bool {
	if filepath.Ext(string(file.Path)) != ".java" {
		return false
	}

	content := string(file.Content)

	return strings.Contains(content, "springframework") ||
		strings.Contains(content, "@RestController") ||
		strings.Contains(content, "@Controller")
}

var (
	springVerbMappings = map[string]string{
		"GetMapping": "GET", "PostMapping": "POST", "PutMapping": "PUT",
		"DeleteMapping": "DELETE", "PatchMapping": "PATCH",
	}
	springRequestMethodRe = regexp.MustCompile(`RequestMethod\.(\w+)`)
)

func (a *springAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
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
			case name == "RequestMapping":
				path = annotationPath(ann)
				routed = true

				for _, match := range springRequestMethodRe.FindAllStringSubmatch(ann.text, -1) {
					methods = append(methods, match[1])
				}
			case springVerbMappings[name] != "":
				path = annotationPath(ann)
				methods = append(methods, springVerbMappings[name])
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

		if !routed {
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
	Register(newSpringAdapter())
}
