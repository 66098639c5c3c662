package frameworks

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// laravelAdapter extracts Laravel route files. Route::group closures
// (and the prefix()/middleware() fluent builders in front of ->group)
// become scopes tracked by brace depth; chained ->middleware calls on
// individual registrations become declared guards.
type laravelAdapter struct {
	guards GuardTable
}

func newLaravelAdapter() *laravelAdapter {
	return &laravelAdapter{
		guards: GuardTable{
			Auth: []string{
				"auth", "auth:sanctum", "auth:api", "auth.basic",
				"can:", "verified", "password.confirm", "role:", "permission:",
			},
			Public: []string{"withoutmiddleware", "guest"},
			Hints:  defaultHints(),
		},
	}
}

func (a *laravelAdapter) ID() m.Framework { return m.FrameworkLaravel }

func (a *laravelAdapter) Guards() *GuardTable { return &a.guards }

func (a *laravelAdapter) Match(file m.SourceFile) bool {
	if filepath.Ext(string(file.Path)) != ".php" {
		return false
	}

	return strings.Contains(string(file.Content), "Route::")
}

var (
	laravelGroupRe      = regexp.MustCompile(`Route::[\w>()'\[\]:,\s"-]*->group\s*\(`)
	laravelGroupArrayRe = regexp.MustCompile(`Route::group\s*\(`)
	laravelVerbRe       = regexp.MustCompile(`Route::(get|post|put|patch|delete|options|any|match|resource|apiResource|view|redirect)\s*\((.*)`)
	laravelPrefixCallRe = regexp.MustCompile(`prefix\s*\(\s*('[^']*'|"[^"]*")`)
	laravelPrefixKeyRe  = regexp.MustCompile(`['"]prefix['"]\s*=>\s*('[^']*'|"[^"]*")`)
	laravelMWCallRe     = regexp.MustCompile(`->(middleware|withoutMiddleware)\s*\(([^)]*)\)`)
	laravelMWKeyRe      = regexp.MustCompile(`['"]middleware['"]\s*=>\s*(\[[^\]]*\]|'[^']*'|"[^"]*")`)
	laravelMWStaticRe   = regexp.MustCompile(`Route::middleware\s*\(([^)]*)\)`)
)

func (a *laravelAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	var (
		ext   Extraction
		stack scopeStack
		depth int
	)

	for _, stmt := range logicalLines(file.Content, "->") {
		newDepth := depth + braceDelta(stmt.text)
		stack.closeAt(newDepth + 1)

		switch {
		case laravelGroupRe.MatchString(stmt.text) || laravelGroupArrayRe.MatchString(stmt.text):
			id := scopeIDAt(file.Path, stmt.line)
			ext.Scopes = append(ext.Scopes, m.Scope{
				ID:              id,
				MountPrefix:     laravelPrefix(stmt.text),
				InheritedGuards: laravelGuards(stmt.text),
				ParentID:        stack.current(),
				Location:        m.SourceLocation{File: file.Path, Line: stmt.line},
			})
			stack.push(id, newDepth)

		default:
			if match := laravelVerbRe.FindStringSubmatch(stmt.text); match != nil {
				ext.Candidates = append(ext.Candidates, a.candidate(file.Path, stmt, match, stack.current()))
			}
		}

		depth = newDepth
	}

	return ext, nil
}

func (a *laravelAdapter) candidate(file m.Path, stmt logicalLine, match []string, scope m.ScopeID) m.RouteCandidate {
	verb := match[1]
	args := splitCallArgs(match[2])

	var (
		pathArg string
		methods []string
		handler string
	)

	switch verb {
	case "match":
		if len(args) > 0 {
			methods = quotedStrings(args[0])
		}

		if len(args) > 1 {
			pathArg = args[1]
		}

		if len(args) > 2 {
			handler = args[2]
		}
	case "any":
		if len(args) > 0 {
			pathArg = args[0]
		}

		if len(args) > 1 {
			handler = args[1]
		}
	case "resource", "apiResource":
		if len(args) > 0 {
			pathArg = args[0]
		}

		if len(args) > 1 {
			handler = args[1]
		}
	default:
		methods = []string{verb}

		if len(args) > 0 {
			pathArg = args[0]
		}

		if len(args) > 1 {
			handler = args[1]
		}
	}

	return m.RouteCandidate{
		Framework:      a.ID(),
		PathPattern:    pathOrPlaceholder(pathArg),
		Methods:        methods,
		HandlerRef:     strings.TrimSuffix(handler, ")"),
		DeclaredGuards: laravelGuards(stmt.text),
		ScopeID:        scope,
		Location:       m.SourceLocation{File: file, Line: stmt.line},
	}
}

// laravelPrefix pulls the mount prefix from either fluent prefix() or
// the array form 'prefix' => '...'.
func laravelPrefix(text string) string {
	if match := laravelPrefixCallRe.FindStringSubmatch(text); match != nil {
		return trimQuotes(match[1])
	}

	if match := laravelPrefixKeyRe.FindStringSubmatch(text); match != nil {
		return trimQuotes(match[1])
	}

	return ""
}

// laravelGuards collects middleware references from fluent and array
// forms. withoutMiddleware references are recorded with their call name
// intact so the public-override pattern can see them.
func laravelGuards(text string) []string {
	var out []string

	for _, match := range laravelMWCallRe.FindAllStringSubmatch(text, -1) {
		if match[1] == "withoutMiddleware" {
			out = append(out, "withoutMiddleware("+match[2]+")")

			continue
		}

		out = append(out, quotedStrings(match[2])...)
	}

	if match := laravelMWStaticRe.FindStringSubmatch(text); match != nil {
		out = append(out, quotedStrings(match[1])...)
	}

	if match := laravelMWKeyRe.FindStringSubmatch(text); match != nil {
		out = append(out, quotedStrings(match[1])...)
	}

	return out
}

func init() {
	Register(newLaravelAdapter())
}
