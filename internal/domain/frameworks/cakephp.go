package frameworks

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// cakephpAdapter extracts CakePHP route files. $routes->scope(...)
// closures become scopes; applyMiddleware inside a scope attaches
// inherited guards; allowUnauthenticated is the public override.
type cakephpAdapter struct {
	guards GuardTable
}

func newCakePHPAdapter() *cakephpAdapter {
	return &cakephpAdapter{
		guards: GuardTable{
			Auth: []string{
				"authentication", "authorization", "auth", "requireauth",
			},
			Public: []string{"allowunauthenticated", "addunauthenticatedactions"},
			Hints:  defaultHints(),
		},
	}
}

func (a *cakephpAdapter) ID() m.Framework { return m.FrameworkCakePHP }

func (a *cakephpAdapter) Guards() *GuardTable { return &a.guards }

func (a *cakephpAdapter) Match(file m.SourceFile) bool {
	if filepath.Ext(string(file.Path)) != ".php" {
		return false
	}

	content := string(file.Content)

	return strings.Contains(content, "$routes->") || strings.Contains(content, "Cake\\Routing")
}

var (
	cakeScopeRe = regexp.MustCompile(`\$(?:routes|builder)->(?:scope|prefix|plugin)\s*\(\s*('[^']*'|"[^"]*")`)
	cakeVerbRe  = regexp.MustCompile(`\$(?:routes|builder)->(connect|get|post|put|patch|delete|options)\s*\((.*)`)
	cakeMWRe    = regexp.MustCompile(`\$(?:routes|builder)->applyMiddleware\s*\(([^)]*)\)`)
)

func (a *cakephpAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	var (
		ext   Extraction
		stack scopeStack
		depth int
	)

	scopeIndex := map[m.ScopeID]int{}

	for _, stmt := range logicalLines(file.Content, "->") {
		newDepth := depth + braceDelta(stmt.text)
		stack.closeAt(newDepth + 1)

		switch {
		case cakeScopeRe.MatchString(stmt.text):
			match := cakeScopeRe.FindStringSubmatch(stmt.text)
			id := scopeIDAt(file.Path, stmt.line)
			scopeIndex[id] = len(ext.Scopes)
			ext.Scopes = append(ext.Scopes, m.Scope{
				ID:          id,
				MountPrefix: trimQuotes(match[1]),
				ParentID:    stack.current(),
				Location:    m.SourceLocation{File: file.Path, Line: stmt.line},
			})
			stack.push(id, newDepth)

		case cakeMWRe.MatchString(stmt.text):
			match := cakeMWRe.FindStringSubmatch(stmt.text)
			if current := stack.current(); current != "" {
				idx := scopeIndex[current]
				ext.Scopes[idx].InheritedGuards = append(ext.Scopes[idx].InheritedGuards, quotedStrings(match[1])...)
			}

		default:
			if match := cakeVerbRe.FindStringSubmatch(stmt.text); match != nil {
				ext.Candidates = append(ext.Candidates, a.candidate(file.Path, stmt, match, stack.current()))
			}
		}

		depth = newDepth
	}

	return ext, nil
}

func (a *cakephpAdapter) candidate(file m.Path, stmt logicalLine, match []string, scope m.ScopeID) m.RouteCandidate {
	args := splitCallArgs(match[2])

	var methods []string
	if match[1] != "connect" {
		methods = []string{match[1]}
	}

	pathArg, handler := "", ""
	if len(args) > 0 {
		pathArg = args[0]
	}

	if len(args) > 1 {
		handler = strings.TrimSuffix(args[1], ")")
	}

	return m.RouteCandidate{
		Framework:      a.ID(),
		PathPattern:    pathOrPlaceholder(pathArg),
		Methods:        methods,
		HandlerRef:     handler,
		DeclaredGuards: guardCalls(&a.guards, stmt.text),
		ScopeID:        scope,
		Location:       m.SourceLocation{File: file, Line: stmt.line},
	}
}

func init() {
	Register(newCakePHPAdapter())
}
