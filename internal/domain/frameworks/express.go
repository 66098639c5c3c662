package frameworks

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// expressAdapter extracts Express applications and routers. Router
// variables become scopes; app.use('/prefix', router) mounts them;
// middleware arguments between the path and the final handler become
// declared guards.
type expressAdapter struct {
	guards GuardTable
}

func newExpressAdapter() *expressAdapter {
	return &expressAdapter{
		guards: GuardTable{
			Auth: []string{
				"passport.authenticate", "requireauth", "ensureauthenticated",
				"ensureloggedin", "isauthenticated", "requirelogin", "jwt",
				"verifytoken", "checkauth", "authorize", "expressjwt",
			},
			Public: []string{"allowanonymous", "noauth", "public"},
			Hints:  defaultHints(),
		},
	}
}

func (a *expressAdapter) ID() m.Framework { return m.FrameworkExpress }

func (a *expressAdapter) Guards() *GuardTable { return &a.guards }

var expressExts = map[string]bool{".js": true, ".mjs": true, ".cjs": true, ".ts": true}

func (a *expressAdapter) Match(file m.SourceFile) bool {
	if !expressExts[filepath.Ext(string(file.Path))] {
		return false
	}

	content := string(file.Content)

	return strings.Contains(content, "express()") ||
		strings.Contains(content, "express.Router") ||
		strings.Contains(content, "require('express')") ||
		strings.Contains(content, `require("express")`) ||
		strings.Contains(content, "from 'express'") ||
		strings.Contains(content, `from "express"`)
}

var (
	expressAppRe    = regexp.MustCompile(`(?:const|let|var)\s+(\w+)\s*=\s*express\s*\(\s*\)`)
	expressRouterRe = regexp.MustCompile(`(?:const|let|var)\s+(\w+)\s*=\s*(?:express\.)?Router\s*\(`)
	expressVerbRe   = regexp.MustCompile(`\b(\w+)\.(get|post|put|patch|delete|head|options|all)\s*\((.*)`)
	expressUseRe    = regexp.MustCompile(`\b(\w+)\.use\s*\((.*)`)
)

func (a *expressAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	var ext Extraction

	scopeByVar := map[string]m.ScopeID{}
	scopeIndex := map[m.ScopeID]int{}

	addScope := func(varName string, lineNo int) {
		id := scopeIDAt(file.Path, lineNo)
		scopeByVar[varName] = id
		scopeIndex[id] = len(ext.Scopes)
		ext.Scopes = append(ext.Scopes, m.Scope{
			ID:       id,
			Name:     varName,
			Location: m.SourceLocation{File: file.Path, Line: lineNo},
		})
	}

	for _, stmt := range balancedStatements(file.Content) {
		if match := expressAppRe.FindStringSubmatch(stmt.text); match != nil {
			addScope(match[1], stmt.line)

			continue
		}

		if match := expressRouterRe.FindStringSubmatch(stmt.text); match != nil {
			addScope(match[1], stmt.line)

			continue
		}

		if match := expressUseRe.FindStringSubmatch(stmt.text); match != nil {
			a.handleUse(file.Path, stmt, match, &ext, scopeByVar, scopeIndex)

			continue
		}

		if match := expressVerbRe.FindStringSubmatch(stmt.text); match != nil {
			// Only receivers bound to an app or router register routes;
			// anything else (axios.get, fetch wrappers) is an HTTP call.
			if _, ok := scopeByVar[match[1]]; ok {
				a.handleVerb(file.Path, stmt, match, &ext, scopeByVar)
			}
		}
	}

	return ext, nil
}

// handleUse covers both middleware attachment (router.use(auth)) and
// mounting (app.use('/api', router)).
func (a *expressAdapter) handleUse(file m.Path, stmt logicalLine, match []string, ext *Extraction, scopeByVar map[string]m.ScopeID, scopeIndex map[m.ScopeID]int) {
	owner, ok := scopeByVar[match[1]]
	if !ok {
		return
	}

	args := splitCallArgs(strings.TrimSuffix(strings.TrimSpace(match[2]), ";"))
	if len(args) == 0 {
		return
	}

	first := strings.TrimSpace(args[0])

	if strings.HasPrefix(first, "'") || strings.HasPrefix(first, `"`) || strings.HasPrefix(first, "`") {
		// Mount: the last argument names the mounted router.
		mounted := strings.TrimSuffix(strings.TrimSpace(args[len(args)-1]), ")")
		if child, ok := scopeByVar[mounted]; ok {
			idx := scopeIndex[child]
			ext.Scopes[idx].MountPrefix = trimQuotes(first)
			ext.Scopes[idx].ParentID = owner

			// Middleware sandwiched between path and router guards the
			// mounted scope.
			for _, arg := range args[1 : len(args)-1] {
				if a.guards.Classify(arg) != GuardIrrelevant {
					ext.Scopes[idx].InheritedGuards = append(ext.Scopes[idx].InheritedGuards, arg)
				}
			}
		}

		return
	}

	idx := scopeIndex[owner]

	for _, arg := range args {
		arg = strings.TrimSuffix(strings.TrimSpace(arg), ")")
		if a.guards.Classify(arg) != GuardIrrelevant {
			ext.Scopes[idx].InheritedGuards = append(ext.Scopes[idx].InheritedGuards, arg)
		}
	}
}

func (a *expressAdapter) handleVerb(file m.Path, stmt logicalLine, match []string, ext *Extraction, scopeByVar map[string]m.ScopeID) {
	args := splitCallArgs(strings.TrimSuffix(strings.TrimSpace(match[3]), ";"))
	if len(args) == 0 {
		return
	}

	var methods []string
	if match[2] != "all" {
		methods = []string{match[2]}
	}

	handler := ""
	if len(args) > 1 {
		handler = strings.TrimSuffix(args[len(args)-1], ")")
	}

	var guards []string

	for _, arg := range args[1:] {
		arg = strings.TrimSuffix(strings.TrimSpace(arg), ")")
		if a.guards.Classify(arg) != GuardIrrelevant {
			guards = append(guards, arg)
		}
	}

	ext.Candidates = append(ext.Candidates, m.RouteCandidate{
		Framework:      a.ID(),
		PathPattern:    pathOrPlaceholder(args[0]),
		Methods:        methods,
		HandlerRef:     handler,
		DeclaredGuards: guards,
		ScopeID:        scopeByVar[match[1]],
		Location:       m.SourceLocation{File: file, Line: stmt.line},
	})
}

// balancedStatements merges physical lines until parentheses balance,
// so multi-line route registrations read as one statement.
func balancedStatements(content []byte) []logicalLine {
	var (
		out  []logicalLine
		open int
	)

	eachLine(content, func(lineNo int, line string) {
		trimmed := strings.TrimSpace(line)

		if open > 0 && len(out) > 0 {
			out[len(out)-1].text += " " + trimmed
			open += parenDelta(trimmed)

			return
		}

		out = append(out, logicalLine{text: line, line: lineNo})
		open = parenDelta(line)

		if open < 0 {
			open = 0
		}
	})

	return out
}

// parenDelta counts net parenthesis nesting outside string literals.
func parenDelta(line string) int {
	delta := 0

	var quote byte

	for i := 0; i < len(line); i++ {
		c := line[i]

		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}

			continue
		}

		switch c {
		case '\'', '"', '`':
			quote = c
		case '(':
			delta++
		case ')':
			delta--
		}
	}

	return delta
}

func init() {
	Register(newExpressAdapter())
}
