package frameworks

import (
	"go/ast"
	"go/token"
	"path/filepath"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// gorillaAdapter extracts gorilla/mux routers. PathPrefix(...).Subrouter()
// assignments become scopes, Use calls attach middleware to them, and
// HandleFunc/Handle registrations (optionally wrapped in a .Methods
// chain) become candidates.
type gorillaAdapter struct {
	guards GuardTable
}

func newGorillaAdapter() *gorillaAdapter {
	return &gorillaAdapter{
		guards: GuardTable{
			Auth: []string{
				"authmiddleware", "requireauth", "authrequired", "jwt",
				"authenticate", "authorize", "loginrequired", "basicauth",
			},
			Public: []string{"allowanonymous", "noauth", "public"},
			Hints:  defaultHints(),
		},
	}
}

func (a *gorillaAdapter) ID() m.Framework { return m.FrameworkGorilla }

func (a *gorillaAdapter) Guards() *GuardTable { return &a.guards }

func (a *gorillaAdapter) Match(file m.SourceFile) bool {
	return filepath.Ext(string(file.Path)) == ".go" &&
		importsPackage(file.Content, "gorilla/mux")
}

func (a *gorillaAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	parsed, fset, diag := parseGoFile(file)
	if diag != nil {
		return Extraction{}, []m.Diagnostic{*diag}
	}

	var ext Extraction

	scopeByVar := map[string]m.ScopeID{}
	scopeIndex := map[m.ScopeID]int{}
	consumed := map[*ast.CallExpr]bool{}

	ast.Inspect(parsed, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.AssignStmt:
			a.inspectAssign(file.Path, fset, n, &ext, scopeByVar, scopeIndex)
		case *ast.CallExpr:
			a.inspectCall(file.Path, fset, n, &ext, scopeByVar, scopeIndex, consumed)
		}

		return true
	})

	return ext, nil
}

// inspectAssign recognizes mux.NewRouter() roots and
// r.PathPrefix("/x").Subrouter() scopes.
func (a *gorillaAdapter) inspectAssign(file m.Path, fset *token.FileSet, assign *ast.AssignStmt, ext *Extraction, scopeByVar map[string]m.ScopeID, scopeIndex map[m.ScopeID]int) {
	if len(assign.Lhs) != 1 || len(assign.Rhs) != 1 {
		return
	}

	lhs, ok := assign.Lhs[0].(*ast.Ident)
	if !ok {
		return
	}

	call, ok := assign.Rhs[0].(*ast.CallExpr)
	if !ok {
		return
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}

	scope := m.Scope{
		ID:       scopeIDAt(file, goLine(fset, assign)),
		Name:     lhs.Name,
		Location: m.SourceLocation{File: file, Line: goLine(fset, assign)},
	}

	switch sel.Sel.Name {
	case "NewRouter":
		if pkg, ok := sel.X.(*ast.Ident); !ok || pkg.Name != "mux" {
			return
		}
	case "Subrouter":
		prefixCall, ok := sel.X.(*ast.CallExpr)
		if !ok {
			return
		}

		prefixSel, ok := prefixCall.Fun.(*ast.SelectorExpr)
		if !ok || prefixSel.Sel.Name != "PathPrefix" || len(prefixCall.Args) == 0 {
			return
		}

		scope.MountPrefix = goStringArg(prefixCall.Args[0])

		if recv, ok := receiverIdent(prefixSel.X); ok {
			scope.ParentID = scopeByVar[recv]
		}
	default:
		return
	}

	scopeByVar[lhs.Name] = scope.ID
	scopeIndex[scope.ID] = len(ext.Scopes)
	ext.Scopes = append(ext.Scopes, scope)
}

// inspectCall recognizes Use registrations, Methods-wrapped handler
// chains and bare HandleFunc/Handle registrations. A chain like
// r.HandleFunc(...).Methods("GET") is visited parent-first, so the
// inner HandleFunc call is marked consumed to avoid double extraction.
func (a *gorillaAdapter) inspectCall(file m.Path, fset *token.FileSet, call *ast.CallExpr, ext *Extraction, scopeByVar map[string]m.ScopeID, scopeIndex map[m.ScopeID]int, consumed map[*ast.CallExpr]bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}

	switch sel.Sel.Name {
	case "Use":
		recv, _ := receiverIdent(sel.X)

		id, ok := scopeByVar[recv]
		if !ok {
			return
		}

		idx := scopeIndex[id]
		ext.Scopes[idx].InheritedGuards = append(ext.Scopes[idx].InheritedGuards, goGuardRefs(&a.guards, call.Args)...)

	case "Methods":
		inner, ok := sel.X.(*ast.CallExpr)
		if !ok {
			return
		}

		innerSel, ok := inner.Fun.(*ast.SelectorExpr)
		if !ok || (innerSel.Sel.Name != "HandleFunc" && innerSel.Sel.Name != "Handle") {
			return
		}

		consumed[inner] = true

		var methods []string
		for _, arg := range call.Args {
			methods = append(methods, trimQuotes(goExprString(arg)))
		}

		a.appendCandidate(file, fset, inner, innerSel, methods, ext, scopeByVar)

	case "HandleFunc", "Handle":
		if consumed[call] {
			return
		}

		a.appendCandidate(file, fset, call, sel, nil, ext, scopeByVar)
	}
}

func (a *gorillaAdapter) appendCandidate(file m.Path, fset *token.FileSet, call *ast.CallExpr, sel *ast.SelectorExpr, methods []string, ext *Extraction, scopeByVar map[string]m.ScopeID) {
	if len(call.Args) == 0 {
		return
	}

	recv, _ := receiverIdent(sel.X)

	handler := ""
	if len(call.Args) > 1 {
		handler = goExprString(call.Args[1])
	}

	ext.Candidates = append(ext.Candidates, m.RouteCandidate{
		Framework:   a.ID(),
		PathPattern: goStringArg(call.Args[0]),
		Methods:     methods,
		HandlerRef:  handler,
		ScopeID:     scopeByVar[recv],
		Location:    m.SourceLocation{File: file, Line: goLine(fset, call)},
	})
}

func init() {
	Register(newGorillaAdapter())
}
