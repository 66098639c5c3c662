package frameworks

import (
	"go/ast"
	"go/token"
	"path/filepath"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// ginAdapter extracts Gin engines and router groups. Group calls carry
// both a prefix and optional middleware arguments; Use calls append
// middleware to an existing group; verb calls become candidates with
// their in-between middleware arguments as declared guards.
type ginAdapter struct {
	guards GuardTable
}

func newGinAdapter() *ginAdapter {
	return &ginAdapter{
		guards: GuardTable{
			Auth: []string{
				"authrequired", "requireauth", "authmiddleware", "jwt",
				"authorize", "requiretoken", "basicauth", "loginrequired",
			},
			Public: []string{"allowanonymous", "noauth", "public"},
			Hints:  defaultHints(),
		},
	}
}

func (a *ginAdapter) ID() m.Framework { return m.FrameworkGin }

func (a *ginAdapter) Guards() *GuardTable { return &a.guards }

func (a *ginAdapter) Match(file m.SourceFile) bool {
	return filepath.Ext(string(file.Path)) == ".go" &&
		importsPackage(file.Content, "gin-gonic/gin")
}

var ginVerbs = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true,
	"DELETE": true, "HEAD": true, "OPTIONS": true, "Any": true,
}

func (a *ginAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	parsed, fset, diag := parseGoFile(file)
	if diag != nil {
		return Extraction{}, []m.Diagnostic{*diag}
	}

	var ext Extraction

	scopeByVar := map[string]m.ScopeID{}
	scopeIndex := map[m.ScopeID]int{}

	ast.Inspect(parsed, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.AssignStmt:
			a.inspectAssign(file.Path, fset, n, &ext, scopeByVar, scopeIndex)
		case *ast.CallExpr:
			a.inspectCall(file.Path, fset, n, &ext, scopeByVar, scopeIndex)
		}

		return true
	})

	return ext, nil
}

// inspectAssign recognizes engine construction (gin.Default/gin.New)
// and group creation (g := r.Group("/api", middleware...)).
func (a *ginAdapter) inspectAssign(file m.Path, fset *token.FileSet, assign *ast.AssignStmt, ext *Extraction, scopeByVar map[string]m.ScopeID, scopeIndex map[m.ScopeID]int) {
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
		Location: m.SourceLocation{File: file, Line: goLine(fset, assign)},
		Name:     lhs.Name,
	}

	switch sel.Sel.Name {
	case "Default", "New":
		if pkg, ok := sel.X.(*ast.Ident); !ok || pkg.Name != "gin" {
			return
		}
	case "Group":
		if len(call.Args) == 0 {
			return
		}

		scope.MountPrefix = goStringArg(call.Args[0])
		scope.InheritedGuards = goGuardRefs(&a.guards, call.Args[1:])

		if recv, ok := receiverIdent(sel.X); ok {
			scope.ParentID = scopeByVar[recv]
		}
	default:
		return
	}

	scopeByVar[lhs.Name] = scope.ID
	scopeIndex[scope.ID] = len(ext.Scopes)
	ext.Scopes = append(ext.Scopes, scope)
}

// inspectCall recognizes Use registrations and verb calls.
func (a *ginAdapter) inspectCall(file m.Path, fset *token.FileSet, call *ast.CallExpr, ext *Extraction, scopeByVar map[string]m.ScopeID, scopeIndex map[m.ScopeID]int) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}

	recv, _ := receiverIdent(sel.X)

	if sel.Sel.Name == "Use" {
		id, ok := scopeByVar[recv]
		if !ok {
			return
		}

		idx := scopeIndex[id]
		ext.Scopes[idx].InheritedGuards = append(ext.Scopes[idx].InheritedGuards, goGuardRefs(&a.guards, call.Args)...)

		return
	}

	if !ginVerbs[sel.Sel.Name] || len(call.Args) == 0 {
		return
	}

	var methods []string
	if sel.Sel.Name != "Any" {
		methods = []string{sel.Sel.Name}
	}

	handler := ""
	if len(call.Args) > 1 {
		handler = goExprString(call.Args[len(call.Args)-1])
	}

	var guards []string
	if len(call.Args) > 2 {
		guards = goGuardRefs(&a.guards, call.Args[1:len(call.Args)-1])
	}

	ext.Candidates = append(ext.Candidates, m.RouteCandidate{
		Framework:      a.ID(),
		PathPattern:    goStringArg(call.Args[0]),
		Methods:        methods,
		HandlerRef:     handler,
		DeclaredGuards: guards,
		ScopeID:        scopeByVar[recv],
		Location:       m.SourceLocation{File: file, Line: goLine(fset, call)},
	})
}

func init() {
	Register(newGinAdapter())
}
