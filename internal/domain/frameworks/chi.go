package frameworks

import (
	"go/ast"
	"go/token"
	"path/filepath"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// chiAdapter extracts chi routers. chi nests through closures,
// r.Route("/api", func(r chi.Router) { ... }), so extraction walks
// function bodies recursively, binding the closure parameter to the
// scope its block defines. With(...) chains contribute declared guards
// to the route they wrap.
type chiAdapter struct {
	guards GuardTable
}

func newChiAdapter() *chiAdapter {
	return &chiAdapter{
		guards: GuardTable{
			Auth: []string{
				"jwtauth", "authenticator", "requireauth", "authmiddleware",
				"authorize", "loginrequired", "basicauth", "tokenauth",
			},
			Public: []string{"allowanonymous", "noauth", "public"},
			Hints:  defaultHints(),
		},
	}
}

func (a *chiAdapter) ID() m.Framework { return m.FrameworkChi }

func (a *chiAdapter) Guards() *GuardTable { return &a.guards }

func (a *chiAdapter) Match(file m.SourceFile) bool {
	return filepath.Ext(string(file.Path)) == ".go" &&
		importsPackage(file.Content, "go-chi/chi")
}

var chiVerbs = map[string]string{
	"Get": "GET", "Post": "POST", "Put": "PUT", "Patch": "PATCH",
	"Delete": "DELETE", "Head": "HEAD", "Options": "OPTIONS",
}

// chiWalk carries the per-closure binding of router variables to
// scopes.
type chiWalk struct {
	adapter    *chiAdapter
	file       m.Path
	fset       *token.FileSet
	ext        *Extraction
	scopeIndex map[m.ScopeID]int
}

func (a *chiAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	parsed, fset, diag := parseGoFile(file)
	if diag != nil {
		return Extraction{}, []m.Diagnostic{*diag}
	}

	var ext Extraction

	walk := &chiWalk{
		adapter:    a,
		file:       file.Path,
		fset:       fset,
		ext:        &ext,
		scopeIndex: map[m.ScopeID]int{},
	}

	for _, decl := range parsed.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if ok && fn.Body != nil {
			walk.block(fn.Body, map[string]m.ScopeID{})
		}
	}

	return ext, nil
}

// block walks one statement block with the current router bindings.
func (w *chiWalk) block(body *ast.BlockStmt, vars map[string]m.ScopeID) {
	for _, stmt := range body.List {
		switch s := stmt.(type) {
		case *ast.AssignStmt:
			w.assign(s, vars)
		case *ast.ExprStmt:
			if call, ok := s.X.(*ast.CallExpr); ok {
				w.call(call, vars)
			}
		case *ast.BlockStmt:
			w.block(s, vars)
		case *ast.IfStmt:
			w.block(s.Body, vars)
		case *ast.ForStmt:
			w.block(s.Body, vars)
		case *ast.RangeStmt:
			w.block(s.Body, vars)
		}
	}
}

// assign recognizes chi.NewRouter assignments.
func (w *chiWalk) assign(assign *ast.AssignStmt, vars map[string]m.ScopeID) {
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
	if !ok || sel.Sel.Name != "NewRouter" {
		return
	}

	line := goLine(w.fset, assign)
	id := scopeIDAt(w.file, line)
	vars[lhs.Name] = id
	w.scopeIndex[id] = len(w.ext.Scopes)
	w.ext.Scopes = append(w.ext.Scopes, m.Scope{
		ID:       id,
		Name:     lhs.Name,
		Location: m.SourceLocation{File: w.file, Line: line},
	})
}

// call recognizes Use, Route/Group/Mount and verb registrations.
func (w *chiWalk) call(call *ast.CallExpr, vars map[string]m.ScopeID) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}

	recv, _ := receiverIdent(sel.X)
	current := vars[recv]

	switch sel.Sel.Name {
	case "Use":
		if idx, ok := w.scopeIndex[current]; ok {
			w.ext.Scopes[idx].InheritedGuards = append(w.ext.Scopes[idx].InheritedGuards,
				goGuardRefs(&w.adapter.guards, call.Args)...)
		}

	case "Route", "Group":
		prefix := ""
		closureArg := 0

		if sel.Sel.Name == "Route" {
			if len(call.Args) < 2 {
				return
			}

			prefix = goStringArg(call.Args[0])
			closureArg = 1
		}

		if len(call.Args) <= closureArg {
			return
		}

		closure, ok := call.Args[closureArg].(*ast.FuncLit)
		if !ok {
			return
		}

		line := goLine(w.fset, call)
		id := scopeIDAt(w.file, line)
		w.scopeIndex[id] = len(w.ext.Scopes)
		w.ext.Scopes = append(w.ext.Scopes, m.Scope{
			ID:          id,
			MountPrefix: prefix,
			ParentID:    current,
			Location:    m.SourceLocation{File: w.file, Line: line},
		})

		inner := map[string]m.ScopeID{}
		for k, v := range vars {
			inner[k] = v
		}

		if len(closure.Type.Params.List) > 0 && len(closure.Type.Params.List[0].Names) > 0 {
			inner[closure.Type.Params.List[0].Names[0].Name] = id
		}

		w.block(closure.Body, inner)

	case "Mount":
		if len(call.Args) < 2 {
			return
		}

		line := goLine(w.fset, call)
		id := scopeIDAt(w.file, line)
		w.scopeIndex[id] = len(w.ext.Scopes)
		w.ext.Scopes = append(w.ext.Scopes, m.Scope{
			ID:          id,
			MountPrefix: goStringArg(call.Args[0]),
			ParentID:    current,
			Name:        goExprString(call.Args[1]),
			Location:    m.SourceLocation{File: w.file, Line: line},
		})

	default:
		method, isVerb := chiVerbs[sel.Sel.Name]
		isHandle := sel.Sel.Name == "Handle" || sel.Sel.Name == "HandleFunc"

		if (!isVerb && !isHandle) || len(call.Args) == 0 {
			return
		}

		var guards []string

		// r.With(auth).Get(...) keeps its middleware on the chain.
		if withCall, ok := sel.X.(*ast.CallExpr); ok {
			if withSel, ok := withCall.Fun.(*ast.SelectorExpr); ok && withSel.Sel.Name == "With" {
				guards = goGuardRefs(&w.adapter.guards, withCall.Args)

				if r, ok := receiverIdent(withSel.X); ok {
					current = vars[r]
				}
			}
		}

		var methods []string
		if isVerb {
			methods = []string{method}
		}

		handler := ""
		if len(call.Args) > 1 {
			handler = goExprString(call.Args[len(call.Args)-1])
		}

		w.ext.Candidates = append(w.ext.Candidates, m.RouteCandidate{
			Framework:      w.adapter.ID(),
			PathPattern:    goStringArg(call.Args[0]),
			Methods:        methods,
			HandlerRef:     handler,
			DeclaredGuards: guards,
			ScopeID:        current,
			Location:       m.SourceLocation{File: w.file, Line: goLine(w.fset, call)},
		})
	}
}

func init() {
	Register(newChiAdapter())
}
