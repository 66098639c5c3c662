package frameworks

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// parseGoFile parses Go source for the router adapters. Unlike the
// text-scanned languages, Go files get a real AST; a parse failure
// yields the standard per-file diagnostic and zero candidates.
func parseGoFile(file m.SourceFile) (*ast.File, *token.FileSet, *m.Diagnostic) {
	fset := token.NewFileSet()

	parsed, err := parser.ParseFile(fset, string(file.Path), file.Content, parser.ParseComments)
	if err != nil {
		diag := parseFailure(file.Path, 0, "go parse failure: "+err.Error())

		return nil, nil, &diag
	}

	return parsed, fset, nil
}

// goExprString renders a simple expression for guard/handler
// references: identifiers, selectors and call expressions come out in
// source-like shape, everything else collapses to its type.
func goExprString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return goExprString(e.X) + "." + e.Sel.Name
	case *ast.CallExpr:
		return goExprString(e.Fun) + "()"
	case *ast.BasicLit:
		return e.Value
	case *ast.FuncLit:
		return "func literal"
	default:
		return "expr"
	}
}

// goStringArg resolves a call argument expected to hold a path: a
// string literal resolves to its value, anything else to the dynamic
// placeholder.
func goStringArg(expr ast.Expr) string {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return m.DynamicPathPlaceholder
	}

	return trimQuotes(lit.Value)
}

// goGuardRefs renders call arguments and keeps the ones the table
// recognizes as guard-relevant.
func goGuardRefs(table *GuardTable, args []ast.Expr) []string {
	var out []string

	for _, arg := range args {
		ref := goExprString(arg)
		if table.Classify(ref) != GuardIrrelevant {
			out = append(out, ref)
		}
	}

	return out
}

// goLine returns the 1-based line of a node.
func goLine(fset *token.FileSet, node ast.Node) int {
	return fset.Position(node.Pos()).Line
}

// receiverIdent returns the root identifier a method chain hangs off,
// e.g. "r" for r.With(auth).Get(...).
func receiverIdent(expr ast.Expr) (string, bool) {
	for {
		switch e := expr.(type) {
		case *ast.Ident:
			return e.Name, true
		case *ast.SelectorExpr:
			expr = e.X
		case *ast.CallExpr:
			expr = e.Fun
		default:
			return "", false
		}
	}
}

// importsPackage reports whether the raw source references an import
// path fragment. Cheaper than parsing for Match purposes.
func importsPackage(content []byte, fragment string) bool {
	return strings.Contains(string(content), fragment)
}
