package frameworks

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// symfonyAdapter extracts Symfony controller routes declared through
// #[Route] attributes or @Route annotations. A class-level Route
// becomes a scope; IsGranted/Security markers at either level are
// guards. PUBLIC_ACCESS is the framework's explicit no-auth override.
type symfonyAdapter struct {
	guards GuardTable
}

func newSymfonyAdapter() *symfonyAdapter {
	return &symfonyAdapter{
		guards: GuardTable{
			Auth: []string{
				"isgranted", "security(", "is_granted", "role_",
				"fully_authenticated", "denyaccessunlessgranted",
			},
			Public: []string{"public_access", "is_granted('public", "securityattribute(false"},
			Hints:  defaultHints(),
		},
	}
}

func (a *symfonyAdapter) ID() m.Framework { return m.FrameworkSymfony }

func (a *symfonyAdapter) Guards() *GuardTable { return &a.guards }

func (a *symfonyAdapter) Match(file m.SourceFile) bool {
	if filepath.Ext(string(file.Path)) != ".php" {
		return false
	}

	content := string(file.Content)

	return strings.Contains(content, "#[Route(") || strings.Contains(content, "@Route(") ||
		strings.Contains(content, "Symfony\\Component\\Routing")
}

var (
	symfonyAttrRe     = regexp.MustCompile(`(?:#\[|@)(\w+)\s*\((.*?)\)\]?\s*$`)
	symfonyClassRe    = regexp.MustCompile(`^\s*(?:final\s+|abstract\s+)?class\s+(\w+)`)
	symfonyFunctionRe = regexp.MustCompile(`function\s+(\w+)\s*\(`)
	symfonyMethodsRe  = regexp.MustCompile(`methods\s*[:=]\s*\[?([^\])]*)\]?`)
)

func (a *symfonyAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	var (
		ext        Extraction
		pending    []logicalLine // attribute/annotation lines awaiting a class or function
		classScope m.ScopeID
	)

	eachLine(file.Content, func(lineNo int, line string) {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "#[") || strings.HasPrefix(trimmed, "* @") || strings.HasPrefix(trimmed, "@") {
			pending = append(pending, logicalLine{text: trimmed, line: lineNo})

			return
		}

		if match := symfonyClassRe.FindStringSubmatch(line); match != nil {
			route, guards := a.splitAttributes(pending)
			pending = nil

			if route == nil && len(guards) == 0 {
				classScope = ""

				return
			}

			prefix := ""
			routeLine := lineNo

			if route != nil {
				prefix = pathOrPlaceholder(firstCallArg("(" + route.text + ")"))
				routeLine = route.line
			}

			classScope = scopeIDAt(file.Path, routeLine)
			ext.Scopes = append(ext.Scopes, m.Scope{
				ID:              classScope,
				MountPrefix:     prefix,
				InheritedGuards: guards,
				Name:            match[1],
				Location:        m.SourceLocation{File: file.Path, Line: routeLine},
			})

			return
		}

		if match := symfonyFunctionRe.FindStringSubmatch(line); match != nil {
			route, guards := a.splitAttributes(pending)
			pending = nil

			if route == nil {
				return
			}

			var methods []string
			if m := symfonyMethodsRe.FindStringSubmatch(route.text); m != nil {
				methods = quotedStrings(m[1])
			}

			ext.Candidates = append(ext.Candidates, m.RouteCandidate{
				Framework:      a.ID(),
				PathPattern:    pathOrPlaceholder(firstCallArg("(" + route.text + ")")),
				Methods:        methods,
				HandlerRef:     match[1],
				DeclaredGuards: guards,
				ScopeID:        classScope,
				Location:       m.SourceLocation{File: file.Path, Line: route.line},
			})

			return
		}

		if trimmed != "" && !strings.HasPrefix(trimmed, "*") && !strings.HasPrefix(trimmed, "/") {
			pending = nil
		}
	})

	return ext, nil
}

// splitAttributes separates the Route attribute from guard attributes
// among the pending attribute lines.
func (a *symfonyAdapter) splitAttributes(pending []logicalLine) (route *logicalLine, guards []string) {
	for i := range pending {
		match := symfonyAttrRe.FindStringSubmatch(pending[i].text)
		if match == nil {
			continue
		}

		if match[1] == "Route" {
			route = &logicalLine{text: match[2], line: pending[i].line}

			continue
		}

		attr := match[1] + "(" + match[2] + ")"
		if a.guards.Classify(attr) != GuardIrrelevant {
			guards = append(guards, attr)
		}
	}

	return route, guards
}

func init() {
	Register(newSymfonyAdapter())
}
