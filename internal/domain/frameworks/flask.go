package frameworks

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// flaskAdapter extracts decorator-registered Flask routes. Blueprints
// become scopes carrying their url_prefix; register_blueprint links
// blueprint scopes to their parent when both live in the same file.
type flaskAdapter struct {
	guards GuardTable
}

func newFlaskAdapter() *flaskAdapter {
	return &flaskAdapter{
		guards: GuardTable{
			Auth: []string{
				"login_required", "jwt_required", "auth_required",
				"fresh_jwt_required", "oidc.require_login", "roles_required",
				"roles_accepted", "permission.require",
			},
			Public: []string{"public_endpoint", "csrf.exempt", "anonymous_allowed"},
			Hints:  defaultHints(),
		},
	}
}

func (a *flaskAdapter) ID() m.Framework { return m.FrameworkFlask }

func (a *flaskAdapter) Guards() *GuardTable { return &a.guards }

func (a *flaskAdapter) Match(file m.SourceFile) bool {
	if filepath.Ext(string(file.Path)) != ".py" {
		return false
	}

	content := string(file.Content)

	return strings.Contains(content, "flask") || strings.Contains(content, "Flask")
}

var (
	flaskBlueprintRe = regexp.MustCompile(`^\s*(\w+)\s*=\s*Blueprint\s*\((.*)`)
	flaskRegisterRe  = regexp.MustCompile(`(\w+)\.register_blueprint\s*\(\s*(\w+)`)
	flaskULPrefixRe  = regexp.MustCompile(`url_prefix\s*=\s*(r?['"][^'"]*['"])`)
	flaskRouteDecoRe = regexp.MustCompile(`^(\w+)\.(route|get|post|put|patch|delete)$`)
)

func (a *flaskAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	var ext Extraction

	scopeByVar := map[string]m.ScopeID{}
	scopeIndex := map[m.ScopeID]int{}

	// Pass one: blueprint declarations and registrations.
	eachLine(file.Content, func(lineNo int, line string) {
		if match := flaskBlueprintRe.FindStringSubmatch(line); match != nil {
			prefix := ""
			if kw := flaskULPrefixRe.FindStringSubmatch(match[2]); kw != nil {
				prefix = pathOrPlaceholder(kw[1])
			}

			id := scopeIDAt(file.Path, lineNo)
			scopeByVar[match[1]] = id
			scopeIndex[id] = len(ext.Scopes)
			ext.Scopes = append(ext.Scopes, m.Scope{
				ID:          id,
				MountPrefix: prefix,
				Name:        match[1],
				Location:    m.SourceLocation{File: file.Path, Line: lineNo},
			})

			return
		}

		if match := flaskRegisterRe.FindStringSubmatch(line); match != nil {
			parent, parentOK := scopeByVar[match[1]]
			child, childOK := scopeByVar[match[2]]

			if parentOK && childOK {
				ext.Scopes[scopeIndex[child]].ParentID = parent
			}
		}
	})

	// Pass two: decorated view functions.
	walkPyDefs(file.Content, func(def pyDef) {
		ext.Candidates = append(ext.Candidates, a.candidatesFromDef(file.Path, def, scopeByVar)...)
	})

	return ext, nil
}

// candidatesFromDef emits one candidate per route decorator on the def.
// Stacking route decorators aliases one view under several paths, so
// each registration must surface as its own candidate; the def's guard
// decorators apply to all of them.
func (a *flaskAdapter) candidatesFromDef(file m.Path, def pyDef, scopeByVar map[string]m.ScopeID) []m.RouteCandidate {
	var guards []string

	for _, deco := range def.decorators {
		if flaskRouteDecoRe.MatchString(decoratorName(deco)) {
			continue
		}

		if a.guards.Classify(deco.text) != GuardIrrelevant {
			guards = append(guards, deco.text)
		}
	}

	var out []m.RouteCandidate

	for _, deco := range def.decorators {
		name := decoratorName(deco)

		match := flaskRouteDecoRe.FindStringSubmatch(name)
		if match == nil {
			continue
		}

		args := strings.TrimPrefix(deco.text, name)
		candidate := m.RouteCandidate{
			Framework:      a.ID(),
			PathPattern:    pathOrPlaceholder(firstCallArg(args)),
			HandlerRef:     def.name,
			DeclaredGuards: guards,
			ScopeID:        scopeByVar[match[1]],
			Location:       m.SourceLocation{File: file, Line: def.line},
		}

		if match[2] == "route" {
			candidate.Methods = pyMethodsArg(args)
		} else {
			candidate.Methods = []string{strings.ToUpper(match[2])}
		}

		out = append(out, candidate)
	}

	return out
}

func init() {
	Register(newFlaskAdapter())
}
