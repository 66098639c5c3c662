package frameworks

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// sanicAdapter extracts Sanic routes. The decorator surface mirrors
// Flask closely; the auth vocabulary comes from sanic-jwt and
// sanic-auth conventions (@protected, @inject_user, @scoped).
type sanicAdapter struct {
	guards GuardTable
}

func newSanicAdapter() *sanicAdapter {
	return &sanicAdapter{
		guards: GuardTable{
			Auth: []string{
				"protected", "scoped", "inject_user", "login_required",
				"auth.login_required", "authorized",
			},
			Public: []string{"no_auth", "allow_anonymous"},
			Hints:  defaultHints(),
		},
	}
}

func (a *sanicAdapter) ID() m.Framework { return m.FrameworkSanic }

func (a *sanicAdapter) Guards() *GuardTable { return &a.guards }

func (a *sanicAdapter) Match(file m.SourceFile) bool {
	if filepath.Ext(string(file.Path)) != ".py" {
		return false
	}

	content := string(file.Content)

	return strings.Contains(content, "sanic") || strings.Contains(content, "Sanic")
}

var (
	sanicBlueprintRe = regexp.MustCompile(`^\s*(\w+)\s*=\s*Blueprint\s*\((.*)`)
	sanicRouteDecoRe = regexp.MustCompile(`^(\w+)\.(route|get|post|put|patch|delete|head|options|websocket)$`)
)

func (a *sanicAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	var ext Extraction

	scopeByVar := map[string]m.ScopeID{}

	eachLine(file.Content, func(lineNo int, line string) {
		match := sanicBlueprintRe.FindStringSubmatch(line)
		if match == nil {
			return
		}

		prefix := ""
		if kw := flaskULPrefixRe.FindStringSubmatch(match[2]); kw != nil {
			prefix = pathOrPlaceholder(kw[1])
		}

		id := scopeIDAt(file.Path, lineNo)
		scopeByVar[match[1]] = id
		ext.Scopes = append(ext.Scopes, m.Scope{
			ID:          id,
			MountPrefix: prefix,
			Name:        match[1],
			Location:    m.SourceLocation{File: file.Path, Line: lineNo},
		})
	})

	// One candidate per route decorator: stacked registrations alias a
	// view under several paths and each must be reported.
	walkPyDefs(file.Content, func(def pyDef) {
		var guards []string

		for _, deco := range def.decorators {
			if sanicRouteDecoRe.MatchString(decoratorName(deco)) {
				continue
			}

			if a.guards.Classify(deco.text) != GuardIrrelevant {
				guards = append(guards, deco.text)
			}
		}

		for _, deco := range def.decorators {
			name := decoratorName(deco)

			match := sanicRouteDecoRe.FindStringSubmatch(name)
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
				Location:       m.SourceLocation{File: file.Path, Line: def.line},
			}

			switch match[2] {
			case "route":
				candidate.Methods = pyMethodsArg(args)
			case "websocket":
				candidate.Methods = []string{"GET"}
			default:
				candidate.Methods = []string{strings.ToUpper(match[2])}
			}

			ext.Candidates = append(ext.Candidates, candidate)
		}
	})

	return ext, nil
}

func init() {
	Register(newSanicAdapter())
}
