package frameworks

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// reactAdapter extracts react-router JSX route trees. A <Route> with
// children becomes a scope; auth wrapper elements (<RequireAuth>,
// <PrivateRoute> and the like) become guard-carrying scopes around
// everything they enclose. Client-side routes answer GET only.
type reactAdapter struct {
	guards GuardTable
}

func newReactAdapter() *reactAdapter {
	return &reactAdapter{
		guards: GuardTable{
			Auth: []string{
				"requireauth", "privateroute", "protectedroute", "authguard",
				"authenticated", "withauth", "authroute",
			},
			Public: []string{"publicroute", "publiconly"},
			Hints:  defaultHints(),
		},
	}
}

func (a *reactAdapter) ID() m.Framework { return m.FrameworkReact }

func (a *reactAdapter) Guards() *GuardTable { return &a.guards }

var reactExts = map[string]bool{".jsx": true, ".tsx": true, ".js": true, ".ts": true}

func (a *reactAdapter) Match(file m.SourceFile) bool {
	if !reactExts[filepath.Ext(string(file.Path))] {
		return false
	}

	content := string(file.Content)

	return strings.Contains(content, "react-router") || strings.Contains(content, "<Route")
}

var (
	reactTagRe      = regexp.MustCompile(`<(/?)([A-Z]\w*)((?:[^<>"{]|"[^"]*"|\{[^}]*\})*?)(/?)>`)
	reactPathAttrRe = regexp.MustCompile(`\bpath\s*=\s*("([^"]*)"|\{[^}]*\})`)
	reactElemAttrRe = regexp.MustCompile(`\b(?:element|component)\s*=\s*\{\s*<?\s*([\w.]+)`)
)

func (a *reactAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	var (
		ext   Extraction
		stack scopeStack
		depth int
	)

	eachLine(file.Content, func(lineNo int, line string) {
		for _, tag := range reactTagRe.FindAllStringSubmatch(line, -1) {
			closing := tag[1] == "/"
			name := tag[2]
			attrs := tag[3]
			selfClosed := tag[4] == "/"

			isGuardTag := a.guards.Classify(name) != GuardIrrelevant
			isRoute := name == "Route"

			if closing {
				if isRoute || isGuardTag {
					depth--
					stack.closeAt(depth + 1)
				}

				continue
			}

			switch {
			case isRoute:
				path, dynamic := reactPath(attrs)
				handler := ""

				if match := reactElemAttrRe.FindStringSubmatch(attrs); match != nil {
					handler = match[1]
				}

				if selfClosed {
					ext.Candidates = append(ext.Candidates, m.RouteCandidate{
						Framework:   a.ID(),
						PathPattern: path,
						Methods:     []string{"GET"},
						HandlerRef:  handler,
						ScopeID:     stack.current(),
						Location:    m.SourceLocation{File: file.Path, Line: lineNo},
					})

					continue
				}

				// Layout route: contributes its path to children and is
				// itself a navigable route when it renders an element.
				id := scopeIDAt(file.Path, lineNo)
				ext.Scopes = append(ext.Scopes, m.Scope{
					ID:          id,
					MountPrefix: path,
					ParentID:    stack.current(),
					Name:        handler,
					Location:    m.SourceLocation{File: file.Path, Line: lineNo},
				})

				if handler != "" && (path != "" || dynamic) {
					ext.Candidates = append(ext.Candidates, m.RouteCandidate{
						Framework:   a.ID(),
						PathPattern: path,
						Methods:     []string{"GET"},
						HandlerRef:  handler,
						ScopeID:     stack.current(),
						Location:    m.SourceLocation{File: file.Path, Line: lineNo},
					})
				}

				depth++
				stack.push(id, depth)

			case isGuardTag && !selfClosed:
				id := scopeIDAt(file.Path, lineNo)
				ext.Scopes = append(ext.Scopes, m.Scope{
					ID:              id,
					InheritedGuards: []string{name},
					ParentID:        stack.current(),
					Name:            name,
					Location:        m.SourceLocation{File: file.Path, Line: lineNo},
				})

				depth++
				stack.push(id, depth)
			}
		}
	})

	return ext, nil
}

// reactPath resolves the path attribute; a braced expression is
// dynamic.
func reactPath(attrs string) (string, bool) {
	match := reactPathAttrRe.FindStringSubmatch(attrs)
	if match == nil {
		return "", false
	}

	if match[2] == "" && strings.HasPrefix(match[1], "{") {
		return m.DynamicPathPlaceholder, true
	}

	return match[2], false
}

func init() {
	Register(newReactAdapter())
}
