package frameworks

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// angularAdapter extracts Angular Routes arrays. Route objects with a
// children array become scopes; canActivate/canActivateChild/canLoad
// guard arrays carry the auth vocabulary. Client-side routes answer
// GET only.
type angularAdapter struct {
	guards GuardTable
}

func newAngularAdapter() *angularAdapter {
	return &angularAdapter{
		guards: GuardTable{
			Auth: []string{
				"authguard", "authenticationguard", "loggedinguard",
				"roleguard", "permissionguard", "adminguard", "canactivate",
			},
			Public: []string{"publicguard", "noauthguard"},
			Hints:  defaultHints(),
		},
	}
}

func (a *angularAdapter) ID() m.Framework { return m.FrameworkAngular }

func (a *angularAdapter) Guards() *GuardTable { return &a.guards }

func (a *angularAdapter) Match(file m.SourceFile) bool {
	ext := filepath.Ext(string(file.Path))
	if ext != ".ts" && ext != ".js" {
		return false
	}

	content := string(file.Content)

	return strings.Contains(content, "@angular/router") ||
		strings.Contains(content, "RouterModule") ||
		strings.Contains(content, "canActivate")
}

var (
	angularPathRe      = regexp.MustCompile(`\bpath\s*:\s*('([^']*)'|"([^"]*)"|[^,}\s]+)`)
	angularComponentRe = regexp.MustCompile(`\b(?:component|loadComponent|loadChildren|redirectTo)\s*:\s*([\w.'"/()=> -]+)`)
	angularGuardListRe = regexp.MustCompile(`\b(?:canActivate|canActivateChild|canLoad|canMatch)\s*:\s*\[([^\]]*)\]`)
	angularChildrenRe  = regexp.MustCompile(`\bchildren\s*:\s*\[`)
)

// angularFrame accumulates one route object while its lines stream by.
type angularFrame struct {
	depth   int
	line    int
	path    string
	handler string
	guards  []string
	scopeID m.ScopeID
}

func (a *angularAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	var (
		ext    Extraction
		stack  scopeStack
		frames []angularFrame
		depth  int
	)

	finalize := func(frame angularFrame) {
		if frame.scopeID != "" {
			// Emitted as a scope when children appeared; the scope row is
			// already recorded.
			return
		}

		ext.Candidates = append(ext.Candidates, m.RouteCandidate{
			Framework:      a.ID(),
			PathPattern:    frame.path,
			Methods:        []string{"GET"},
			HandlerRef:     frame.handler,
			DeclaredGuards: frame.guards,
			ScopeID:        stack.current(),
			Location:       m.SourceLocation{File: file.Path, Line: frame.line},
		})
	}

	eachLine(file.Content, func(lineNo int, line string) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			return
		}

		newDepth := depth + braceDelta(line)

		// Close finished route objects and their scopes.
		for len(frames) > 0 && newDepth < frames[len(frames)-1].depth {
			frame := frames[len(frames)-1]
			frames = frames[:len(frames)-1]
			stack.closeAt(frame.depth)
			finalize(frame)
		}

		if match := angularPathRe.FindStringSubmatch(line); match != nil {
			frame := angularFrame{depth: newDepth, line: lineNo, path: angularPathValue(match)}

			if single := singleLineObject(line); single {
				frame = a.fillFrame(frame, line)
				finalize(frame)
			} else {
				frames = append(frames, a.fillFrame(frame, line))
			}
		} else if len(frames) > 0 {
			frames[len(frames)-1] = a.fillFrame(frames[len(frames)-1], line)
		}

		// children: [ promotes the innermost frame to a scope.
		if angularChildrenRe.MatchString(line) && len(frames) > 0 {
			frame := &frames[len(frames)-1]
			if frame.scopeID == "" {
				frame.scopeID = scopeIDAt(file.Path, frame.line)
				ext.Scopes = append(ext.Scopes, m.Scope{
					ID:              frame.scopeID,
					MountPrefix:     frame.path,
					InheritedGuards: frame.guards,
					ParentID:        stack.current(),
					Name:            frame.handler,
					Location:        m.SourceLocation{File: file.Path, Line: frame.line},
				})
				stack.push(frame.scopeID, frame.depth)
			}
		}

		depth = newDepth
	})

	for len(frames) > 0 {
		frame := frames[len(frames)-1]
		frames = frames[:len(frames)-1]
		stack.closeAt(frame.depth)
		finalize(frame)
	}

	return ext, nil
}

// fillFrame folds one line's attributes into the accumulating route
// object.
func (a *angularAdapter) fillFrame(frame angularFrame, line string) angularFrame {
	if match := angularComponentRe.FindStringSubmatch(line); match != nil && frame.handler == "" {
		frame.handler = strings.TrimSpace(match[1])
	}

	if match := angularGuardListRe.FindStringSubmatch(line); match != nil {
		for _, guard := range strings.Split(match[1], ",") {
			guard = strings.TrimSpace(guard)
			if guard != "" {
				frame.guards = append(frame.guards, guard)
			}
		}
	}

	return frame
}

// angularPathValue resolves the matched path literal, treating template
// strings and identifiers as dynamic.
func angularPathValue(match []string) string {
	if match[2] != "" || strings.HasPrefix(match[1], "'") {
		return match[2]
	}

	if match[3] != "" || strings.HasPrefix(match[1], `"`) {
		return match[3]
	}

	return m.DynamicPathPlaceholder
}

// singleLineObject reports whether a route object opens and closes on
// one line.
func singleLineObject(line string) bool {
	return strings.Contains(line, "{") && braceDelta(line) <= 0
}

func init() {
	Register(newAngularAdapter())
}
