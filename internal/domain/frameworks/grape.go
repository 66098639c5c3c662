package frameworks

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// grapeAdapter extracts Grape API classes. The class body is one big
// scope (prefix/version statements feed its mount prefix); nested
// namespace/resource blocks become child scopes; a before block calling
// authenticate!/authorize! guards the scope it appears in.
type grapeAdapter struct {
	guards GuardTable
}

func newGrapeAdapter() *grapeAdapter {
	return &grapeAdapter{
		guards: GuardTable{
			Auth: []string{
				"authenticate", "authorize", "require_login",
				"doorkeeper_authorize", "current_user!",
			},
			Public: []string{"skip_authentication", "allow_anonymous"},
			Hints:  defaultHints(),
		},
	}
}

func (a *grapeAdapter) ID() m.Framework { return m.FrameworkGrape }

func (a *grapeAdapter) Guards() *GuardTable { return &a.guards }

func (a *grapeAdapter) Match(file m.SourceFile) bool {
	if filepath.Ext(string(file.Path)) != ".rb" {
		return false
	}

	return strings.Contains(string(file.Content), "Grape::API")
}

var (
	grapeClassRe     = regexp.MustCompile(`^\s*class\s+([\w:]+)\s*<\s*Grape::API`)
	grapePrefixRe    = regexp.MustCompile(`^\s*prefix\s+[:'"]([\w/]+)`)
	grapeVersionRe   = regexp.MustCompile(`^\s*version\s+['"]([^'"]+)['"]`)
	grapeNamespaceRe = regexp.MustCompile(`^\s*(?:namespace|resource|resources|group|segment)\s+[:'"]([\w/]*)['"]?.*\bdo\b`)
	grapeVerbRe      = regexp.MustCompile(`^\s*(get|post|put|patch|delete|head|options)\b\s*([^\s]*)\s*do\b`)
	grapeAuthCallRe  = regexp.MustCompile(`\b(\w*(?:authenticate|authorize)\w*!?)`)
)

func (a *grapeAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	var (
		ext   Extraction
		stack scopeStack
		depth int
	)

	scopeIndex := map[m.ScopeID]int{}

	pushScope := func(lineNo int, prefix, name string) {
		id := scopeIDAt(file.Path, lineNo)
		scopeIndex[id] = len(ext.Scopes)
		ext.Scopes = append(ext.Scopes, m.Scope{
			ID:          id,
			MountPrefix: prefix,
			ParentID:    stack.current(),
			Name:        name,
			Location:    m.SourceLocation{File: file.Path, Line: lineNo},
		})
		stack.push(id, depth+1)
	}

	eachLine(file.Content, func(lineNo int, line string) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			return
		}

		if trimmed == "end" || strings.HasPrefix(trimmed, "end ") {
			depth--
			stack.closeAt(depth + 1)

			return
		}

		opensBlock := strings.HasSuffix(trimmed, " do") || strings.Contains(trimmed, " do |") ||
			grapeClassRe.MatchString(line)

		switch {
		case grapeClassRe.MatchString(line):
			match := grapeClassRe.FindStringSubmatch(line)
			pushScope(lineNo, "", match[1])

		case grapePrefixRe.MatchString(line) || grapeVersionRe.MatchString(line):
			segment := ""
			if match := grapePrefixRe.FindStringSubmatch(line); match != nil {
				segment = match[1]
			} else if match := grapeVersionRe.FindStringSubmatch(line); match != nil {
				segment = match[1]
			}

			if current := stack.current(); current != "" && segment != "" {
				idx := scopeIndex[current]
				ext.Scopes[idx].MountPrefix = joinSegments(ext.Scopes[idx].MountPrefix, segment)
			}

		case grapeNamespaceRe.MatchString(line):
			match := grapeNamespaceRe.FindStringSubmatch(line)
			pushScope(lineNo, match[1], match[1])

		case grapeVerbRe.MatchString(line):
			match := grapeVerbRe.FindStringSubmatch(line)
			path := strings.Trim(match[2], `'":`)
			ext.Candidates = append(ext.Candidates, m.RouteCandidate{
				Framework:   a.ID(),
				PathPattern: path,
				Methods:     []string{match[1]},
				HandlerRef:  match[1] + " " + path,
				ScopeID:     stack.current(),
				Location:    m.SourceLocation{File: file.Path, Line: lineNo},
			})

		default:
			if match := grapeAuthCallRe.FindStringSubmatch(line); match != nil {
				if current := stack.current(); current != "" && a.guards.Classify(match[1]) != GuardIrrelevant {
					idx := scopeIndex[current]
					ext.Scopes[idx].InheritedGuards = append(ext.Scopes[idx].InheritedGuards, match[1])
				}
			}
		}

		if opensBlock {
			depth++
		}
	})

	return ext, nil
}

// joinSegments concatenates two prefix fragments with a single
// separator.
func joinSegments(a, b string) string {
	a = strings.TrimSuffix(a, "/")
	b = strings.TrimPrefix(b, "/")

	if a == "" {
		return "/" + b
	}

	return a + "/" + b
}

func init() {
	Register(newGrapeAdapter())
}
