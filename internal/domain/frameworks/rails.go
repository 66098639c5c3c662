package frameworks

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// railsAdapter extracts Rails routing DSL files. namespace/scope blocks
// contribute mount prefixes; devise-style authenticate blocks
// contribute inherited guards. Block nesting is tracked through the
// do/end structure of the DSL.
type railsAdapter struct {
	guards GuardTable
}

func newRailsAdapter() *railsAdapter {
	return &railsAdapter{
		guards: GuardTable{
			Auth: []string{
				"authenticate", "authenticated", "require_login",
				"require_user", "devise", "doorkeeper",
			},
			Public: []string{"skip_before_action", "skip_authenticat", "allow_unauthenticated"},
			Hints:  defaultHints(),
		},
	}
}

func (a *railsAdapter) ID() m.Framework { return m.FrameworkRails }

func (a *railsAdapter) Guards() *GuardTable { return &a.guards }

func (a *railsAdapter) Match(file m.SourceFile) bool {
	if filepath.Ext(string(file.Path)) != ".rb" {
		return false
	}

	return strings.Contains(string(file.Content), "routes.draw") ||
		filepath.Base(string(file.Path)) == "routes.rb"
}

var (
	railsNamespaceRe = regexp.MustCompile(`^\s*namespace\s+:(\w+)\s+do\b`)
	railsScopeRe     = regexp.MustCompile(`^\s*scope\s+(?:path:\s*)?('[^']*'|"[^"]*")(.*)\bdo\b`)
	railsAuthBlockRe = regexp.MustCompile(`^\s*(authenticate[d]?)\s*(\(?\s*:(\w+))?.*\bdo\b`)
	railsVerbRe      = regexp.MustCompile(`^\s*(get|post|put|patch|delete|match|root)\b\s*(.*)`)
	railsResourcesRe = regexp.MustCompile(`^\s*(resources|resource)\s+:(\w+)(.*)`)
	railsViaRe       = regexp.MustCompile(`via:\s*(\[[^\]]*\]|:\w+)`)
	railsToRe        = regexp.MustCompile(`to:\s*('[^']*'|"[^"]*")`)
)

func (a *railsAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	var (
		ext   Extraction
		stack scopeStack
		depth int
	)

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

		opensBlock := strings.HasSuffix(trimmed, " do") || strings.Contains(trimmed, " do |")

		switch {
		case railsNamespaceRe.MatchString(line):
			match := railsNamespaceRe.FindStringSubmatch(line)
			a.pushScope(&ext, &stack, file.Path, lineNo, depth+1, match[1], nil)

		case railsScopeRe.MatchString(line):
			match := railsScopeRe.FindStringSubmatch(line)
			a.pushScope(&ext, &stack, file.Path, lineNo, depth+1, trimQuotes(match[1]), nil)

		case railsAuthBlockRe.MatchString(line):
			match := railsAuthBlockRe.FindStringSubmatch(line)
			guard := match[1]
			if match[3] != "" {
				guard += " :" + match[3]
			}

			a.pushScope(&ext, &stack, file.Path, lineNo, depth+1, "", []string{guard})

		case railsResourcesRe.MatchString(line):
			match := railsResourcesRe.FindStringSubmatch(line)
			ext.Candidates = append(ext.Candidates, m.RouteCandidate{
				Framework:   a.ID(),
				PathPattern: match[2],
				HandlerRef:  match[1] + " :" + match[2],
				ScopeID:     stack.current(),
				Location:    m.SourceLocation{File: file.Path, Line: lineNo},
			})

			if opensBlock {
				// Nested resources act as a scope for their block.
				a.pushScope(&ext, &stack, file.Path, lineNo, depth+1, match[2], nil)
			}

		case railsVerbRe.MatchString(line):
			if candidate, ok := a.verbCandidate(file.Path, lineNo, line, stack.current()); ok {
				ext.Candidates = append(ext.Candidates, candidate)
			}
		}

		if opensBlock {
			depth++
		}
	})

	return ext, nil
}

func (a *railsAdapter) pushScope(ext *Extraction, stack *scopeStack, file m.Path, line, depth int, prefix string, guards []string) {
	id := scopeIDAt(file, line)
	ext.Scopes = append(ext.Scopes, m.Scope{
		ID:              id,
		MountPrefix:     prefix,
		InheritedGuards: guards,
		ParentID:        stack.current(),
		Location:        m.SourceLocation{File: file, Line: line},
	})
	stack.push(id, depth)
}

func (a *railsAdapter) verbCandidate(file m.Path, lineNo int, line string, scope m.ScopeID) (m.RouteCandidate, bool) {
	match := railsVerbRe.FindStringSubmatch(line)

	verb, rest := match[1], strings.TrimSpace(match[2])

	var (
		path    string
		methods []string
	)

	switch verb {
	case "root":
		path = "/"
		methods = []string{"GET"}
	case "match":
		args := splitCallArgs(rest)
		if len(args) == 0 {
			return m.RouteCandidate{}, false
		}

		path = railsPathArg(args[0])

		if via := railsViaRe.FindStringSubmatch(rest); via != nil {
			if via[1] == ":all" {
				methods = nil
			} else {
				for _, sym := range strings.Split(strings.Trim(via[1], "[]"), ",") {
					methods = append(methods, strings.TrimPrefix(strings.TrimSpace(sym), ":"))
				}
			}
		}
	default:
		args := splitCallArgs(rest)
		if len(args) == 0 {
			return m.RouteCandidate{}, false
		}

		path = railsPathArg(args[0])
		methods = []string{verb}
	}

	handler := ""
	if to := railsToRe.FindStringSubmatch(rest); to != nil {
		handler = trimQuotes(to[1])
	}

	return m.RouteCandidate{
		Framework:   a.ID(),
		PathPattern: path,
		Methods:     methods,
		HandlerRef:  handler,
		ScopeID:     scope,
		Location:    m.SourceLocation{File: file, Line: lineNo},
	}, true
}

// railsPathArg accepts quoted paths and bare :symbol action names.
func railsPathArg(arg string) string {
	if strings.HasPrefix(arg, ":") {
		return strings.TrimPrefix(arg, ":")
	}

	return pathOrPlaceholder(arg)
}

func init() {
	Register(newRailsAdapter())
}
