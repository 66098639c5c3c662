package frameworks

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// djangoAdapter extracts routes from Django URLConf files, including
// DRF router registrations. Guard wrappers applied inline in the
// URLConf (login_required(views.foo) and friends) are recorded as
// declared guards; DRF permission decorators are covered by the same
// table when they appear in wrapped as_view calls.
type djangoAdapter struct {
	guards GuardTable
}

func newDjangoAdapter() *djangoAdapter {
	return &djangoAdapter{
		guards: GuardTable{
			Auth: []string{
				"login_required", "permission_required",
				"staff_member_required", "user_passes_test",
				"isauthenticated", "isadminuser",
				"isauthenticatedorreadonly", "djangomodelpermissions",
				"has_perm",
			},
			Public: []string{"allowany", "login_not_required"},
			Hints:  defaultHints(),
		},
	}
}

func (a *djangoAdapter) ID() m.Framework { return m.FrameworkDjango }

func (a *djangoAdapter) Guards() *GuardTable { return &a.guards }

func (a *djangoAdapter) Match(file m.SourceFile) bool {
	if filepath.Ext(string(file.Path)) != ".py" {
		return false
	}

	content := string(file.Content)

	return strings.Contains(content, "urlpatterns") ||
		strings.Contains(content, "django.urls") ||
		strings.Contains(content, "rest_framework")
}

var (
	djangoRouteRe    = regexp.MustCompile(`\b(path|re_path|url)\s*\((.*)`)
	djangoRegisterRe = regexp.MustCompile(`\b(\w+)\.register\s*\((.*)`)
)

func (a *djangoAdapter) Extract(file m.SourceFile) (Extraction, []m.Diagnostic) {
	var ext Extraction

	eachLine(file.Content, func(lineNo int, line string) {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			return
		}

		if match := djangoRouteRe.FindStringSubmatch(line); match != nil {
			args := splitCallArgs(strings.TrimSuffix(strings.TrimSpace(match[2]), ")"))
			if len(args) == 0 {
				return
			}

			// include() mounts another URLConf; the mounted module is a
			// separate file, so only the direct view registrations here
			// become candidates.
			if len(args) > 1 && strings.HasPrefix(args[1], "include(") {
				return
			}

			handler := ""
			if len(args) > 1 {
				handler = args[1]
			}

			ext.Candidates = append(ext.Candidates, m.RouteCandidate{
				Framework:      a.ID(),
				PathPattern:    pathOrPlaceholder(args[0]),
				HandlerRef:     handler,
				DeclaredGuards: guardCalls(&a.guards, strings.Join(args[1:], ", ")),
				Location:       m.SourceLocation{File: file.Path, Line: lineNo},
			})

			return
		}

		if match := djangoRegisterRe.FindStringSubmatch(line); match != nil {
			args := splitCallArgs(strings.TrimSuffix(strings.TrimSpace(match[2]), ")"))
			if len(args) < 2 {
				return
			}

			ext.Candidates = append(ext.Candidates, m.RouteCandidate{
				Framework:   a.ID(),
				PathPattern: pathOrPlaceholder(args[0]),
				HandlerRef:  args[1],
				Location:    m.SourceLocation{File: file.Path, Line: lineNo},
			})
		}
	})

	return ext, nil
}

func init() {
	Register(newDjangoAdapter())
}
