// Package frameworks contains one extraction adapter per supported web
// framework family. Adapters are independent: each owns a pattern table
// mapping the framework's route-registration and guard syntax onto
// route candidates and scopes, and adding a framework means adding one
// file and one Register call.
package frameworks

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// Extraction is everything one adapter pulled from a single file.
type Extraction struct {
	Candidates []m.RouteCandidate
	Scopes     []m.Scope
}

// Adapter recognizes one framework family's route-declaration and
// guard-attachment syntax within a single source file.
type Adapter interface {
	// ID returns the framework identifier accepted by --framework.
	ID() m.Framework

	// Match reports whether the file plausibly belongs to this
	// framework. Used for autodetection when no selector is given.
	Match(file m.SourceFile) bool

	// Extract scans one file and emits raw candidates and scopes.
	// Extraction trouble is reported through diagnostics, never by
	// aborting the scan.
	Extract(file m.SourceFile) (Extraction, []m.Diagnostic)

	// Guards exposes the framework's guard classification table for the
	// classifier.
	Guards() *GuardTable
}

// GuardClass is the classification of one guard reference against a
// framework's pattern table.
type GuardClass int

const (
	// GuardIrrelevant marks a reference with no auth significance.
	GuardIrrelevant GuardClass = iota

	// GuardAuth marks a reference known to require authentication or
	// authorization.
	GuardAuth

	// GuardPublic marks an explicit no-auth override. Overrides are
	// strictly local: they force UNPROTECTED on the carrying route and
	// un-overridden descendants only.
	GuardPublic

	// GuardSuspicious marks a reference that conventionally signals
	// auth in the ecosystem but is not in the known table. Routes
	// carrying only suspicious guards are classified AMBIGUOUS.
	GuardSuspicious
)

// GuardTable classifies guard references for one framework. Matching
// is case-insensitive substring matching over the recorded reference,
// which tolerates call arguments and namespace prefixes.
type GuardTable struct {
	// Auth entries are known requires-authentication markers.
	Auth []string
	// Public entries are explicit no-auth override markers.
	Public []string
	// Hints are substrings that flag an unknown guard as auth-like.
	Hints []string
}

// Classify maps one guard reference to its class. Public overrides win
// over auth matches so that e.g. "skip_before_action :authenticate"
// is not mistaken for a guard.
func (t *GuardTable) Classify(guard string) GuardClass {
	lower := strings.ToLower(guard)

	for _, pattern := range t.Public {
		if strings.Contains(lower, strings.ToLower(pattern)) {
			return GuardPublic
		}
	}

	for _, pattern := range t.Auth {
		if strings.Contains(lower, strings.ToLower(pattern)) {
			return GuardAuth
		}
	}

	for _, hint := range t.Hints {
		if strings.Contains(lower, hint) {
			return GuardSuspicious
		}
	}

	return GuardIrrelevant
}

// Extend appends user-supplied patterns (from a --patterns file) to the
// table.
func (t *GuardTable) Extend(auth, public []string) {
	t.Auth = append(t.Auth, auth...)
	t.Public = append(t.Public, public...)
}

// defaultHints are auth-like name fragments shared by most ecosystems.
// Individual adapters extend them with framework-specific vocabulary.
func defaultHints() []string {
	return []string{
		"auth", "login", "logged", "session", "token", "jwt",
		"perm", "role", "acl", "guard", "secure", "protect",
		"admin", "identity", "credential",
	}
}

// eachLine calls fn for every line of content with 1-based numbering.
func eachLine(content []byte, fn func(lineNo int, line string)) {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		fn(i+1, line)
	}
}

// trimQuotes removes one layer of matching single, double or backtick
// quotes.
func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}

	first, last := s[0], s[len(s)-1]
	if first == last && (first == '\'' || first == '"' || first == '`') {
		return s[1 : len(s)-1]
	}

	return s
}

var quotedStringRe = regexp.MustCompile(`"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'`)

// quotedStrings returns every quoted literal in s, unquoted, in order.
func quotedStrings(s string) []string {
	matches := quotedStringRe.FindAllString(s, -1)

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, trimQuotes(match))
	}

	return out
}

// scopeIDAt builds a scan-unique scope id from a declaration site.
func scopeIDAt(file m.Path, line int) m.ScopeID {
	return m.ScopeID(fmt.Sprintf("%s:%d", file, line))
}

// parseFailure builds the standard per-file extraction diagnostic.
func parseFailure(file m.Path, line int, detail string) m.Diagnostic {
	return m.Diagnostic{
		File:     file,
		Line:     line,
		Message:  detail,
		Severity: m.SeverityWarning,
	}
}

// logicalLine is one statement after continuation merging, tagged with
// the physical line its first fragment appeared on.
type logicalLine struct {
	text string
	line int
}

// logicalLines merges physical lines whose trimmed continuation starts
// with contPrefix (e.g. "->" for PHP fluent chains) into the preceding
// statement, preserving first-line numbering for provenance.
func logicalLines(content []byte, contPrefix string) []logicalLine {
	var out []logicalLine

	eachLine(content, func(lineNo int, line string) {
		trimmed := strings.TrimSpace(line)

		if len(out) > 0 && contPrefix != "" && strings.HasPrefix(trimmed, contPrefix) {
			out[len(out)-1].text += trimmed

			return
		}

		out = append(out, logicalLine{text: line, line: lineNo})
	})

	return out
}

// splitCallArgs splits a call argument list on top-level commas,
// leaving nested brackets and quoted strings intact.
func splitCallArgs(inner string) []string {
	var (
		out   []string
		depth int
		quote byte
		start int
	)

	for i := 0; i < len(inner); i++ {
		c := inner[i]

		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}

			continue
		}

		switch c {
		case '\'', '"', '`':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}

	if last := strings.TrimSpace(inner[start:]); last != "" {
		out = append(out, last)
	}

	return out
}

var callIdentRe = regexp.MustCompile(`([A-Za-z_][\w.:$>-]*)\s*\(`)

// guardCalls returns every called identifier in a text fragment that
// the table recognizes as guard-relevant.
func guardCalls(table *GuardTable, text string) []string {
	var out []string

	for _, match := range callIdentRe.FindAllStringSubmatch(text, -1) {
		if table.Classify(match[1]) != GuardIrrelevant {
			out = append(out, match[1])
		}
	}

	return out
}

// pyDecorator is one @decorator line captured while walking a Python
// file, kept until the def it applies to is reached.
type pyDecorator struct {
	text string
	line int
}

var pyDecoratorRe = regexp.MustCompile(`^\s*@\s*([\w.]+)\s*(\(.*)?$`)

// parsePyDecorator splits an @decorator line into its dotted name and
// raw argument text. Returns ok=false for non-decorator lines.
func parsePyDecorator(line string) (name, args string, ok bool) {
	match := pyDecoratorRe.FindStringSubmatch(line)
	if match == nil {
		return "", "", false
	}

	return match[1], match[2], true
}

// hasDynamicPath reports whether a route argument is built from
// something other than a plain literal, e.g. string concatenation or a
// variable. Such candidates get the dynamic placeholder instead of
// being dropped.
func hasDynamicPath(arg string) bool {
	trimmed := strings.TrimSpace(arg)
	if trimmed == "" {
		return true
	}

	if quoted := quotedStrings(trimmed); len(quoted) == 1 {
		// A single literal that spans the whole argument is static.
		rest := strings.Replace(trimmed, quotedStringRe.FindString(trimmed), "", 1)
		rest = strings.Trim(rest, " \t,")

		return rest != ""
	}

	return true
}

// pathOrPlaceholder resolves a raw route-path argument to its literal
// value or the dynamic placeholder. Python raw-string prefixes are
// tolerated.
func pathOrPlaceholder(arg string) string {
	trimmed := strings.TrimSpace(arg)
	if len(trimmed) > 1 && trimmed[0] == 'r' && (trimmed[1] == '\'' || trimmed[1] == '"') {
		trimmed = trimmed[1:]
	}

	if hasDynamicPath(trimmed) {
		return m.DynamicPathPlaceholder
	}

	return trimQuotes(trimmed)
}
