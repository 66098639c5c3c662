package frameworks

import (
	"regexp"
	"strings"
)

// javaDeclKind distinguishes the declaration an annotation stack
// applies to.
type javaDeclKind int

const (
	javaClass javaDeclKind = iota
	javaMethod
)

// javaDecl is a class or method declaration with the annotations
// stacked directly above it.
type javaDecl struct {
	kind        javaDeclKind
	name        string
	line        int
	annotations []logicalLine
}

var (
	javaClassRe  = regexp.MustCompile(`^\s*(?:public\s+|final\s+|abstract\s+)*class\s+(\w+)`)
	javaMethodRe = regexp.MustCompile(`^\s*(?:public|protected|private)\s+(?:static\s+)?[\w<>,.\[\]\s]+?\s(\w+)\s*\(`)
)

// walkJavaDecls walks a Java file and calls fn for every class or
// method declaration that carries at least one annotation. Annotations
// with unbalanced parentheses absorb their continuation lines.
func walkJavaDecls(content []byte, fn func(decl javaDecl)) {
	var stack []logicalLine

	open := 0 // unbalanced parens of the annotation being continued

	eachLine(content, func(lineNo int, line string) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "*") {
			return
		}

		if open > 0 && len(stack) > 0 {
			stack[len(stack)-1].text += " " + trimmed
			open += strings.Count(trimmed, "(") - strings.Count(trimmed, ")")

			return
		}

		if strings.HasPrefix(trimmed, "@") {
			stack = append(stack, logicalLine{text: trimmed, line: lineNo})
			open = strings.Count(trimmed, "(") - strings.Count(trimmed, ")")

			return
		}

		if match := javaClassRe.FindStringSubmatch(line); match != nil {
			if len(stack) > 0 {
				fn(javaDecl{kind: javaClass, name: match[1], line: lineNo, annotations: stack})
			}

			stack = nil

			return
		}

		if match := javaMethodRe.FindStringSubmatch(line); match != nil {
			if len(stack) > 0 {
				fn(javaDecl{kind: javaMethod, name: match[1], line: lineNo, annotations: stack})
			}

			stack = nil

			return
		}

		stack = nil
	})
}

var javaAnnNameRe = regexp.MustCompile(`^@(\w+)`)

// annotationName returns the bare annotation identifier of one stacked
// line.
func annotationName(ann logicalLine) string {
	match := javaAnnNameRe.FindStringSubmatch(ann.text)
	if match == nil {
		return ""
	}

	return match[1]
}

// annotationPath pulls the first quoted literal out of an annotation's
// arguments, the conventional position of the path value.
func annotationPath(ann logicalLine) string {
	quoted := quotedStrings(ann.text)
	if len(quoted) == 0 {
		return ""
	}

	return quoted[0]
}
