package frameworks

import (
	"regexp"
	"strings"
)

// pyDef is one function definition together with the decorator stack
// directly above it.
type pyDef struct {
	name       string
	line       int
	decorators []pyDecorator
}

var pyDefRe = regexp.MustCompile(`^\s*(?:async\s+)?def\s+(\w+)\s*\(`)

// walkPyDefs walks a Python file and calls fn for every def carrying at
// least one decorator. Decorator lines accumulate until a def is
// reached; any other non-blank statement clears the stack.
func walkPyDefs(content []byte, fn func(def pyDef)) {
	var stack []pyDecorator

	eachLine(content, func(lineNo int, line string) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			return
		}

		if name, args, ok := parsePyDecorator(line); ok {
			stack = append(stack, pyDecorator{text: name + args, line: lineNo})

			return
		}

		if match := pyDefRe.FindStringSubmatch(line); match != nil {
			if len(stack) > 0 {
				fn(pyDef{name: match[1], line: lineNo, decorators: stack})
			}

			stack = nil

			return
		}

		// Continuation lines of a multi-line decorator keep the stack;
		// anything else resets it.
		if len(stack) > 0 && !strings.HasSuffix(strings.TrimSpace(stack[len(stack)-1].text), ")") {
			stack[len(stack)-1].text += " " + trimmed

			return
		}

		stack = nil
	})
}

// decoratorName returns the dotted name of a captured decorator without
// its call arguments.
func decoratorName(deco pyDecorator) string {
	if idx := strings.IndexByte(deco.text, '('); idx >= 0 {
		return deco.text[:idx]
	}

	return deco.text
}

var pyMethodsArgRe = regexp.MustCompile(`methods\s*=\s*[\[(]([^\])]*)[\])]`)

// pyMethodsArg extracts the methods=[...] keyword argument of a route
// decorator, if present.
func pyMethodsArg(args string) []string {
	match := pyMethodsArgRe.FindStringSubmatch(args)
	if match == nil {
		return nil
	}

	return quotedStrings(match[1])
}

// firstCallArg returns the raw text of the first positional argument of
// a call fragment like `("/path", methods=[...])`.
func firstCallArg(args string) string {
	inner := strings.TrimSpace(args)
	inner = strings.TrimPrefix(inner, "(")
	inner = strings.TrimSuffix(inner, ")")

	depth := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(inner[:i])
			}
		}
	}

	return strings.TrimSpace(inner)
}
