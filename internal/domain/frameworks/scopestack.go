package frameworks

import m "github.com/mouse-blink/gatehound/internal/model"

// scopeFrame is one entry of a block-structured scope stack: the scope
// id plus the nesting depth at which its block opened.
type scopeFrame struct {
	id    m.ScopeID
	depth int
}

// scopeStack tracks block-structured grouping constructs (Laravel
// groups, chi Route closures, Rails do/end blocks) while walking a file
// line by line. Callers feed it the running nesting depth; frames pop
// as soon as the depth drops back to where their block opened.
type scopeStack struct {
	frames []scopeFrame
}

func (s *scopeStack) push(id m.ScopeID, depth int) {
	s.frames = append(s.frames, scopeFrame{id: id, depth: depth})
}

// current returns the innermost open scope id, or "" when none is open.
func (s *scopeStack) current() m.ScopeID {
	if len(s.frames) == 0 {
		return ""
	}

	return s.frames[len(s.frames)-1].id
}

// closeAt pops every frame whose block opened at or above depth.
func (s *scopeStack) closeAt(depth int) {
	for len(s.frames) > 0 && s.frames[len(s.frames)-1].depth >= depth {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// braceDelta returns the net `{`/`}` nesting change of one line,
// ignoring braces inside string literals.
func braceDelta(line string) int {
	delta := 0

	var quote byte

	for i := 0; i < len(line); i++ {
		c := line[i]

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
		case '{':
			delta++
		case '}':
			delta--
		}
	}

	return delta
}
