package glob

// aborted halts a step-limited match. It is never returned to callers.
const aborted Result = -1

// matcher walks a pattern and a text, both already decoded into code points.
type matcher struct {
	pattern []rune
	text    []rune

	// limit bounds the number of loop steps across all recursion levels.
	// Zero means unbounded.
	limit int
	steps int
}

// Match reports whether pattern matches the whole of text.
//
// Both strings are decoded into code points once, so `?` and class members
// consume a single character regardless of its UTF-8 length. A malformed
// pattern yields SyntaxError as soon as the scan reaches the malformed
// construct; parts of the pattern never reached are not inspected.
func Match(pattern, text string) Result {
	p := decode(pattern)
	defer p.release()
	t := decode(text)
	defer t.release()

	return MatchRunes(p.runes, t.runes)
}

// MatchRunes is Match over pre-decoded code points.
func MatchRunes(pattern, text []rune) Result {
	m := matcher{pattern: pattern, text: text}
	return m.match(0, 0)
}

// IsMatch is the boolean view of Match: true when the pattern matched or
// when it is malformed. Use Match to tell the two apart.
func IsMatch(pattern, text string) bool {
	return Match(pattern, text).Bool()
}

func (m *matcher) match(pi, ti int) Result {
	p, t := m.pattern, m.text

	for pi < len(p) && ti < len(t) {
		if m.limit > 0 {
			m.steps++
			if m.steps > m.limit {
				return aborted
			}
		}

		switch p[pi] {
		case '?':
			pi++
			ti++
		case '*':
			// Try the rest of the pattern here first. Anything other than
			// Unmatched is final: a syntax error deeper in the pattern must
			// not be retried at another split point.
			if r := m.match(pi+1, ti); r != Unmatched {
				return r
			}
			ti++
		case '[':
			r, next := matchClass(p, pi+1, t[ti])
			if r != Matched {
				return r
			}
			pi = next
			ti++
		default:
			if p[pi] == '\\' {
				pi++
				if pi >= len(p) {
					return SyntaxError
				}
			}
			if p[pi] != t[ti] {
				return Unmatched
			}
			pi++
			ti++
		}
	}

	if ti < len(t) {
		return Unmatched
	}
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return FromBool(pi == len(p))
}

// matchClass evaluates the bracket expression whose body starts at p[pi]
// (just past the '[') against c. It returns the outcome and the index just
// past the closing ']'.
//
// The first member is taken literally, so "[]a]" and "[!]a]" contain ']'.
// A '-' followed by ']' is a literal dash; any other '-' forms an inclusive
// range from the previous member to the next character.
func matchClass(p []rune, pi int, c rune) (Result, int) {
	if pi >= len(p) {
		return SyntaxError, pi
	}

	negate := false
	if p[pi] == '!' {
		negate = true
		pi++
		if pi >= len(p) {
			return SyntaxError, pi
		}
	}

	hit := p[pi] == c
	prev := p[pi]
	pi++

	for pi < len(p) && p[pi] != ']' {
		if p[pi] == '-' {
			pi++
			if pi >= len(p) {
				return SyntaxError, pi
			}
			if p[pi] == ']' {
				hit = hit || c == '-'
				continue
			}
			hit = hit || (prev <= c && c <= p[pi])
		} else {
			hit = hit || p[pi] == c
		}
		prev = p[pi]
		pi++
	}
	if pi >= len(p) {
		return SyntaxError, pi
	}

	r := FromBool(hit)
	if negate {
		r = r.Not()
	}
	return r, pi + 1
}
