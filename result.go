package glob

import "strconv"

// Result is the outcome of matching a pattern against a text.
type Result int

const (
	// Unmatched means the pattern does not match the text.
	Unmatched Result = iota
	// Matched means the pattern matches the whole text.
	Matched
	// SyntaxError means the pattern is malformed at a position the
	// matcher reached.
	SyntaxError
)

// FromBool converts the outcome of a plain comparison into a Result.
func FromBool(b bool) Result {
	if b {
		return Matched
	}
	return Unmatched
}

// Bool reports whether r could not rule out a match. SyntaxError counts as
// true so that callers who only accept or reject treat malformed patterns
// conservatively.
func (r Result) Bool() bool {
	return r == Matched || r == SyntaxError
}

// Not inverts a match outcome. SyntaxError is its own negation.
func (r Result) Not() Result {
	switch r {
	case Matched:
		return Unmatched
	case Unmatched:
		return Matched
	}
	return r
}

func (r Result) String() string {
	switch r {
	case Unmatched:
		return "GLOB_UNMATCHED"
	case Matched:
		return "GLOB_MATCHED"
	case SyntaxError:
		return "GLOB_SYNTAX_ERROR"
	}
	return "Result(" + strconv.Itoa(int(r)) + ")"
}
