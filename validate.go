package glob

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrBadPattern is the cause of every error reported by Validate.
var ErrBadPattern = errors.New("glob: syntax error in pattern")

// PatternError describes the first malformed construct in a pattern.
type PatternError struct {
	Pattern string
	// Offset is the code-point index of the '[' or '\' that starts the
	// malformed construct.
	Offset int
	Reason string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("glob: %s at offset %d in %q", e.Reason, e.Offset, e.Pattern)
}

func (e *PatternError) Unwrap() error { return ErrBadPattern }

// Validate checks the whole pattern up front.
//
// Match only notices a malformed construct when the scan reaches it, so a
// broken pattern can still report Matched or Unmatched for some texts. A
// pattern accepted by Validate never yields SyntaxError.
func Validate(pattern string) error {
	d := decode(pattern)
	defer d.release()
	return validateRunes(pattern, d.runes)
}

func validateRunes(pattern string, p []rune) error {
	for i := 0; i < len(p); {
		switch p[i] {
		case '\\':
			if i+1 >= len(p) {
				return &PatternError{Pattern: pattern, Offset: i, Reason: "trailing escape"}
			}
			i += 2
		case '[':
			// The probe rune is irrelevant; only the end of the body matters.
			r, next := matchClass(p, i+1, 0)
			if r == SyntaxError {
				return &PatternError{Pattern: pattern, Offset: i, Reason: "unterminated character class"}
			}
			i = next
		default:
			i++
		}
	}
	return nil
}
