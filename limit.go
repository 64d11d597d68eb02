package glob

import "github.com/pkg/errors"

// ErrStepLimit is returned by MatchLimit when the step budget runs out.
var ErrStepLimit = errors.New("glob: step limit exceeded")

// MatchLimit is Match with a budget on the number of matcher steps.
//
// Backtracking over several '*' tokens is exponential in the worst case.
// Callers matching untrusted patterns can bound the work here: once more than
// limit steps have been taken the match stops and ErrStepLimit is returned
// along with Unmatched. A limit of zero or less disables the budget.
func MatchLimit(pattern, text string, limit int) (Result, error) {
	p := decode(pattern)
	defer p.release()
	t := decode(text)
	defer t.release()

	if limit < 0 {
		limit = 0
	}
	m := matcher{pattern: p.runes, text: t.runes, limit: limit}
	r := m.match(0, 0)
	if r == aborted {
		return Unmatched, errors.Wrapf(ErrStepLimit, "after %d steps", limit)
	}
	return r, nil
}
