package glob

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// Matcher holds a validated set of glob patterns, each decoded into code
// points once at construction. A text matches the set when it matches any
// pattern in it.
//
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	sources  []string
	patterns [][]rune
}

// NewMatcher validates and compiles patterns into a Matcher. The first
// malformed pattern fails construction; the returned error wraps a
// *PatternError and reports the pattern's index.
//
//	m, err := glob.NewMatcher([]string{"*.log", "core.[0-9]*"})
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{
		sources:  make([]string, len(patterns)),
		patterns: make([][]rune, len(patterns)),
	}
	copy(m.sources, patterns)

	for i, pattern := range patterns {
		runes := []rune(pattern)
		if err := validateRunes(pattern, runes); err != nil {
			return nil, errors.Wrapf(err, "pattern %d", i)
		}
		m.patterns[i] = runes
	}
	return m, nil
}

// Patterns returns a copy of the patterns the Matcher was built from.
func (m *Matcher) Patterns() []string {
	out := make([]string, len(m.sources))
	copy(out, m.sources)
	return out
}

// Match reports whether text matches any pattern in the set.
func (m *Matcher) Match(text string) bool {
	return m.MatchResult(text) == Matched
}

// MatchResult returns Matched if text matches any pattern in the set and
// Unmatched otherwise. Patterns are validated up front, so SyntaxError is
// never returned.
func (m *Matcher) MatchResult(text string) Result {
	t := decode(text)
	defer t.release()
	return m.matchRunes(t.runes)
}

func (m *Matcher) matchRunes(text []rune) Result {
	for _, p := range m.patterns {
		if r := MatchRunes(p, text); r == Matched {
			return Matched
		}
	}
	return Unmatched
}

// Filter returns the texts that match none of the patterns, in input order.
// It returns nil when texts is empty or nothing is kept.
func (m *Matcher) Filter(texts []string) []string {
	if len(texts) == 0 {
		return nil
	}

	var kept []string
	for _, text := range texts {
		if !m.Match(text) {
			kept = append(kept, text)
		}
	}
	return kept
}

// FilterParallel returns the same result as Filter, splitting texts into
// runtime.NumCPU() chunks that are matched concurrently and merged in order.
//
// For small inputs (< 10k texts) the goroutine overhead may exceed the
// savings. Use Filter for small lists.
func (m *Matcher) FilterParallel(texts []string) []string {
	if len(texts) == 0 {
		return nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(texts) {
		numWorkers = len(texts)
	}
	if numWorkers <= 1 {
		return m.Filter(texts)
	}

	chunkSize := (len(texts) + numWorkers - 1) / numWorkers
	var chunks [][]string
	for i := 0; i < len(texts); i += chunkSize {
		end := i + chunkSize
		if end > len(texts) {
			end = len(texts)
		}
		chunks = append(chunks, texts[i:end])
	}

	// One result slot per chunk.
	results := make([][]string, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i := range chunks {
		go func(idx int) {
			defer wg.Done()
			results[idx] = m.Filter(chunks[idx])
		}(i)
	}
	wg.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	if total == 0 {
		return nil
	}
	merged := make([]string, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}
