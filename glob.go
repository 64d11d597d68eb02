// Package glob implements shell-style glob matching over Unicode code points.
//
// A pattern is matched against the whole text, anchored at both ends. There
// is no notion of path separators: '*' crosses '/' like any other character.
//
// # Quick Start
//
//	glob.Match("*.go", "main.go")        // Matched
//	glob.Match("Letter[0-9]", "Letter10") // Unmatched
//	glob.Match("*.[abc", "main.a")        // SyntaxError
//
//	if glob.IsMatch("?", "\U0001F600") { // one code point, four bytes
//	    ...
//	}
//
// # Pattern Syntax
//
//   - "?" matches any single code point
//   - "*" matches any run of code points, including none
//   - "[abc]" matches one of the listed code points
//   - "[a-z]" matches a code point in the inclusive range
//   - "[!a-z]" matches a code point not in the class
//   - "\x" matches x literally, for any x
//   - any other code point matches itself
//
// Inside a class the first member is always literal, so "[]]" and "[!]]"
// contain ']'. A '-' right before the closing ']' is a literal dash, and '\'
// has no special meaning.
//
// # Results
//
// Match returns one of three values. SyntaxError is reported for an
// unterminated class, a class with no members, a range missing its upper
// bound, or a trailing '\'. Once found it wins over any match that
// backtracking might still find. Errors are detected lazily; use Validate to
// check a whole pattern before use.
//
// IsMatch and Result.Bool collapse SyntaxError into true, treating a
// malformed pattern as "could not rule out a match".
//
// # Complexity and Concurrency
//
// Matching backtracks on '*' and is exponential in the number of stars for
// adversarial inputs. MatchLimit bounds the work for untrusted patterns.
//
// Every function in this package is safe for concurrent use, and so is a
// Matcher once constructed.
package glob
