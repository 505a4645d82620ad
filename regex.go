// Package rxlite is a minimal regex engine for anchored prefix matching.
//
// Patterns are compiled into a sequence of quantified matcher nodes and
// evaluated by an explicit backtracking engine. Matching is always anchored
// at the start of the subject: a Regex reports how many elements of the
// subject's prefix the pattern covers, and never searches for a later start
// position (scanning start offsets is the caller's job).
//
// Supported syntax, exhaustively: literal elements, '.' (any one element),
// '\x' (literal x), '(...)' (grouping), and the postfix quantifiers '?', '*'
// and '+'. Any other character matches itself. There is no alternation, no
// character classes and no anchors.
//
// Basic usage:
//
//	re, err := rxlite.Compile(`ab*c`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	n, ok := re.Find("abbbc tail")
//	fmt.Println(n, ok) // 5 true
//
// Offsets and lengths count elements (runes), not bytes.
//
// Matching worst case is exponential for pathological patterns (nested
// greedy quantifiers against adversarial input); see package backtrack.
package rxlite

import (
	"github.com/coregx/rxlite/backtrack"
	"github.com/coregx/rxlite/syntax"
)

// Regex represents a compiled pattern.
//
// A Regex is immutable after Compile and safe to use concurrently from
// multiple goroutines; every match builds its own evaluation state.
type Regex struct {
	prog    []syntax.Matcher
	pattern string
}

// Compile compiles a pattern.
//
// Returns a *syntax.ParseError if the pattern is invalid; use errors.Is
// against the syntax package's sentinel errors to test for a specific kind.
func Compile(pattern string) (*Regex, error) {
	prog, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{prog: prog, pattern: pattern}, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rxlite: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// Find matches the pattern against the start of subject. When the pattern
// matches, it returns the matched prefix length in runes and true. When the
// well-formed pattern does not match at offset 0, it returns 0 and false.
func (re *Regex) Find(subject string) (int, bool) {
	matched, end := backtrack.New(re.prog).Run([]rune(subject))
	if !matched {
		return 0, false
	}
	return end, true
}

// FindString returns the matched prefix of subject, with a second return
// distinguishing "no match" from an empty match.
func (re *Regex) FindString(subject string) (string, bool) {
	runes := []rune(subject)
	matched, end := backtrack.New(re.prog).Run(runes)
	if !matched {
		return "", false
	}
	return string(runes[:end]), true
}

// Match reports whether the pattern matches a prefix of subject.
func (re *Regex) Match(subject string) bool {
	matched, _ := backtrack.New(re.prog).Run([]rune(subject))
	return matched
}

// String returns the source pattern text.
func (re *Regex) String() string {
	return re.pattern
}

// Match is the one-shot entry point: compile pattern and match it against
// the start of subject. On success n is the matched prefix length in runes
// and ok is true; ok is false when the pattern is valid but does not match.
// err is non-nil only when the pattern fails to compile.
func Match(pattern, subject string) (n int, ok bool, err error) {
	re, err := Compile(pattern)
	if err != nil {
		return 0, false, err
	}
	n, ok = re.Find(subject)
	return n, ok, nil
}

// QuoteMeta returns a string that escapes all pattern metacharacters inside
// the argument text; the returned string is a pattern matching the literal
// text.
func QuoteMeta(s string) string {
	const special = `\.()?*+`

	n := 0
	for _, r := range s {
		if isSpecial(r, special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]rune, 0, len(s)+n)
	for _, r := range s {
		if isSpecial(r, special) {
			buf = append(buf, '\\')
		}
		buf = append(buf, r)
	}
	return string(buf)
}

// isSpecial returns true if r is in the special characters string.
func isSpecial(r rune, special string) bool {
	for _, s := range special {
		if r == s {
			return true
		}
	}
	return false
}
