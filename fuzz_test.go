// Fuzz tests for the compile-and-match pipeline.
//
// The engine has no external oracle for its exact semantics (group matching
// is atomic, so stdlib regexp disagrees on purpose), so fuzzing asserts the
// properties that must hold for every input instead: no panics, compile
// errors always carry the taxonomy, results stay in bounds, and both
// compilation and matching are deterministic.
//
// Run with:
//
//	go test -fuzz=FuzzMatch -fuzztime=30s
package rxlite

import (
	"errors"
	"testing"

	"github.com/coregx/rxlite/syntax"
)

var sentinels = []error{
	syntax.ErrBadEscape,
	syntax.ErrUnmatchedClose,
	syntax.ErrUnmatchedOpen,
	syntax.ErrDanglingQuantifier,
}

func FuzzMatch(f *testing.F) {
	seeds := []struct{ pattern, subject string }{
		{"", ""},
		{"abc", "abc"},
		{"a.*c", "abc"},
		{"ab*c*", "abbbbbcccc"},
		{"a(bcd)?c", "ac"},
		{"(a(b)?)*c", "ababc"},
		{"ab+c", "abbc"},
		{`\(\*`, "(*"},
		{"a**", "aa"},
		{"((x)", "x"},
		{`trailing\`, "trailing"},
		{"héllo.*", "héllo, wörld"},
	}
	for _, s := range seeds {
		f.Add(s.pattern, s.subject)
	}

	f.Fuzz(func(t *testing.T, pattern, subject string) {
		n1, ok1, err1 := Match(pattern, subject)
		n2, ok2, err2 := Match(pattern, subject)

		if n1 != n2 || ok1 != ok2 || (err1 == nil) != (err2 == nil) {
			t.Fatalf("Match(%q, %q) not deterministic: (%d,%v,%v) vs (%d,%v,%v)",
				pattern, subject, n1, ok1, err1, n2, ok2, err2)
		}

		if err1 != nil {
			var pe *syntax.ParseError
			if !errors.As(err1, &pe) {
				t.Fatalf("Match(%q, ...) error type = %T, want *syntax.ParseError", pattern, err1)
			}
			known := false
			for _, sentinel := range sentinels {
				if errors.Is(err1, sentinel) {
					known = true
					break
				}
			}
			if !known {
				t.Fatalf("Match(%q, ...) error %v wraps no known sentinel", pattern, err1)
			}
			if pe.Pos < 0 || pe.Pos > len([]rune(pattern)) {
				t.Fatalf("Match(%q, ...) error position %d out of range", pattern, pe.Pos)
			}
			return
		}

		if n1 < 0 || n1 > len([]rune(subject)) {
			t.Fatalf("Match(%q, %q) length %d out of range", pattern, subject, n1)
		}
		if !ok1 && n1 != 0 {
			t.Fatalf("Match(%q, %q) = (%d, false), want length 0 on no match", pattern, subject, n1)
		}
	})
}
