// Package backtrack evaluates a compiled pattern sequence against a subject
// using explicit greedy-then-backtrack matching.
//
// The engine is anchored: matching always starts at offset 0 of the subject
// and never scans forward for alternate start positions. Repetition is
// greedy; when a later node fails, an explicit frame stack retracts earlier
// consumption one step at a time instead of unwinding Go call frames. The
// only recursion is structural, one call per nested group, so stack depth is
// bounded by the pattern's nesting depth, not by the subject length.
//
// Worst-case running time is exponential in the subject for pathological
// patterns that combine repeated greedy quantifiers (nested '*' groups
// against adversarial input). That is inherent to naive backtracking; the
// engine does not bound or detect it.
//
// Known limitation: a group matches as an atomic unit. Once a group's
// sub-sequence has matched some prefix, outer backtracking cannot re-enter
// the group to try a shorter interior match, so "(a*)a" never matches even
// though a non-atomic engine would give back one 'a'.
package backtrack

import "github.com/coregx/rxlite/syntax"

// frame records how much input one applied node consumed and whether that
// consumption can be partially given back. A retryable frame retracts its
// newest consumption entry per backtrack step; a non-retryable frame is
// undone wholesale.
type frame struct {
	retryable bool
	node      syntax.Matcher
	consumed  []int
}

// Backtracker runs one compiled sequence against one subject. Each
// evaluation owns its Backtracker exclusively; create a new one per Run
// rather than reusing across subjects.
type Backtracker struct {
	pos     int
	pending []syntax.Matcher // stack of nodes still to match; top is next
	frames  []frame
}

// New creates a Backtracker for the given compiled sequence. The sequence is
// read-only input; nodes are copied onto the pending stack and the compiled
// slice is never mutated.
func New(prog []syntax.Matcher) *Backtracker {
	pending := make([]syntax.Matcher, len(prog))
	for i, m := range prog {
		pending[len(prog)-1-i] = m
	}
	return &Backtracker{pending: pending}
}

// Run matches the sequence against subject, anchored at offset 0.
//
// On success it returns (true, n) where n is the offset just past the
// matched prefix. On failure it returns (false, n) where n is the offset of
// the attempt that exhausted the backtrack stack, taken before that final
// unwind; it is not necessarily the furthest offset the search explored.
func (b *Backtracker) Run(subject []rune) (bool, int) {
	cur, ok := b.pop()

	for ok {
		switch cur.Quantifier {
		case syntax.ExactlyOne:
			matched, n := matchAt(cur, subject, b.pos)
			if !matched {
				before := b.pos
				if !b.backtrack(cur) {
					return false, before
				}
				cur, ok = b.pop()
				continue
			}
			b.frames = append(b.frames, frame{node: cur, consumed: []int{n}})
			b.pos += n
			cur, ok = b.pop()

		case syntax.ZeroOrOne:
			if b.pos >= len(subject) {
				b.frames = append(b.frames, frame{node: cur, consumed: []int{0}})
				cur, ok = b.pop()
				continue
			}
			matched, n := matchAt(cur, subject, b.pos)
			b.pos += n
			b.frames = append(b.frames, frame{
				retryable: matched && n > 0,
				node:      cur,
				consumed:  []int{n},
			})
			cur, ok = b.pop()

		case syntax.ZeroOrMore:
			f := frame{retryable: true, node: cur}
			for b.pos < len(subject) {
				matched, n := matchAt(cur, subject, b.pos)
				if !matched || n == 0 {
					break
				}
				f.consumed = append(f.consumed, n)
				b.pos += n
			}
			if len(f.consumed) == 0 {
				// Nothing to give back later.
				f.retryable = false
				f.consumed = []int{0}
			}
			b.frames = append(b.frames, f)
			cur, ok = b.pop()
		}
	}

	return true, b.pos
}

// backtrack restores the engine to the most recent point with an untried
// alternative. The failed node goes back on the pending stack first; frames
// are then popped until one can retract a consumption entry. Exhausted
// retryable frames and non-retryable frames are fully undone, returning
// their nodes to the pending stack for re-attempt. Reports whether a
// resumption point was found.
func (b *Backtracker) backtrack(failed syntax.Matcher) bool {
	b.pending = append(b.pending, failed)

	for len(b.frames) > 0 {
		f := b.frames[len(b.frames)-1]
		b.frames = b.frames[:len(b.frames)-1]

		if f.retryable {
			if len(f.consumed) == 0 {
				b.pending = append(b.pending, f.node)
				continue
			}
			n := f.consumed[len(f.consumed)-1]
			f.consumed = f.consumed[:len(f.consumed)-1]
			b.pos -= n
			b.frames = append(b.frames, f)
			return true
		}

		b.pending = append(b.pending, f.node)
		for _, n := range f.consumed {
			b.pos -= n
		}
	}
	return false
}

func (b *Backtracker) pop() (syntax.Matcher, bool) {
	if len(b.pending) == 0 {
		return syntax.Matcher{}, false
	}
	m := b.pending[len(b.pending)-1]
	b.pending = b.pending[:len(b.pending)-1]
	return m, true
}

// matchAt attempts a single match of m at subject[pos]. It reports whether
// the node matched and how many elements it consumed. An offset at or past
// the end of the subject never matches, even for a group whose sub-sequence
// could match empty.
func matchAt(m syntax.Matcher, subject []rune, pos int) (bool, int) {
	if pos >= len(subject) {
		return false, 0
	}
	switch m.Kind {
	case syntax.KindWildcard:
		return true, 1
	case syntax.KindLiteral:
		if m.Rune == subject[pos] {
			return true, 1
		}
		return false, 0
	case syntax.KindGroup:
		return New(m.Sub).Run(subject[pos:])
	default:
		return false, 0
	}
}
