package syntax

// Parse compiles a pattern into its matcher sequence in a single
// left-to-right pass. It maintains a stack of in-progress sequences, one per
// open group; '(' pushes a level and ')' pops it, wrapping the popped
// sequence in a Group node appended to the enclosing level.
//
// Parsing is pure: the same pattern always yields the same sequence, and no
// state survives the call. An empty pattern compiles to an empty sequence.
func Parse(pattern string) ([]Matcher, error) {
	fail := func(pos int, err error) ([]Matcher, error) {
		return nil, &ParseError{Pattern: pattern, Pos: pos, Err: err}
	}

	runes := []rune(pattern)
	levels := [][]Matcher{nil}

	for i := 0; i < len(runes); i++ {
		cur := len(levels) - 1
		switch r := runes[i]; r {
		case '.':
			levels[cur] = append(levels[cur], Wildcard(ExactlyOne))

		case '\\':
			if i+1 >= len(runes) {
				return fail(i, ErrBadEscape)
			}
			levels[cur] = append(levels[cur], Literal(runes[i+1], ExactlyOne))
			i++

		case '(':
			levels = append(levels, nil)

		case ')':
			if cur == 0 {
				return fail(i, ErrUnmatchedClose)
			}
			group := Group(levels[cur], ExactlyOne)
			levels = levels[:cur]
			levels[cur-1] = append(levels[cur-1], group)

		case '?', '*':
			last, ok := quantifiable(levels[cur])
			if !ok {
				return fail(i, ErrDanglingQuantifier)
			}
			if r == '?' {
				last.Quantifier = ZeroOrOne
			} else {
				last.Quantifier = ZeroOrMore
			}

		case '+':
			// Lowered at compile time: keep the node as-is and append a
			// ZeroOrMore copy of it. The copy now occupies the "last node"
			// slot, so a quantifier following '+' is rejected as dangling.
			last, ok := quantifiable(levels[cur])
			if !ok {
				return fail(i, ErrDanglingQuantifier)
			}
			more := *last
			more.Quantifier = ZeroOrMore
			levels[cur] = append(levels[cur], more)

		default:
			levels[cur] = append(levels[cur], Literal(r, ExactlyOne))
		}
	}

	if len(levels) != 1 {
		return fail(len(runes), ErrUnmatchedOpen)
	}
	return levels[0], nil
}

// quantifiable returns the node a postfix quantifier would apply to: the last
// node of the current level, provided it exists and has not been quantified
// yet (quantifiers do not stack).
func quantifiable(level []Matcher) (*Matcher, bool) {
	if len(level) == 0 {
		return nil, false
	}
	last := &level[len(level)-1]
	if last.Quantifier != ExactlyOne {
		return nil, false
	}
	return last, true
}
