// Package syntax parses the rxlite pattern mini-language into a sequence of
// quantified matcher nodes.
//
// The grammar is deliberately small:
//
//	a        literal element (any rune without a special meaning)
//	.        wildcard, matches any single element
//	\x       escape, literal x
//	(...)    group
//	?  *  +  postfix quantifiers on the preceding element or group
//
// There is no alternation, no character classes and no anchors. A compiled
// pattern is an ordered []Matcher; groups nest as sub-sequences inside their
// Matcher node. The slice returned by Parse is never mutated by the matching
// engine and may be shared freely.
package syntax

import "strings"

// Quantifier is the repetition constraint attached to a Matcher node.
type Quantifier uint8

const (
	// ExactlyOne requires exactly one occurrence. Every node starts out
	// with this quantifier; postfix symbols rewrite it.
	ExactlyOne Quantifier = iota

	// ZeroOrOne makes the node optional ('?').
	ZeroOrOne

	// ZeroOrMore allows any number of occurrences, including none ('*').
	ZeroOrMore
)

// String returns the quantifier's postfix symbol, or "" for ExactlyOne.
func (q Quantifier) String() string {
	switch q {
	case ZeroOrOne:
		return "?"
	case ZeroOrMore:
		return "*"
	default:
		return ""
	}
}

// Kind discriminates the Matcher node variants.
type Kind uint8

const (
	// KindLiteral matches one input element equal to Matcher.Rune.
	KindLiteral Kind = iota

	// KindWildcard matches any single input element.
	KindWildcard

	// KindGroup matches by running the engine over Matcher.Sub against the
	// remaining subject.
	KindGroup
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindWildcard:
		return "wildcard"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Matcher is one parsed unit of a pattern: a wildcard, literal or group,
// paired with its quantifier. Rune is meaningful only for KindLiteral and
// Sub only for KindGroup.
type Matcher struct {
	Kind       Kind
	Quantifier Quantifier
	Rune       rune
	Sub        []Matcher
}

// Literal returns a literal-element node.
func Literal(r rune, q Quantifier) Matcher {
	return Matcher{Kind: KindLiteral, Quantifier: q, Rune: r}
}

// Wildcard returns a match-anything node.
func Wildcard(q Quantifier) Matcher {
	return Matcher{Kind: KindWildcard, Quantifier: q}
}

// Group returns a group node wrapping the given sub-sequence.
func Group(sub []Matcher, q Quantifier) Matcher {
	return Matcher{Kind: KindGroup, Quantifier: q, Sub: sub}
}

// String renders the node back to pattern-like text. Escapes are re-inserted
// for metacharacters, so the output re-parses to an equivalent node, except
// that '+' lowering is not undone (a lowered pair prints as "xx*").
func (m Matcher) String() string {
	var b strings.Builder
	m.write(&b)
	return b.String()
}

func (m Matcher) write(b *strings.Builder) {
	switch m.Kind {
	case KindWildcard:
		b.WriteByte('.')
	case KindLiteral:
		if strings.ContainsRune(`\.()?*+`, m.Rune) {
			b.WriteByte('\\')
		}
		b.WriteRune(m.Rune)
	case KindGroup:
		b.WriteByte('(')
		for _, sub := range m.Sub {
			sub.write(b)
		}
		b.WriteByte(')')
	}
	b.WriteString(m.Quantifier.String())
}
