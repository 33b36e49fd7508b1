package parsing

import (
	"fmt"
	"strings"
)

// Operation is a single parse step consuming input at pos. Implementations
// are stateless and reusable; the closed set of kinds is PlainString,
// NumberSpan, Sign, Modify, and StringSet. Dispatch is a single virtual
// call, structure canonicalization additionally inspects the NumberSpan
// and Modify kinds by type.
type Operation[T any] interface {
	// Consume advances over input mutating out, returning the new position
	// or a positioned error. On error the output may be partially mutated;
	// the matcher discards the whole branch in that case.
	Consume(out T, input string, pos int) (int, *ParseError)

	// String renders the operation for structure dumps and diagnostics.
	String() string
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// PlainString matches a fixed literal. The literal must not start or end
// with an ASCII digit: a digit-bounded literal would silently merge with
// adjacent numeric spans under canonicalization.
type PlainString[T any] struct {
	str string
}

func NewPlainString[T any](s string) *PlainString[T] {
	if s == "" {
		panic("datefmt: empty string literal")
	}
	if isDigit(s[0]) || isDigit(s[len(s)-1]) {
		panic(fmt.Sprintf("datefmt: literal %q is bounded by a digit, use a constant digit consumer instead", s))
	}
	return &PlainString[T]{s}
}

func (p *PlainString[T]) Consume(out T, input string, pos int) (int, *ParseError) {
	end := pos + len(p.str)
	if end > len(input) {
		return 0, endOfInputError(pos, func() string { return fmt.Sprintf("%q", p.str) })
	}
	if input[pos:end] != p.str {
		return 0, literalMismatchError(pos, p.str, input[pos:end])
	}
	return end, nil
}

func (p *PlainString[T]) String() string {
	return fmt.Sprintf("%q", p.str)
}

// NumberSpan greedily consumes one run of consecutive digits and
// distributes it left to right across its consumers: each fixed-length
// consumer takes exactly its length, the single variable-length consumer
// absorbs whatever remains.
type NumberSpan[T any] struct {
	consumers []NumberConsumer[T]
	minLength int
}

func NewNumberSpan[T any](consumers ...NumberConsumer[T]) *NumberSpan[T] {
	if len(consumers) == 0 {
		panic("datefmt: a numeric span needs at least one consumer")
	}
	minLength := 0
	variable := false
	for _, c := range consumers {
		if c.Length() > 0 {
			minLength += c.Length()
			continue
		}
		if variable {
			panic(fmt.Sprintf("datefmt: numeric span %s has more than one variable-length consumer, the split point would be ambiguous",
				describeConsumers(consumers)))
		}
		variable = true
		minLength++
	}
	return &NumberSpan[T]{consumers, minLength}
}

// Consumers returns the ordered consumer list. The engine treats it as
// read-only.
func (n *NumberSpan[T]) Consumers() []NumberConsumer[T] {
	return n.consumers
}

func (n *NumberSpan[T]) describe() string {
	return describeConsumers(n.consumers)
}

func (n *NumberSpan[T]) Consume(out T, input string, pos int) (int, *ParseError) {
	run := pos
	for run < len(input) && isDigit(input[run]) {
		run++
	}
	digits := run - pos
	if digits < n.minLength {
		if run == len(input) {
			return 0, endOfInputError(pos, n.describe)
		}
		return 0, tooFewDigitsError(pos, digits, n.describe)
	}

	p := pos
	for _, c := range n.consumers {
		l := c.Length()
		if l == 0 {
			l = digits - n.minLength + 1
		}
		e := c.Consume(out, input[p:p+l], p)
		if e != nil {
			return 0, e
		}
		p += l
	}
	return p, nil
}

func (n *NumberSpan[T]) String() string {
	parts := make([]string, len(n.consumers))
	for i, c := range n.consumers {
		parts[i] = c.Describe()
	}
	return "number(" + strings.Join(parts, ", ") + ")"
}

// Sign consumes an optional sign character. At end of input it succeeds
// consuming nothing: the sign is absent and treated as implicit. '-' is
// always accepted, '+' only when enabled; any other character is a
// mismatch.
type Sign[T any] struct {
	withPlus bool
	expects  string
	apply    func(out T, negative bool)
}

func NewSign[T any](withPlus bool, expects string, apply func(out T, negative bool)) *Sign[T] {
	if expects == "" {
		expects = "a sign"
	}
	return &Sign[T]{withPlus, expects, apply}
}

func (s *Sign[T]) Consume(out T, input string, pos int) (int, *ParseError) {
	if pos >= len(input) {
		return pos, nil
	}
	switch input[pos] {
	case '-':
		s.apply(out, true)
		return pos + 1, nil
	case '+':
		if s.withPlus {
			s.apply(out, false)
			return pos + 1, nil
		}
	}
	return 0, signMismatchError(pos, s.expects, input[pos])
}

func (s *Sign[T]) String() string {
	if s.withPlus {
		return "sign(+-)"
	}
	return "sign(-)"
}

// Modify is a zero-width step that always succeeds and applies a pure
// mutation to the output, used for defaults and flags not tied to consumed
// text (e.g. marking an implicit sign).
type Modify[T any] struct {
	f func(out T)
}

func NewModify[T any](f func(out T)) *Modify[T] {
	return &Modify[T]{f}
}

func (m *Modify[T]) Consume(out T, input string, pos int) (int, *ParseError) {
	m.f(out)
	return pos, nil
}

func (m *Modify[T]) String() string {
	return "modify"
}

// StringSet performs a greedy longest-match lookup over a fixed vocabulary
// and assigns the mapped value through a set-once-consistently field.
type StringSet[T any, V comparable] struct {
	trie    *trieNode[V]
	expects string
	field   AssignableField[T, V]
}

// NewStringSet builds the lookup trie once. Duplicate vocabulary entries
// and empty strings are construction-time panics.
func NewStringSet[T any, V comparable](entries map[string]V, expects string, field AssignableField[T, V]) *StringSet[T, V] {
	b := newTrieBuilder[V]()
	for s, v := range entries {
		b.add(s, v)
	}
	return &StringSet[T, V]{b.freeze(), expects, field}
}

func (s *StringSet[T, V]) Consume(out T, input string, pos int) (int, *ParseError) {
	end, value, found := s.trie.lookup(input, pos)
	if !found {
		if pos >= len(input) {
			return 0, endOfInputError(pos, func() string { return s.expects })
		}
		return 0, unknownNameError(pos, s.expects, truncate(input[pos:], 16))
	}
	if e := setWithoutReassigning(s.field, out, value, pos); e != nil {
		return 0, e
	}
	return end, nil
}

func (s *StringSet[T, V]) String() string {
	return "names(" + s.expects + ")"
}
