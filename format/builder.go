package format

import (
	"strings"

	"github.com/ava12/datefmt/parsing"
)

// group is the branching directive behind Optional and Alternatives: a
// list of alternative directive sequences. When formatting, the first
// sequence that renders with some field off its default is used, falling
// back to the last renderable one; when parsing, the sequences become
// alternative continuations of the surrounding structure, and an empty
// sequence asserts the defaults of the first one.
type group struct {
	alts [][]Directive
}

// Optional wraps a directive sequence in a section that may be absent.
// When formatting, the section is skipped while every field in it is unset
// or holds its default value; when parsing, input without the section is
// accepted and the defaults are assigned.
func Optional(section ...Directive) Directive {
	return group{[][]Directive{section, nil}}
}

// Alternatives is a choice between directive sequences. When formatting,
// the first renderable sequence wins; when parsing, the sequences are
// tried in declaration order.
func Alternatives(alternatives ...[]Directive) Directive {
	if len(alternatives) == 0 {
		panic("datefmt: a directive alternation needs at least one alternative")
	}
	return group{alternatives}
}

func (g group) render(b *strings.Builder, c container) error {
	var fallback *string
	var lastError error
	for _, alt := range g.alts {
		var scratch strings.Builder
		e := renderAll(alt, &scratch, c)
		if e != nil {
			lastError = e
			continue
		}
		if allDefaulted(alt, c) {
			s := scratch.String()
			fallback = &s
			continue
		}
		b.WriteString(scratch.String())
		return nil
	}
	if fallback != nil {
		b.WriteString(*fallback)
		return nil
	}
	return noAlternativeError(lastError)
}

func renderAll(directives []Directive, b *strings.Builder, c container) error {
	for _, d := range directives {
		if e := d.render(b, c); e != nil {
			return e
		}
	}
	return nil
}

func allDefaulted(directives []Directive, c container) bool {
	for _, d := range directives {
		if !d.defaulted(c) {
			return false
		}
	}
	return true
}

func (g group) defaulted(c container) bool {
	return allDefaulted(g.alts[0], c)
}

func (g group) applyDefault(c container) {
	for _, d := range g.alts[0] {
		d.applyDefault(c)
	}
}

func (g group) fragment() *structure {
	branches := make([]*structure, len(g.alts))
	for i, alt := range g.alts {
		if len(alt) == 0 {
			// the absent-section branch still assigns the section's
			// defaults, so both parses populate the same fields
			branches[i] = parsing.NewStructure[container](parsing.NewModify(g.applyDefault))
		} else {
			branches[i] = concatDirectives(alt)
		}
	}
	return parsing.Alternatives(branches...)
}

func concatDirectives(directives []Directive) *structure {
	fragments := make([]*structure, len(directives))
	for i, d := range directives {
		fragments[i] = d.fragment()
	}
	return parsing.Concat(fragments...)
}

// Builder assembles a format out of directives.
type Builder struct {
	directives []Directive
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends directives to the format under construction.
func (b *Builder) Add(directives ...Directive) *Builder {
	b.directives = append(b.directives, directives...)
	return b
}

// Build compiles the accumulated directives into a Format. The builder
// stays usable: further Add calls affect later Build results only.
func (b *Builder) Build() *Format {
	return New(b.directives...)
}
