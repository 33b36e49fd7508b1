package parsing

import (
	"strings"
)

// Structure is a compiled parse plan: an ordered operation list followed by
// a set of alternative continuations tried at the same input position.
// Structures are immutable once built and may be shared freely, including
// between concurrent matchers.
//
// Canonical ("valid") structures, as produced by Concat, satisfy:
//   - no two adjacent operations are numeric spans (consecutive numeric
//     consumers are merged into one span);
//   - a run of Modify operations never sits immediately before a numeric
//     span unless shielded by a preceding non-numeric, non-zero-width
//     operation (otherwise a span preceding the run could not merge with
//     the span behind it);
//   - every alternative either has operations or is the canonical empty
//     structure, which stands for "match nothing else here".
type Structure[T any] struct {
	Operations []Operation[T]
	FollowedBy []*Structure[T]
}

// NewStructure wraps operations in a structure with no alternatives.
func NewStructure[T any](ops ...Operation[T]) *Structure[T] {
	return &Structure[T]{Operations: ops}
}

// Alternatives creates a pure branch point: each alternative is tried in
// declaration order at the same input position.
func Alternatives[T any](alts ...*Structure[T]) *Structure[T] {
	return &Structure[T]{FollowedBy: alts}
}

// Empty returns the canonical empty structure.
func Empty[T any]() *Structure[T] {
	return &Structure[T]{}
}

// IsEmpty reports whether s is the canonical empty structure.
func (s *Structure[T]) IsEmpty() bool {
	return len(s.Operations) == 0 && len(s.FollowedBy) == 0
}

func (s *Structure[T]) String() string {
	parts := make([]string, 0, len(s.Operations)+1)
	for _, op := range s.Operations {
		parts = append(parts, op.String())
	}
	if len(s.FollowedBy) > 0 {
		alts := make([]string, len(s.FollowedBy))
		for i, t := range s.FollowedBy {
			if t.IsEmpty() {
				alts[i] = "<end>"
			} else {
				alts[i] = t.String()
			}
		}
		parts = append(parts, "("+strings.Join(alts, " | ")+")")
	}
	return strings.Join(parts, " ")
}

// Concat combines format fragments into one canonical structure.
//
// Fragments are folded right to left onto the already-canonical suffix.
// Straight-line fragments (no alternatives) are chained in a buffer and
// folded in one step; fragments with alternatives flush the buffer and go
// through the general merge. The merge coalesces runs of numeric spans
// (looking through interleaved Modify operations, which are deferred past
// the merged span), appends the suffix to every alternative with structural
// sharing, flattens alternation layers that reduce to bare alternation,
// and, when a trailing numeric span meets an alternative that begins with
// another span, distributes the trailing span into every alternative so
// that a single digit run is never split at a branch point.
func Concat[T any](fragments ...*Structure[T]) *Structure[T] {
	suffix := Empty[T]()
	var buffer opList[T]
	flush := func() {
		if buffer != nil && buffer.Len() > 0 {
			suffix = mergeAppend(materializeOps(buffer), nil, suffix)
			buffer = nil
		}
	}

	for i := len(fragments) - 1; i >= 0; i-- {
		f := fragments[i]
		if len(f.FollowedBy) == 0 {
			buffer = newConcatView(sliceOps[T](f.Operations), buffer)
		} else {
			flush()
			suffix = mergeAppend(f.Operations, f.FollowedBy, suffix)
		}
	}
	flush()
	return suffix
}

// mergeAppend canonicalizes the sequence "ops, then one of alts, then
// suffix" (or "ops, then suffix" when alts is empty). suffix must already
// be canonical; it is shared, never mutated.
func mergeAppend[T any](ops []Operation[T], alts []*Structure[T], suffix *Structure[T]) *Structure[T] {
	var newOps []Operation[T]
	var span []NumberConsumer[T] // pending numeric span, nil if closed
	var mods []Operation[T]      // Modify run not yet anchored to a position
	spanOpen := false

	for _, op := range ops {
		switch o := op.(type) {
		case *NumberSpan[T]:
			if spanOpen {
				span = append(span, o.consumers...)
			} else {
				spanOpen = true
				span = append(span[:0:0], o.consumers...)
			}
		case *Modify[T]:
			// deferred: a Modify run between or before numeric spans must
			// not prevent the spans from merging
			mods = append(mods, o)
		default:
			if spanOpen {
				newOps = append(newOps, NewNumberSpan(span...))
				spanOpen = false
			}
			newOps = append(newOps, mods...)
			mods = nil
			newOps = append(newOps, o)
		}
	}

	// merge the suffix into the alternatives, flattening bare alternation
	var tails []*Structure[T]
	if len(alts) == 0 {
		if suffix.IsEmpty() {
			tails = nil
		} else if len(suffix.Operations) == 0 {
			tails = suffix.FollowedBy
		} else {
			tails = []*Structure[T]{suffix}
		}
	} else {
		tails = make([]*Structure[T], 0, len(alts))
		for _, a := range alts {
			m := mergeAppend(a.Operations, a.FollowedBy, suffix)
			if len(m.Operations) == 0 && len(m.FollowedBy) > 0 {
				tails = append(tails, m.FollowedBy...)
			} else {
				tails = append(tails, m)
			}
		}
	}

	spanLeading := false
	for _, t := range tails {
		if len(t.Operations) > 0 {
			if _, is := t.Operations[0].(*NumberSpan[T]); is {
				spanLeading = true
				break
			}
		}
	}

	if !spanOpen && !(spanLeading && len(newOps) == 0 && len(mods) > 0) {
		// the numeric run, if any, ended before the branch point; trailing
		// Modify ops are anchored here (shielded by the last plain op)
		newOps = append(newOps, mods...)
		return emit(newOps, tails)
	}

	if !spanLeading {
		// trailing span cannot continue into any alternative
		newOps = append(newOps, NewNumberSpan(span...))
		newOps = append(newOps, mods...)
		return emit(newOps, tails)
	}

	// An alternative continues the digit run (or hides one behind the
	// pending Modify run): distribute the trailing span and Modify ops
	// into every alternative, merging with span-leading ones.
	newTails := make([]*Structure[T], len(tails))
	for i, t := range tails {
		var tOps []Operation[T]
		rest := t.Operations
		if len(rest) > 0 {
			if lead, is := rest[0].(*NumberSpan[T]); is {
				merged := append(append([]NumberConsumer[T]{}, span...), lead.consumers...)
				tOps = append(tOps, NewNumberSpan(merged...))
				rest = rest[1:]
			} else if spanOpen {
				tOps = append(tOps, NewNumberSpan(span...))
			}
		} else if spanOpen {
			tOps = append(tOps, NewNumberSpan(span...))
		}
		tOps = append(tOps, mods...)
		tOps = append(tOps, rest...)
		newTails[i] = &Structure[T]{Operations: tOps, FollowedBy: t.FollowedBy}
	}
	return emit(newOps, newTails)
}

// emit assembles a canonical structure, inlining a lone continuation when
// the boundary cannot break the numeric-span invariants.
func emit[T any](ops []Operation[T], tails []*Structure[T]) *Structure[T] {
	if len(tails) == 1 {
		t := tails[0]
		if len(ops) == 0 {
			return t
		}
		safe := true
		if len(t.Operations) > 0 {
			if _, is := t.Operations[0].(*NumberSpan[T]); is {
				// inlining would place the tail's leading span right after
				// ops; legal only when the last op is a plain shield
				switch ops[len(ops)-1].(type) {
				case *NumberSpan[T], *Modify[T]:
					safe = false
				}
			}
		}
		if safe {
			merged := make([]Operation[T], 0, len(ops)+len(t.Operations))
			merged = append(merged, ops...)
			merged = append(merged, t.Operations...)
			return &Structure[T]{Operations: merged, FollowedBy: t.FollowedBy}
		}
	}
	return &Structure[T]{Operations: ops, FollowedBy: tails}
}
