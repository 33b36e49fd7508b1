package parsing

import (
	"sort"
)

// Copyable is the only capability the matcher requires of an output
// container: Copy must duplicate the container deeply enough that mutating
// one branch's copy never affects a sibling branch's copy.
type Copyable[T any] interface {
	Copy() T
}

type matchState[T any] struct {
	output    T
	pos       int
	structure *Structure[T]
}

// Match runs the compiled structure against input starting at start and
// requires the whole remaining input to be consumed. On success the
// populated output is returned; when every branch fails, the returned
// error is a *MatchError carrying all distinct branch failures ranked by
// descending position.
func Match[T Copyable[T]](s *Structure[T], input string, start int, initial T) (T, error) {
	out, _, me := match(s, input, start, initial, false)
	if me != nil {
		return out, me
	}
	return out, nil
}

// MatchPrefix is the speculative variant: dangling input is permitted and
// failure is reported without diagnostics. Returns the populated output
// and the position right after the matched prefix.
func MatchPrefix[T Copyable[T]](s *Structure[T], input string, start int, initial T) (T, int, bool) {
	out, end, me := match(s, input, start, initial, true)
	return out, end, me == nil
}

func match[T Copyable[T]](s *Structure[T], input string, start int, initial T, allowDangling bool) (T, int, *MatchError) {
	// stack discipline: the most recently queued branch runs first, so
	// alternatives are explored depth-first in declaration order
	work := []matchState[T]{{initial, start, s}}
	var failures []*ParseError

	for len(work) > 0 {
		st := work[len(work)-1]
		work = work[:len(work)-1]

		// divergent branches must not share mutable state
		out := st.output.Copy()
		pos := st.pos
		var failed *ParseError
		for _, op := range st.structure.Operations {
			next, e := op.Consume(out, input, pos)
			if e != nil {
				failed = e
				break
			}
			pos = next
		}
		if failed != nil {
			failures = collectFailure(failures, failed)
			continue
		}

		alts := st.structure.FollowedBy
		if len(alts) == 0 {
			if pos < len(input) && !allowDangling {
				failures = collectFailure(failures, remainingInputError(pos, input))
				continue
			}
			return out, pos, nil
		}
		for i := len(alts) - 1; i >= 0; i-- {
			work = append(work, matchState[T]{out, pos, alts[i]})
		}
	}

	sort.SliceStable(failures, func(i, j int) bool {
		return failures[i].Pos > failures[j].Pos
	})
	var zero T
	return zero, 0, &MatchError{failures}
}

// collectFailure records a branch failure, keeping one entry per distinct
// (position, message) failure. Sibling branches may fail at the same
// position with the same code but different expectations, so messages are
// compared too; rendering them here is fine, this only runs on branches
// that already failed.
func collectFailure(failures []*ParseError, e *ParseError) []*ParseError {
	for _, f := range failures {
		if f.Code == e.Code && f.Pos == e.Pos && f.Message() == e.Message() {
			return failures
		}
	}
	return append(failures, e)
}
