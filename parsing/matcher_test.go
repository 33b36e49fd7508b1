package parsing

import (
	"strings"
	"testing"
)

func TestGreedyNumericBoundary(t *testing.T) {
	// a variable-length year followed by "-" must not split after 4 digits
	// when the digit run continues
	year := NewNumberSpan[*record](NewUnsignedIntConsumer(0, field("year"), false))
	s := Concat(
		frag(year), frag(lit("-")),
		frag(digits(2, "month")), frag(lit("-")),
		frag(digits(2, "day")),
	)
	r, e := Match(s, "202020-01-01", 0, newRecord())
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if r.values["year"] != 202020 || r.values["month"] != 1 || r.values["day"] != 1 {
		t.Errorf("expecting year=202020 month=1 day=1, got %v", r.values)
	}
}

func TestSignedAlternatives(t *testing.T) {
	// literal("+") | (sign, digits(4))
	sign := NewSign(true, "a sign", func(r *record, negative bool) { r.neg = negative })
	s := Concat(
		Alternatives(
			frag(lit("+"), digits(4, "n")),
			frag(sign, digits(4, "n")),
		),
	)

	samples := []struct {
		src      string
		value    int
		negative bool
	}{
		{"+1234", 1234, false},
		{"-0099", 99, true},
	}
	for i, sample := range samples {
		r, e := Match(s, sample.src, 0, newRecord())
		if e != nil {
			t.Errorf("sample #%d: unexpected error: %s", i, e.Error())
			continue
		}
		if r.values["n"] != sample.value || r.neg != sample.negative {
			t.Errorf("sample #%d: expecting n=%d neg=%v, got n=%d neg=%v",
				i, sample.value, sample.negative, r.values["n"], r.neg)
		}
	}
}

func TestFirstDeclaredAlternativeWins(t *testing.T) {
	s := Concat(Alternatives(frag(mark("first")), frag(mark("second"))))
	r, e := Match(s, "", 0, newRecord())
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if len(r.marks) != 1 || r.marks[0] != "first" {
		t.Errorf("expecting the first-declared alternative, got %v", r.marks)
	}
}

func TestBranchIsolation(t *testing.T) {
	// a failing branch's mutations must not leak into its siblings
	s := Concat(Alternatives(
		frag(mark("poison"), lit("x")),
		frag(lit("y")),
	))
	r, e := Match(s, "y", 0, newRecord())
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if len(r.marks) != 0 {
		t.Errorf("expecting no marks from the failed branch, got %v", r.marks)
	}
}

func TestFieldConflict(t *testing.T) {
	s := Concat(frag(digits(2, "hour")), frag(lit(":")), frag(digits(2, "hour")))

	r, e := Match(s, "14:14", 0, newRecord())
	if e != nil {
		t.Fatalf("agreeing values: unexpected error: %s", e.Error())
	}
	if r.values["hour"] != 14 {
		t.Errorf("expecting hour=14, got %v", r.values)
	}

	_, e = Match(s, "14:15", 0, newRecord())
	me, f := e.(*MatchError)
	if !f {
		t.Fatalf("conflicting values: expecting MatchError, got %v", e)
	}
	if me.Errors[0].Code != FieldConflictError {
		t.Errorf("expecting error code %d, got %d (%s)", FieldConflictError, me.Errors[0].Code, me.Errors[0].Error())
	}
	if !strings.Contains(me.Errors[0].Message(), "14") || !strings.Contains(me.Errors[0].Message(), "15") {
		t.Errorf("conflict message must name both values: %s", me.Errors[0].Message())
	}
}

func TestDiagnosticsRanking(t *testing.T) {
	s := Concat(Alternatives(
		frag(lit("ab"), lit("cd"), lit("!")),
		frag(lit("ab"), lit("x")),
		frag(lit("z")),
	))
	_, e := Match(s, "abcdef", 0, newRecord())
	me, f := e.(*MatchError)
	if !f {
		t.Fatalf("expecting MatchError, got %v", e)
	}
	if len(me.Errors) < 2 {
		t.Fatalf("expecting several ranked failures, got %d", len(me.Errors))
	}
	for i := 1; i < len(me.Errors); i++ {
		if me.Errors[i].Pos > me.Errors[i-1].Pos {
			t.Errorf("failures not ranked by descending position: %v before %v",
				me.Errors[i-1].Pos, me.Errors[i].Pos)
		}
	}
	// the deepest branch got past "ab" and "cd" before failing
	if me.Errors[0].Pos != 4 {
		t.Errorf("expecting the furthest failure at position 4, got %d (%s)", me.Errors[0].Pos, me.Errors[0].Error())
	}
}

func TestDistinctSamePositionFailuresRetained(t *testing.T) {
	// sibling branches failing at the same position with the same code but
	// different expectations must all be reported
	s := Concat(Alternatives(frag(lit("ab")), frag(lit("xy"))))
	_, e := Match(s, "qq", 0, newRecord())
	me, f := e.(*MatchError)
	if !f {
		t.Fatalf("expecting MatchError, got %v", e)
	}
	if len(me.Errors) != 2 {
		t.Fatalf("expecting 2 failures, got %d (%s)", len(me.Errors), me.Error())
	}
	sawAb, sawXy := false, false
	for _, pe := range me.Errors {
		sawAb = sawAb || strings.Contains(pe.Message(), `"ab"`)
		sawXy = sawXy || strings.Contains(pe.Message(), `"xy"`)
	}
	if !sawAb || !sawXy {
		t.Errorf("expecting both expectations reported, got ab=%v xy=%v (%s)", sawAb, sawXy, me.Error())
	}

	// identical failures reached through different branch prefixes still
	// collapse to one entry
	s = Concat(
		Alternatives(frag(mark("a")), frag(mark("b"))),
		frag(lit("z")),
	)
	_, e = Match(s, "q", 0, newRecord())
	me, f = e.(*MatchError)
	if !f {
		t.Fatalf("expecting MatchError, got %v", e)
	}
	if len(me.Errors) != 1 {
		t.Errorf("expecting 1 deduplicated failure, got %d (%s)", len(me.Errors), me.Error())
	}
}

func TestRemainingInput(t *testing.T) {
	s := Concat(frag(lit("a")))

	_, e := Match(s, "abc", 0, newRecord())
	me, f := e.(*MatchError)
	if !f || me.Errors[0].Code != RemainingInputError {
		t.Errorf("expecting remaining input error, got %v", e)
	}

	_, end, ok := MatchPrefix(s, "abc", 0, newRecord())
	if !ok || end != 1 {
		t.Errorf("expecting prefix match up to 1, got ok=%v end=%d", ok, end)
	}
}

func TestMatchStart(t *testing.T) {
	s := Concat(frag(digits(2, "n")))
	r, e := Match(s, "xx42", 2, newRecord())
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if r.values["n"] != 42 {
		t.Errorf("expecting n=42, got %v", r.values)
	}
}

func TestInitialContainerUntouched(t *testing.T) {
	initial := newRecord()
	s := Concat(frag(mark("x")))
	_, e := Match(s, "", 0, initial)
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if len(initial.marks) != 0 {
		t.Error("matching must work on a copy of the initial container")
	}
}
