package parsing

import (
	"strings"
	"testing"
)

func TestPlainString(t *testing.T) {
	samples := []struct {
		src string
		pos int
		end int
		err int
	}{
		{"foo", 0, 3, 0},
		{"xfoo", 1, 4, 0},
		{"fo", 0, 0, EndOfInputError},
		{"fox", 0, 0, LiteralMismatchError},
	}
	op := lit("foo")
	for i, sample := range samples {
		end, e := op.Consume(newRecord(), sample.src, sample.pos)
		if sample.err == 0 {
			if e != nil {
				t.Errorf("sample #%d: unexpected error: %s", i, e.Error())
			} else if end != sample.end {
				t.Errorf("sample #%d: expecting end %d, got %d", i, sample.end, end)
			}
		} else if e == nil || e.Code != sample.err {
			t.Errorf("sample #%d: expecting error code %d, got %v", i, sample.err, e)
		}
	}
}

func TestPlainStringConfig(t *testing.T) {
	if !expectPanic(func() { NewPlainString[*record]("") }) {
		t.Error("empty literal must panic")
	}
	if !expectPanic(func() { NewPlainString[*record]("2x") }) {
		t.Error("literal starting with a digit must panic")
	}
	if !expectPanic(func() { NewPlainString[*record]("x2") }) {
		t.Error("literal ending with a digit must panic")
	}
	if expectPanic(func() { NewPlainString[*record]("x2x") }) {
		t.Error("inner digits are allowed in literals")
	}
}

func TestNumberSpanPartitioning(t *testing.T) {
	span := NewNumberSpan[*record](
		NewUnsignedIntConsumer(2, field("a"), false),
		NewUnsignedIntConsumer(0, field("b"), false),
		NewUnsignedIntConsumer(2, field("c"), false),
	)
	r := newRecord()
	end, e := span.Consume(r, "12345678-", 0)
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if end != 8 {
		t.Errorf("expecting end 8, got %d", end)
	}
	// the variable-length consumer absorbs everything the fixed ones leave
	if r.values["a"] != 12 || r.values["b"] != 3456 || r.values["c"] != 78 {
		t.Errorf("expecting a=12 b=3456 c=78, got %v", r.values)
	}
}

func TestNumberSpanErrors(t *testing.T) {
	span := NewNumberSpan[*record](
		NewUnsignedIntConsumer(2, field("a"), false),
		NewUnsignedIntConsumer(2, field("b"), false),
	)

	_, e := span.Consume(newRecord(), "123-", 0)
	if e == nil || e.Code != TooFewDigitsError {
		t.Errorf("expecting too few digits error, got %v", e)
	}
	if e != nil && !strings.Contains(e.Message(), "2 digits for a") {
		t.Errorf("error must describe the full expectation: %s", e.Message())
	}

	_, e = span.Consume(newRecord(), "12", 0)
	if e == nil || e.Code != EndOfInputError {
		t.Errorf("expecting end of input error, got %v", e)
	}

	long := NewNumberSpan[*record](NewUnsignedIntConsumer(0, field("n"), false))
	_, e = long.Consume(newRecord(), "99999999999", 0)
	if e == nil || e.Code != OutOfRangeError {
		t.Errorf("expecting out of range error, got %v", e)
	}
	if e != nil && e.Pos != 0 {
		t.Errorf("expecting error at the sub-field start, got position %d", e.Pos)
	}
}

func TestNumberSpanConfig(t *testing.T) {
	if !expectPanic(func() {
		NewNumberSpan[*record](
			NewUnsignedIntConsumer(0, field("a"), false),
			NewUnsignedIntConsumer(0, field("b"), false),
		)
	}) {
		t.Error("two variable-length consumers in one span must panic")
	}
	if !expectPanic(func() { NewNumberSpan[*record]() }) {
		t.Error("an empty span must panic")
	}
}

func TestNegatedConsumer(t *testing.T) {
	span := NewNumberSpan[*record](NewUnsignedIntConsumer(2, field("n"), true))
	r := newRecord()
	if _, e := span.Consume(r, "42", 0); e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if r.values["n"] != -42 {
		t.Errorf("expecting n=-42, got %v", r.values)
	}
}

func TestUnsignedLongConsumer(t *testing.T) {
	span := NewNumberSpan[*record](NewUnsignedLongConsumer(0, longField("epoch")))
	r := newRecord()
	if _, e := span.Consume(r, "253402300799", 0); e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if r.longs["epoch"] != 253402300799 {
		t.Errorf("expecting epoch=253402300799, got %d", r.longs["epoch"])
	}

	_, e := span.Consume(newRecord(), "99999999999999999999", 0)
	if e == nil || e.Code != OutOfRangeError {
		t.Errorf("expecting out of range error, got %v", e)
	}
}

func TestConstantDigits(t *testing.T) {
	span := NewNumberSpan[*record](
		NewConstantDigitsConsumer[*record]("20"),
		NewUnsignedIntConsumer(2, field("year"), false),
	)
	r := newRecord()
	if _, e := span.Consume(r, "2025", 0); e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if r.values["year"] != 25 {
		t.Errorf("expecting year=25, got %v", r.values)
	}

	_, e := span.Consume(newRecord(), "1925", 0)
	if e == nil || e.Code != LiteralMismatchError {
		t.Errorf("expecting mismatch error, got %v", e)
	}

	if !expectPanic(func() { NewConstantDigitsConsumer[*record]("2x") }) {
		t.Error("non-digit constant must panic")
	}
}

func TestFractionConsumer(t *testing.T) {
	samples := []struct {
		digits string
		nanos  int
	}{
		{"5", 500000000},
		{"123", 123000000},
		{"123456789", 123456789},
	}
	c := NewFractionConsumer(1, 9, field("nanos"))
	for i, sample := range samples {
		r := newRecord()
		if e := c.Consume(r, sample.digits, 0); e != nil {
			t.Errorf("sample #%d: unexpected error: %s", i, e.Error())
			continue
		}
		if r.values["nanos"] != sample.nanos {
			t.Errorf("sample #%d: expecting %d, got %d", i, sample.nanos, r.values["nanos"])
		}
	}

	if !expectPanic(func() { NewFractionConsumer(0, 9, field("nanos")) }) {
		t.Error("fraction bounds outside 1..9 must panic")
	}
}

func TestReducedYearConsumer(t *testing.T) {
	samples := []struct {
		digits string
		base   int
		year   int
	}{
		{"60", 1960, 1960},
		{"99", 1960, 1999},
		{"59", 1960, 2059},
		{"00", 1960, 2000},
		{"25", 2000, 2025},
	}
	for i, sample := range samples {
		c := NewReducedYearConsumer(2, sample.base, field("year"))
		r := newRecord()
		if e := c.Consume(r, sample.digits, 0); e != nil {
			t.Errorf("sample #%d: unexpected error: %s", i, e.Error())
			continue
		}
		if r.values["year"] != sample.year {
			t.Errorf("sample #%d: expecting year %d, got %d", i, sample.year, r.values["year"])
		}
	}
}

func TestSign(t *testing.T) {
	apply := func(r *record, negative bool) { r.neg = negative }
	minus := NewSign(false, "a sign", apply)
	both := NewSign(true, "a sign", apply)

	r := newRecord()
	end, e := minus.Consume(r, "-1", 0)
	if e != nil || end != 1 || !r.neg {
		t.Errorf("expecting '-' consumed, got end=%d err=%v neg=%v", end, e, r.neg)
	}

	_, e = minus.Consume(newRecord(), "+1", 0)
	if e == nil || e.Code != LiteralMismatchError {
		t.Errorf("'+' must be rejected unless enabled, got %v", e)
	}

	r = newRecord()
	end, e = both.Consume(r, "+1", 0)
	if e != nil || end != 1 || r.neg {
		t.Errorf("expecting '+' consumed, got end=%d err=%v neg=%v", end, e, r.neg)
	}

	// absent sign at end of input is implicit
	end, e = both.Consume(newRecord(), "xy", 2)
	if e != nil || end != 2 {
		t.Errorf("expecting zero-width success at end of input, got end=%d err=%v", end, e)
	}

	_, e = both.Consume(newRecord(), "x", 0)
	if e == nil {
		t.Error("a non-sign character must be a mismatch")
	}
}
