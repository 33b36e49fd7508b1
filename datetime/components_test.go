package datetime

import (
	"testing"
)

func intp(v int) *int {
	return &v
}

func boolp(v bool) *bool {
	return &v
}

func TestComponentsDate(t *testing.T) {
	c := &Components{Year: intp(2025), Month: intp(8), Day: intp(23)}
	d, e := c.Date()
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if d != (Date{2025, 8, 23}) {
		t.Errorf("expecting 2025-08-23, got %s", d)
	}

	c.YearNegative = boolp(true)
	d, e = c.Date()
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if d.Year != -2025 {
		t.Errorf("expecting year -2025, got %d", d.Year)
	}
}

func TestComponentsDateMissingFields(t *testing.T) {
	samples := []*Components{
		{},
		{Year: intp(2025)},
		{Year: intp(2025), Month: intp(8)},
		{Month: intp(8), Day: intp(23)},
	}
	for i, c := range samples {
		if _, e := c.Date(); e == nil {
			t.Errorf("sample #%d: expecting a missing field error", i)
		}
	}
}

func TestComponentsDayOfWeekCheck(t *testing.T) {
	c := &Components{Year: intp(2025), Month: intp(8), Day: intp(23), DayOfWeek: intp(Saturday)}
	if _, e := c.Date(); e != nil {
		t.Errorf("unexpected error: %s", e.Error())
	}

	c.DayOfWeek = intp(Friday)
	if _, e := c.Date(); e == nil {
		t.Error("expecting a day of week mismatch error")
	}
}

func TestComponentsTime(t *testing.T) {
	c := &Components{Hour: intp(14), Minute: intp(15)}
	tm, e := c.Time()
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if tm != (Time{14, 15, 0, 0}) {
		t.Errorf("expecting 14:15:00, got %s", tm)
	}

	c.Second = intp(16)
	c.Nanosecond = intp(500000000)
	tm, _ = c.Time()
	if tm != (Time{14, 15, 16, 500000000}) {
		t.Errorf("expecting 14:15:16.5, got %s", tm)
	}
}

func TestComponentsTwelveHourCycle(t *testing.T) {
	samples := []struct {
		h12, ampm, hour int
	}{
		{12, AM, 0},
		{1, AM, 1},
		{11, AM, 11},
		{12, PM, 12},
		{1, PM, 13},
		{11, PM, 23},
	}
	for _, sample := range samples {
		c := &Components{HourOfAmPm: intp(sample.h12), AmPm: intp(sample.ampm), Minute: intp(0)}
		tm, e := c.Time()
		if e != nil {
			t.Errorf("%d/%d: unexpected error: %s", sample.h12, sample.ampm, e.Error())
			continue
		}
		if tm.Hour != sample.hour {
			t.Errorf("%d/%d: expecting hour %d, got %d", sample.h12, sample.ampm, sample.hour, tm.Hour)
		}
	}
}

func TestComponentsHourConsistency(t *testing.T) {
	c := &Components{Hour: intp(14), HourOfAmPm: intp(2), AmPm: intp(PM), Minute: intp(15)}
	if _, e := c.Time(); e != nil {
		t.Errorf("unexpected error: %s", e.Error())
	}

	c.Hour = intp(15)
	if _, e := c.Time(); e == nil {
		t.Error("expecting an hour mismatch error")
	}

	c = &Components{HourOfAmPm: intp(2), Minute: intp(15)}
	if _, e := c.Time(); e == nil {
		t.Error("a 12-hour value without an am/pm marker must be rejected")
	}
}

func TestComponentsOffset(t *testing.T) {
	c := &Components{OffsetHours: intp(5), OffsetMinutes: intp(30)}
	o, e := c.Offset()
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if o.Seconds != 5*3600+30*60 {
		t.Errorf("expecting +05:30, got %s", o)
	}

	c.OffsetNegative = boolp(true)
	o, _ = c.Offset()
	if o.Seconds != -(5*3600 + 30*60) {
		t.Errorf("expecting -05:30, got %s", o)
	}

	if _, e = (&Components{}).Offset(); e == nil {
		t.Error("expecting a missing field error")
	}
}

func TestComponentsRoundTrip(t *testing.T) {
	c := &Components{}
	c.SetDate(Date{-99, 2, 14})
	c.SetTime(Time{23, 59, 58, 123456789})
	c.SetOffset(UtcOffset{-(2*3600 + 30*60)})

	d, e := c.Date()
	if e != nil || d != (Date{-99, 2, 14}) {
		t.Errorf("expecting -0099-02-14, got %v (%v)", d, e)
	}
	tm, e := c.Time()
	if e != nil || tm != (Time{23, 59, 58, 123456789}) {
		t.Errorf("expecting 23:59:58.123456789, got %v (%v)", tm, e)
	}
	o, e := c.Offset()
	if e != nil || o.Seconds != -(2*3600+30*60) {
		t.Errorf("expecting -02:30, got %v (%v)", o, e)
	}
}

func TestComponentsCopyIsolation(t *testing.T) {
	c := &Components{Year: intp(2025), Month: intp(8)}
	d := c.Copy()
	*d.Year = 1999
	d.Day = intp(1)
	if *c.Year != 2025 {
		t.Error("copies must not share field storage")
	}
	if c.Day != nil {
		t.Error("copies must not leak new fields into the source")
	}
}

func TestFieldTrySet(t *testing.T) {
	c := &Components{}
	v, ok := MonthField.TrySet(c, 8)
	if !ok || v != 8 {
		t.Errorf("first assignment: expecting 8/true, got %d/%v", v, ok)
	}
	v, ok = MonthField.TrySet(c, 8)
	if !ok || v != 8 {
		t.Errorf("consistent reassignment: expecting 8/true, got %d/%v", v, ok)
	}
	v, ok = MonthField.TrySet(c, 9)
	if ok || v != 8 {
		t.Errorf("conflicting reassignment: expecting 8/false, got %d/%v", v, ok)
	}
}
