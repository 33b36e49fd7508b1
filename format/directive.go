// Package format assembles date-time formats out of field directives,
// compiles pattern strings, and exposes the public Format type that both
// renders datetime values to text and parses text back.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ava12/datefmt/datetime"
	"github.com/ava12/datefmt/parsing"
)

type container = *datetime.Components
type structure = parsing.Structure[container]

// Directive is one step of a format. It renders a field (or fixed text) of
// a component container and contributes the parser fragment recovering that
// field from text. Directives are immutable and freely shareable between
// formats.
type Directive interface {
	render(b *strings.Builder, c container) error
	fragment() *structure

	// defaulted reports whether the directive may be left out of an
	// optional section: its fields are unset or hold their default values.
	// Directives whose fields have no default report false.
	defaulted(c container) bool

	// applyDefault assigns the directive's default field values. Runs when
	// parsed input omits the optional section containing the directive, so
	// that present and absent sections populate the same fields.
	applyDefault(c container)
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}

type literal struct {
	text string
}

// Literal is a fixed text directive. Digit runs inside the text become
// constant digit consumers, so a literal may sit next to a numeric field
// without absorbing or splitting its digits.
func Literal(text string) Directive {
	if text == "" {
		panic("datefmt: empty literal directive")
	}
	return literal{text}
}

func (l literal) render(b *strings.Builder, c container) error {
	b.WriteString(l.text)
	return nil
}

func (l literal) defaulted(c container) bool {
	return true
}

func (l literal) applyDefault(c container) {}

func (l literal) fragment() *structure {
	var ops []parsing.Operation[container]
	text := l.text
	for len(text) > 0 {
		i := 0
		if isDigitByte(text[0]) {
			for i < len(text) && isDigitByte(text[i]) {
				i++
			}
			ops = append(ops, parsing.NewNumberSpan[container](parsing.NewConstantDigitsConsumer[container](text[:i])))
		} else {
			for i < len(text) && !isDigitByte(text[i]) {
				i++
			}
			ops = append(ops, parsing.NewPlainString[container](text[:i]))
		}
		text = text[i:]
	}
	return parsing.NewStructure[container](ops...)
}

// numberDirective covers every plain unsigned numeric field: fixed
// zero-padded width when padded, minimal width otherwise. deflt, when
// non-nil, is the value the field takes in an omitted optional section.
type numberDirective struct {
	field  datetime.Field
	get    func(c container) *int
	length int // 0 = unpadded, variable length
	deflt  *int
}

func (d numberDirective) render(b *strings.Builder, c container) error {
	p := d.get(c)
	if p == nil {
		return missingValueError(d.field.Name())
	}
	if d.length > 0 {
		fmt.Fprintf(b, "%0*d", d.length, *p)
	} else {
		b.WriteString(strconv.Itoa(*p))
	}
	return nil
}

func (d numberDirective) fragment() *structure {
	return parsing.NewStructure[container](parsing.NewNumberSpan[container](
		parsing.NewUnsignedIntConsumer(d.length, d.field, false)))
}

func (d numberDirective) defaulted(c container) bool {
	if d.deflt == nil {
		return false
	}
	p := d.get(c)
	return p == nil || *p == *d.deflt
}

func (d numberDirective) applyDefault(c container) {
	if d.deflt != nil {
		d.field.TrySet(c, *d.deflt)
	}
}

func padding(padded bool) int {
	if padded {
		return 2
	}
	return 0
}

var zeroDefault = new(int)

// MonthNumber is the month-of-year field, 1..12.
func MonthNumber(padded bool) Directive {
	return numberDirective{datetime.MonthField, func(c container) *int { return c.Month }, padding(padded), nil}
}

// DayOfMonth is the day-of-month field, 1..31.
func DayOfMonth(padded bool) Directive {
	return numberDirective{datetime.DayField, func(c container) *int { return c.Day }, padding(padded), nil}
}

// Hour is the hour-of-day field, 0..23.
func Hour(padded bool) Directive {
	return numberDirective{datetime.HourField, func(c container) *int { return c.Hour }, padding(padded), nil}
}

// HourOfAmPm is the 12-hour-cycle hour field, 1..12.
func HourOfAmPm(padded bool) Directive {
	return numberDirective{datetime.HourOfAmPmField, func(c container) *int { return c.HourOfAmPm }, padding(padded), nil}
}

// Minute is the minute-of-hour field, 0..59.
func Minute(padded bool) Directive {
	return numberDirective{datetime.MinuteField, func(c container) *int { return c.Minute }, padding(padded), nil}
}

// Second is the second-of-minute field, 0..59. Defaults to 0 when its
// optional section is omitted.
func Second(padded bool) Directive {
	return numberDirective{datetime.SecondField, func(c container) *int { return c.Second }, padding(padded), zeroDefault}
}

type yearDirective struct {
	digits int
}

// Year is the full year field, rendered zero-padded to digits with a
// leading minus for negative years. Parsing accepts an optional sign
// followed by one or more digits; the digit run is open-ended, so years
// wider than the padding round-trip.
func Year(digits int) Directive {
	if digits < 1 || digits > 9 {
		panic(fmt.Sprintf("datefmt: invalid year padding %d", digits))
	}
	return yearDirective{digits}
}

func (d yearDirective) render(b *strings.Builder, c container) error {
	if c.Year == nil {
		return missingValueError(datetime.YearField.Name())
	}
	if c.YearNegative != nil && *c.YearNegative {
		b.WriteByte('-')
	}
	fmt.Fprintf(b, "%0*d", d.digits, *c.Year)
	return nil
}

func (d yearDirective) defaulted(c container) bool {
	return false
}

func (d yearDirective) applyDefault(c container) {}

func (d yearDirective) fragment() *structure {
	span := parsing.NewNumberSpan[container](parsing.NewUnsignedIntConsumer(0, datetime.YearField, false))
	return parsing.Alternatives(
		parsing.NewStructure[container](
			parsing.NewModify(func(c container) { datetime.SetYearNegative(c, false) }),
			span,
		),
		parsing.NewStructure[container](
			parsing.NewSign(true, "a year sign", datetime.SetYearNegative),
			span,
		),
	)
}

type reducedYearDirective struct {
	base int
}

// ReducedYear is the two-digit year abbreviation mapped into the
// base..base+99 window, e.g. base 2000 maps "42" to 2042.
func ReducedYear(base int) Directive {
	return reducedYearDirective{base}
}

func (d reducedYearDirective) render(b *strings.Builder, c container) error {
	if c.Year == nil {
		return missingValueError(datetime.YearField.Name())
	}
	if c.YearNegative != nil && *c.YearNegative {
		return valueRangeError(datetime.YearField.Name(), -*c.Year)
	}
	if *c.Year < d.base || *c.Year > d.base+99 {
		return valueRangeError(datetime.YearField.Name(), *c.Year)
	}
	fmt.Fprintf(b, "%02d", *c.Year%100)
	return nil
}

func (d reducedYearDirective) defaulted(c container) bool {
	return false
}

func (d reducedYearDirective) applyDefault(c container) {}

func (d reducedYearDirective) fragment() *structure {
	return parsing.NewStructure[container](parsing.NewNumberSpan[container](
		parsing.NewReducedYearConsumer(2, d.base, datetime.YearField)))
}

type fractionDirective struct {
	minLength, maxLength int
}

// SecondFraction is the fraction-of-second field: between minLength and
// maxLength digits, scaled to nanoseconds. Rendering trims trailing zeros
// down to minLength digits.
func SecondFraction(minLength, maxLength int) Directive {
	if minLength < 1 || maxLength > 9 || minLength > maxLength {
		panic(fmt.Sprintf("datefmt: invalid fraction bounds %d..%d", minLength, maxLength))
	}
	return fractionDirective{minLength, maxLength}
}

func (d fractionDirective) render(b *strings.Builder, c container) error {
	if c.Nanosecond == nil {
		return missingValueError(datetime.NanosecondField.Name())
	}
	digits := fmt.Sprintf("%09d", *c.Nanosecond)[:d.maxLength]
	for len(digits) > d.minLength && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}
	b.WriteString(digits)
	return nil
}

// The fraction defaults to 0 when its optional section is omitted.
func (d fractionDirective) defaulted(c container) bool {
	return c.Nanosecond == nil || *c.Nanosecond == 0
}

func (d fractionDirective) applyDefault(c container) {
	datetime.NanosecondField.TrySet(c, 0)
}

func (d fractionDirective) fragment() *structure {
	return parsing.NewStructure[container](parsing.NewNumberSpan[container](
		parsing.NewFractionConsumer(d.minLength, d.maxLength, datetime.NanosecondField)))
}

var longMonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var shortMonthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var longDayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var shortDayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var amPmNames = []string{"AM", "PM"}

// nameDirective maps a field value to an entry of a fixed vocabulary and
// back. base is the field value of the first vocabulary entry.
type nameDirective struct {
	names []string
	base  int
	field datetime.Field
	get   func(c container) *int
	set   *parsing.StringSet[container, int]
}

func newNameDirective(names []string, base int, expects string, field datetime.Field, get func(c container) *int) nameDirective {
	entries := make(map[string]int, len(names))
	for i, name := range names {
		entries[name] = base + i
	}
	return nameDirective{names, base, field, get, parsing.NewStringSet(entries, expects, field)}
}

func (d nameDirective) render(b *strings.Builder, c container) error {
	p := d.get(c)
	if p == nil {
		return missingValueError(d.field.Name())
	}
	i := *p - d.base
	if i < 0 || i >= len(d.names) {
		return valueRangeError(d.field.Name(), *p)
	}
	b.WriteString(d.names[i])
	return nil
}

func (d nameDirective) defaulted(c container) bool {
	return false
}

func (d nameDirective) applyDefault(c container) {}

func (d nameDirective) fragment() *structure {
	return parsing.NewStructure[container](d.set)
}

// MonthName is the English month name field, "January" or "Jan".
func MonthName(short bool) Directive {
	names := longMonthNames
	if short {
		names = shortMonthNames
	}
	return newNameDirective(names, 1, "a month name", datetime.MonthField,
		func(c container) *int { return c.Month })
}

// DayOfWeekName is the English day-of-week name field, "Monday" or "Mon".
func DayOfWeekName(short bool) Directive {
	names := longDayNames
	if short {
		names = shortDayNames
	}
	return newNameDirective(names, 1, "a day of week name", datetime.DayOfWeekField,
		func(c container) *int { return c.DayOfWeek })
}

// AmPmMarker is the "AM"/"PM" half-of-day field.
func AmPmMarker() Directive {
	return newNameDirective(amPmNames, 0, "an AM/PM marker", datetime.AmPmField,
		func(c container) *int { return c.AmPm })
}

type offsetDirective struct {
	allowZulu bool
}

// Offset is the UTC offset field: a sign followed by HH:MM, with an
// optional :SS part for offsets not aligned to a minute. With allowZulu
// the zero offset renders as "Z" and both "Z" and "z" parse as zero.
func Offset(allowZulu bool) Directive {
	return offsetDirective{allowZulu}
}

func (d offsetDirective) render(b *strings.Builder, c container) error {
	o, e := c.Offset()
	if e != nil {
		return e
	}
	s := o.Seconds
	if s == 0 && d.allowZulu {
		b.WriteByte('Z')
		return nil
	}
	sign := byte('+')
	if s < 0 {
		sign = '-'
		s = -s
	}
	b.WriteByte(sign)
	fmt.Fprintf(b, "%02d:%02d", s/3600, s/60%60)
	if s%60 != 0 {
		fmt.Fprintf(b, ":%02d", s%60)
	}
	return nil
}

func (d offsetDirective) defaulted(c container) bool {
	return false
}

func (d offsetDirective) applyDefault(c container) {}

func zuluBranch(text string) *structure {
	return parsing.NewStructure[container](
		parsing.NewPlainString[container](text),
		parsing.NewModify(func(c container) {
			datetime.SetOffsetNegative(c, false)
			h, m, s := 0, 0, 0
			c.OffsetHours, c.OffsetMinutes, c.OffsetSeconds = &h, &m, &s
		}),
	)
}

func (d offsetDirective) fragment() *structure {
	signed := parsing.Concat(
		parsing.NewStructure[container](
			parsing.NewSign(true, "a UTC offset sign", datetime.SetOffsetNegative),
			parsing.NewNumberSpan[container](parsing.NewUnsignedIntConsumer(2, datetime.OffsetHoursField, false)),
			parsing.NewPlainString[container](":"),
			parsing.NewNumberSpan[container](parsing.NewUnsignedIntConsumer(2, datetime.OffsetMinutesField, false)),
		),
		parsing.Alternatives(
			parsing.NewStructure[container](
				parsing.NewPlainString[container](":"),
				parsing.NewNumberSpan[container](parsing.NewUnsignedIntConsumer(2, datetime.OffsetSecondsField, false)),
			),
			parsing.Empty[container](),
		),
	)
	if !d.allowZulu {
		return signed
	}
	return parsing.Alternatives(zuluBranch("Z"), zuluBranch("z"), signed)
}
