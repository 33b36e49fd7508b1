package format

import (
	"strings"

	"github.com/ava12/datefmt/datetime"
	"github.com/ava12/datefmt/internal/cache"
	"github.com/ava12/datefmt/parsing"
)

// Format is a compiled date-time format. It renders component containers
// (or date/time values) to text and parses text back into components.
// Formats are immutable and safe for concurrent use.
type Format struct {
	directives []Directive
	structure  *structure
}

// New builds a Format from directives. The parser fragments of all
// directives are concatenated into one canonical structure here, once.
func New(directives ...Directive) *Format {
	return &Format{directives, concatDirectives(directives)}
}

// Format renders the set fields of c. Directives referring to unset fields
// make it fail; optional sections covering them are skipped instead.
func (f *Format) Format(c *datetime.Components) (string, error) {
	var b strings.Builder
	for _, d := range f.directives {
		if e := d.render(&b, c); e != nil {
			return "", e
		}
	}
	return b.String(), nil
}

// FormatDate renders a date value.
func (f *Format) FormatDate(d datetime.Date) (string, error) {
	c := &datetime.Components{}
	c.SetDate(d)
	return f.Format(c)
}

// FormatTime renders a time value.
func (f *Format) FormatTime(t datetime.Time) (string, error) {
	c := &datetime.Components{}
	c.SetTime(t)
	return f.Format(c)
}

// FormatDateTime renders a date and a time value together.
func (f *Format) FormatDateTime(d datetime.Date, t datetime.Time) (string, error) {
	c := &datetime.Components{}
	c.SetDate(d)
	c.SetTime(t)
	return f.Format(c)
}

// Parse matches input against the format and returns the recovered
// components. The whole input must match; on failure the error is a
// *parsing.MatchError ranking all branch failures by position.
func (f *Format) Parse(input string) (*datetime.Components, error) {
	return parsing.Match(f.structure, input, 0, &datetime.Components{})
}

// ParsePrefix matches the longest format-shaped prefix of input, returning
// the components and the position right after the prefix.
func (f *Format) ParsePrefix(input string, start int) (*datetime.Components, int, bool) {
	return parsing.MatchPrefix(f.structure, input, start, &datetime.Components{})
}

// ParseDate parses input and assembles a validated date value.
func (f *Format) ParseDate(input string) (datetime.Date, error) {
	c, e := f.Parse(input)
	if e != nil {
		return datetime.Date{}, e
	}
	return c.Date()
}

// ParseTime parses input and assembles a validated time value.
func (f *Format) ParseTime(input string) (datetime.Time, error) {
	c, e := f.Parse(input)
	if e != nil {
		return datetime.Time{}, e
	}
	return c.Time()
}

// ParseDateTime parses input and assembles validated date and time values.
func (f *Format) ParseDateTime(input string) (datetime.Date, datetime.Time, error) {
	c, e := f.Parse(input)
	if e != nil {
		return datetime.Date{}, datetime.Time{}, e
	}
	d, e := c.Date()
	if e != nil {
		return datetime.Date{}, datetime.Time{}, e
	}
	t, e := c.Time()
	return d, t, e
}

// ParseOffset parses input and assembles a validated UTC offset.
func (f *Format) ParseOffset(input string) (datetime.UtcOffset, error) {
	c, e := f.Parse(input)
	if e != nil {
		return datetime.UtcOffset{}, e
	}
	return c.Offset()
}

// Structure returns a dump of the compiled parser structure, for
// inspection and debugging.
func (f *Format) Structure() string {
	return f.structure.String()
}

// Predefined ISO 8601 formats.
var (
	ISODate = MustCompile("yyyy-MM-dd")

	ISOTime = NewBuilder().
		Add(Hour(true), Literal(":"), Minute(true)).
		Add(Optional(Literal(":"), Second(true), Optional(Literal("."), SecondFraction(1, 9)))).
		Build()

	ISODateTime = NewBuilder().
		Add(Year(4), Literal("-"), MonthNumber(true), Literal("-"), DayOfMonth(true)).
		Add(Literal("T"), Hour(true), Literal(":"), Minute(true)).
		Add(Optional(Literal(":"), Second(true), Optional(Literal("."), SecondFraction(1, 9)))).
		Build()

	ISOOffset = MustCompile("X")
)

const cacheCapacity = 64

var compiled = cache.New[*Format](cacheCapacity)

// Cached is Compile memoized in a bounded process-wide cache; compiled
// formats are immutable, so cache hits are shared.
func Cached(pattern string) (*Format, error) {
	return compiled.Get(pattern, func() (*Format, error) {
		return Compile(pattern)
	})
}
