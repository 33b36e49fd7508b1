package format

import (
	"github.com/ava12/datefmt"
)

// The pivot of the two-digit year abbreviation: "yy" maps into 2000..2099.
const reducedYearBase = 2000

// Compile translates a pattern string into a Format.
//
// Pattern letters repeat to select a field width or name form:
//
//	y    year: y..yyyy zero-padded to the letter count, yy is the
//	     two-digit abbreviation mapped into 2000..2099
//	u    year, without the two-digit special case
//	M    month: M and MM numeric, MMM "Jan", MMMM "January"
//	d    day of month
//	E    day of week name: E..EEE "Mon", EEEE "Monday"
//	H    hour of day, 0..23
//	h    hour of the 12-hour cycle, 1..12
//	a    AM/PM marker
//	m    minute
//	s    second
//	S    fraction of second, one digit per letter
//	x    UTC offset, +HH:MM[:SS]
//	X    UTC offset, as x but zero renders as "Z"
//
// Doubled numeric letters (MM, dd, HH, hh, mm, ss) are zero-padded to two
// digits. Text in single quotes is literal ('' is a quote character);
// sections in square brackets are optional. Any other letter is reserved
// and rejected.
func Compile(pattern string) (*Format, error) {
	s := &patternScanner{src: pattern}
	directives, e := compileSection(s, false)
	if e != nil {
		return nil, e
	}
	if len(directives) == 0 {
		return nil, emptyPatternError()
	}
	return New(directives...), nil
}

// MustCompile is Compile panicking on a bad pattern, for package-level
// format variables.
func MustCompile(pattern string) *Format {
	f, e := Compile(pattern)
	if e != nil {
		panic("datefmt: " + e.Error())
	}
	return f
}

type patternScanner struct {
	src string
	pos int
}

func (s *patternScanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *patternScanner) peek() byte {
	return s.src[s.pos]
}

// countRun consumes a run of the current letter and returns its length.
func (s *patternScanner) countRun() int {
	c := s.src[s.pos]
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] == c {
		s.pos++
	}
	return s.pos - start
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func compileSection(s *patternScanner, nested bool) ([]Directive, error) {
	var directives []Directive

	for !s.done() {
		c := s.peek()
		switch {
		case c == '[':
			s.pos++
			inner, e := compileSection(s, true)
			if e != nil {
				return nil, e
			}
			directives = append(directives, Optional(inner...))

		case c == ']':
			if !nested {
				return nil, unbalancedBracketError(s.pos)
			}
			s.pos++
			return directives, nil

		case c == '\'':
			text, e := s.quoted()
			if e != nil {
				return nil, e
			}
			directives = append(directives, Literal(text))

		case isLetter(c):
			start := s.pos
			count := s.countRun()
			d, e := letterDirective(c, count, start)
			if e != nil {
				return nil, e
			}
			directives = append(directives, d)

		default:
			start := s.pos
			for !s.done() && !isLetter(s.peek()) && s.peek() != '[' && s.peek() != ']' && s.peek() != '\'' {
				s.pos++
			}
			directives = append(directives, Literal(s.src[start:s.pos]))
		}
	}

	if nested {
		return nil, unbalancedBracketError(len(s.src))
	}
	return directives, nil
}

// quoted consumes a single-quoted literal. A doubled quote inside (or the
// bare pair '') stands for one quote character.
func (s *patternScanner) quoted() (string, error) {
	start := s.pos
	s.pos++
	var text []byte
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\'' {
			if s.pos+1 < len(s.src) && s.src[s.pos+1] == '\'' {
				text = append(text, '\'')
				s.pos += 2
				continue
			}
			s.pos++
			if len(text) == 0 {
				return "'", nil
			}
			return string(text), nil
		}
		text = append(text, c)
		s.pos++
	}
	return "", unbalancedQuoteError(start)
}

func letterDirective(letter byte, count, pos int) (Directive, *datefmt.Error) {
	switch letter {
	case 'y', 'u', 'S':
		if count > 9 {
			return nil, letterCountError(pos, letter, count)
		}
	}
	switch letter {
	case 'y':
		if count == 2 {
			return ReducedYear(reducedYearBase), nil
		}
		return Year(count), nil
	case 'u':
		return Year(count), nil
	case 'M':
		switch {
		case count <= 2:
			return MonthNumber(count == 2), nil
		case count == 3:
			return MonthName(true), nil
		default:
			return MonthName(false), nil
		}
	case 'd':
		return DayOfMonth(count >= 2), nil
	case 'E':
		return DayOfWeekName(count <= 3), nil
	case 'H':
		return Hour(count >= 2), nil
	case 'h':
		return HourOfAmPm(count >= 2), nil
	case 'a':
		return AmPmMarker(), nil
	case 'm':
		return Minute(count >= 2), nil
	case 's':
		return Second(count >= 2), nil
	case 'S':
		return SecondFraction(count, count), nil
	case 'x':
		return Offset(false), nil
	case 'X':
		return Offset(true), nil
	}
	return nil, unknownLetterError(pos, letter)
}
