package datetime

import (
	"github.com/ava12/datefmt/parsing"
)

// Field is an assignable Components field as seen by the parsing engine.
type Field = parsing.AssignableField[*Components, int]

type intField struct {
	name string
	get  func(c *Components) **int
}

func (f intField) Name() string {
	return f.name
}

func (f intField) TrySet(c *Components, v int) (int, bool) {
	p := f.get(c)
	if *p == nil {
		value := v
		*p = &value
		return v, true
	}
	return **p, **p == v
}

// The assignable fields of Components, one per container slot. All of them
// follow set-once-consistently semantics: re-assigning an equal value
// succeeds, a differing one is a conflict.
var (
	YearField          Field = intField{"year", func(c *Components) **int { return &c.Year }}
	MonthField         Field = intField{"month", func(c *Components) **int { return &c.Month }}
	DayField           Field = intField{"day of month", func(c *Components) **int { return &c.Day }}
	DayOfWeekField     Field = intField{"day of week", func(c *Components) **int { return &c.DayOfWeek }}
	HourField          Field = intField{"hour", func(c *Components) **int { return &c.Hour }}
	HourOfAmPmField    Field = intField{"hour of am/pm", func(c *Components) **int { return &c.HourOfAmPm }}
	AmPmField          Field = intField{"am/pm marker", func(c *Components) **int { return &c.AmPm }}
	MinuteField        Field = intField{"minute", func(c *Components) **int { return &c.Minute }}
	SecondField        Field = intField{"second", func(c *Components) **int { return &c.Second }}
	NanosecondField    Field = intField{"nanosecond", func(c *Components) **int { return &c.Nanosecond }}
	OffsetHoursField   Field = intField{"offset hours", func(c *Components) **int { return &c.OffsetHours }}
	OffsetMinutesField Field = intField{"offset minutes", func(c *Components) **int { return &c.OffsetMinutes }}
	OffsetSecondsField Field = intField{"offset seconds", func(c *Components) **int { return &c.OffsetSeconds }}
)

// SetYearNegative records the year sign; used by the year directive's sign
// and implicit-sign steps.
func SetYearNegative(c *Components, negative bool) {
	c.YearNegative = &negative
}

// SetOffsetNegative records the offset sign.
func SetOffsetNegative(c *Components, negative bool) {
	c.OffsetNegative = &negative
}
