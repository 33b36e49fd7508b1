package datetime

// Components is the mutable output container of the parsing engine: every
// field is optional, parsers populate fields as directives match, and
// conversions below assemble validated values out of them. Numeric fields
// hold magnitudes; YearNegative and OffsetNegative carry the signs, since
// sign characters are consumed separately from digit runs.
type Components struct {
	Year         *int
	YearNegative *bool
	Month        *int
	Day          *int
	DayOfWeek    *int

	Hour       *int
	HourOfAmPm *int
	AmPm       *int
	Minute     *int
	Second     *int
	Nanosecond *int

	OffsetNegative *bool
	OffsetHours    *int
	OffsetMinutes  *int
	OffsetSeconds  *int
}

// Copy duplicates the container. Required by the matcher: divergent parse
// branches must never share mutable state.
func (c *Components) Copy() *Components {
	result := &Components{}
	result.Year = copyInt(c.Year)
	result.YearNegative = copyBool(c.YearNegative)
	result.Month = copyInt(c.Month)
	result.Day = copyInt(c.Day)
	result.DayOfWeek = copyInt(c.DayOfWeek)
	result.Hour = copyInt(c.Hour)
	result.HourOfAmPm = copyInt(c.HourOfAmPm)
	result.AmPm = copyInt(c.AmPm)
	result.Minute = copyInt(c.Minute)
	result.Second = copyInt(c.Second)
	result.Nanosecond = copyInt(c.Nanosecond)
	result.OffsetNegative = copyBool(c.OffsetNegative)
	result.OffsetHours = copyInt(c.OffsetHours)
	result.OffsetMinutes = copyInt(c.OffsetMinutes)
	result.OffsetSeconds = copyInt(c.OffsetSeconds)
	return result
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func intAt(p *int, absent int) int {
	if p == nil {
		return absent
	}
	return *p
}

// Date assembles and validates a date value. Year, month, and day must be
// set; a populated day of week is cross-checked against the calendar.
func (c *Components) Date() (Date, error) {
	if c.Year == nil {
		return Date{}, missingFieldError("year")
	}
	if c.Month == nil {
		return Date{}, missingFieldError("month")
	}
	if c.Day == nil {
		return Date{}, missingFieldError("day of month")
	}
	year := *c.Year
	if c.YearNegative != nil && *c.YearNegative {
		year = -year
	}
	d, e := NewDate(year, *c.Month, *c.Day)
	if e != nil {
		return Date{}, e
	}
	if c.DayOfWeek != nil && *c.DayOfWeek != d.DayOfWeek() {
		return Date{}, mismatchError("day of week", *c.DayOfWeek, d.DayOfWeek())
	}
	return d, nil
}

// Time assembles and validates a time value. The hour comes from the
// 24-hour field, the 12-hour field plus am/pm marker, or both; when both
// renderings are present they must agree. Minute must be set; second and
// nanosecond default to zero.
func (c *Components) Time() (Time, error) {
	hour, e := c.hour()
	if e != nil {
		return Time{}, e
	}
	if c.Minute == nil {
		return Time{}, missingFieldError("minute")
	}
	return NewTime(hour, *c.Minute, intAt(c.Second, 0), intAt(c.Nanosecond, 0))
}

func (c *Components) hour() (int, error) {
	if c.Hour == nil && c.HourOfAmPm == nil {
		return 0, missingFieldError("hour")
	}
	if c.HourOfAmPm != nil {
		if *c.HourOfAmPm < 1 || *c.HourOfAmPm > 12 {
			return 0, rangeError("hour of am/pm", *c.HourOfAmPm)
		}
		if c.AmPm == nil {
			return 0, missingFieldError("am/pm marker")
		}
		hour := *c.HourOfAmPm % 12
		if *c.AmPm == PM {
			hour += 12
		}
		if c.Hour != nil && *c.Hour != hour {
			return 0, mismatchError("hour", *c.Hour, hour)
		}
		return hour, nil
	}
	return *c.Hour, nil
}

// Offset assembles and validates a UTC offset. At least the hours field
// must be set; minutes and seconds default to zero.
func (c *Components) Offset() (UtcOffset, error) {
	if c.OffsetHours == nil && c.OffsetMinutes == nil && c.OffsetSeconds == nil {
		return UtcOffset{}, missingFieldError("offset")
	}
	seconds := intAt(c.OffsetHours, 0)*3600 + intAt(c.OffsetMinutes, 0)*60 + intAt(c.OffsetSeconds, 0)
	if c.OffsetNegative != nil && *c.OffsetNegative {
		seconds = -seconds
	}
	return NewUtcOffset(seconds)
}

// SetDate populates the date fields, including the derived day of week.
func (c *Components) SetDate(d Date) {
	year := d.Year
	negative := year < 0
	if negative {
		year = -year
	}
	c.Year = &year
	c.YearNegative = &negative
	c.Month = &d.Month
	c.Day = &d.Day
	dow := d.DayOfWeek()
	c.DayOfWeek = &dow
}

// SetTime populates the time fields, including the derived 12-hour cycle
// fields.
func (c *Components) SetTime(t Time) {
	c.Hour = &t.Hour
	c.Minute = &t.Minute
	c.Second = &t.Second
	c.Nanosecond = &t.Nanosecond
	h12 := t.HourOfAmPm()
	ampm := t.AmPm()
	c.HourOfAmPm = &h12
	c.AmPm = &ampm
}

// SetOffset populates the offset fields.
func (c *Components) SetOffset(o UtcOffset) {
	seconds := o.Seconds
	negative := seconds < 0
	if negative {
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := seconds / 60 % 60
	seconds = seconds % 60
	c.OffsetNegative = &negative
	c.OffsetHours = &hours
	c.OffsetMinutes = &minutes
	c.OffsetSeconds = &seconds
}
