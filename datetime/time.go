package datetime

import (
	"fmt"
)

// Am/pm marker values as stored in Components.AmPm.
const (
	AM = 0
	PM = 1
)

// Time is a time of day with nanosecond precision.
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// NewTime validates the field ranges and returns a Time.
func NewTime(hour, minute, second, nanosecond int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, rangeError("hour", hour)
	}
	if minute < 0 || minute > 59 {
		return Time{}, rangeError("minute", minute)
	}
	if second < 0 || second > 59 {
		return Time{}, rangeError("second", second)
	}
	if nanosecond < 0 || nanosecond > 999999999 {
		return Time{}, rangeError("nanosecond", nanosecond)
	}
	return Time{hour, minute, second, nanosecond}, nil
}

// HourOfAmPm returns the hour within the 12-hour cycle, 1..12.
func (t Time) HourOfAmPm() int {
	h := t.Hour % 12
	if h == 0 {
		return 12
	}
	return h
}

// AmPm returns AM or PM for the hour.
func (t Time) AmPm() int {
	if t.Hour < 12 {
		return AM
	}
	return PM
}

func (t Time) String() string {
	if t.Nanosecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nanosecond)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

const maxOffsetSeconds = 18 * 3600

// UtcOffset is a time zone offset, in seconds east of UTC.
type UtcOffset struct {
	Seconds int
}

// NewUtcOffset validates the range (within +/-18 hours) and returns an
// offset.
func NewUtcOffset(seconds int) (UtcOffset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return UtcOffset{}, rangeError("offset seconds", seconds)
	}
	return UtcOffset{seconds}, nil
}

func (o UtcOffset) String() string {
	s := o.Seconds
	sign := "+"
	if s < 0 {
		sign = "-"
		s = -s
	}
	if s%3600 == 0 {
		return fmt.Sprintf("%s%02d:00", sign, s/3600)
	}
	if s%60 == 0 {
		return fmt.Sprintf("%s%02d:%02d", sign, s/3600, s/60%60)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, s/3600, s/60%60, s%60)
}
