// Package datetime defines the date, time, and UTC offset value types of
// the formatting engine along with Components, the mutable field container
// that formats render from and parsers populate.
package datetime

import (
	"fmt"
)

// Day-of-week numbering is ISO 8601: 1 = Monday .. 7 = Sunday.
const (
	Monday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Date is a complete date of the proleptic Gregorian calendar.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate validates the field ranges and returns a Date.
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, rangeError("month", month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, rangeError("day of month", day)
	}
	return Date{year, month, day}, nil
}

// IsLeapYear reports whether year is a leap year of the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	return year%100 != 0 || year%400 == 0
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month of the given
// year. month must be within 1..12.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// EpochDay returns the number of days since 1970-01-01.
func (d Date) EpochDay() int64 {
	y := int64(d.Year)
	m := int64(d.Month)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y%400 < 0 {
		era--
	}
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + int64(d.Day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// DayOfWeek returns the ISO day of week, 1 = Monday .. 7 = Sunday.
func (d Date) DayOfWeek() int {
	w := (d.EpochDay() + 3) % 7
	if w < 0 {
		w += 7
	}
	return int(w) + 1
}

func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
