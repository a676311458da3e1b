// Package date provides a calendar date value type with leap-aware
// arithmetic. Dates are immutable values comparable with ==.
package date

import (
	"fmt"
	"time"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

// Date is a day in the proleptic Gregorian calendar between year 1 and 9999.
// The zero value is not a valid date; construct one with New, Parse or Today.
type Date struct {
	year  int
	month int
	day   int
}

// InvalidDateError reports date components that do not form a valid
// calendar date.
type InvalidDateError struct {
	Year  int
	Month int
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: year %d, month %d, day %d", e.Year, e.Month, e.Day)
}

// Today returns the current date according to the system clock.
func Today() Date {
	t := time.Now()
	return Date{year: t.Year(), month: int(t.Month()), day: t.Day()}
}

// New returns the date with the given components. It returns an
// InvalidDateError if the components do not form a valid calendar date,
// accounting for leap years.
func New(year, month, day int) (Date, error) {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 || day > DaysInMonth(year, month) {
		return Date{}, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	return Date{year: year, month: month, day: day}, nil
}

// IsLeapYear reports whether the year has a 29th of February. A year is a
// leap year if it is divisible by 4, and not by 100 unless also by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInMonth returns the number of days in the given month of the given
// year.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 30
	}
}

// Year returns the year component.
func (d Date) Year() int { return d.year }

// Month returns the month component, from 1 to 12.
func (d Date) Month() int { return d.month }

// Day returns the day component.
func (d Date) Day() int { return d.day }

// MonthName returns the English name of the month.
func (d Date) MonthName() string {
	return monthNames[d.month-1]
}

// String renders the date as YYYY-MM-DD. The rendering round-trips through
// Parse.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Long renders the date for display, such as "15 May 1990".
func (d Date) Long() string {
	return fmt.Sprintf("%d %s %d", d.day, d.MonthName(), d.year)
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

// AddDays returns the date n days after d, or before it when n is negative,
// rolling over month and year boundaries. Results saturate at 0001-01-01 and
// 9999-12-31 so the result is always a valid date.
func (d Date) AddDays(n int) Date {
	first := Date{year: 1, month: 1, day: 1}
	last := Date{year: 9999, month: 12, day: 31}
	for n > 0 {
		if d == last {
			return d
		}
		d = d.nextDay()
		n--
	}
	for n < 0 {
		if d == first {
			return d
		}
		d = d.prevDay()
		n++
	}
	return d
}

func (d Date) nextDay() Date {
	if d.day < DaysInMonth(d.year, d.month) {
		d.day++
		return d
	}
	d.day = 1
	if d.month == 12 {
		d.month = 1
		d.year++
	} else {
		d.month++
	}
	return d
}

func (d Date) prevDay() Date {
	if d.day > 1 {
		d.day--
		return d
	}
	if d.month == 1 {
		d.month = 12
		d.year--
	} else {
		d.month--
	}
	d.day = DaysInMonth(d.year, d.month)
	return d
}

// YearsSince returns the number of full years between d and o. The order of
// the two dates does not matter.
func (d Date) YearsSince(o Date) int {
	a, b := d, o
	if b.Before(a) {
		a, b = b, a
	}
	years := b.year - a.year
	if b.month < a.month || (b.month == a.month && b.day < a.day) {
		years--
	}
	return years
}
