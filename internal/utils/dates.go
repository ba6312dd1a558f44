package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > 31 {
		return Date{}, fmt.Errorf("day must be between 1 and 31")
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// DateOf extracts the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// String formats the date as yyyy-mm-dd
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight of the date in loc
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d falls on an earlier calendar day than other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d falls on a later calendar day than other
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Equal reports whether two dates fall on the same calendar day
func (d Date) Equal(other Date) bool {
	return d == other
}

// AddDays returns the date n days after d (n may be negative)
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// SameCalendarDay reports whether two instants fall on the same
// calendar day when reckoned in loc.
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(a.In(loc)) == DateOf(b.In(loc))
}

// RangesOverlap reports whether two inclusive date ranges overlap.
// Ranges touch-but-don't-overlap when one starts the day after the
// other ends. http://wiki.c2.com/?TestIfDateRangesOverlap
func RangesOverlap(aStart, aEnd, bStart, bEnd Date) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// DayBounds returns midnight of t's calendar day in loc and midnight of
// the following day, a half-open [start, end) window covering the day.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
