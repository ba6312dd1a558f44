package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(y, m, day int) Date {
	return Date{Year: y, Month: m, Day: day}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, d(2024, 3, 5), date)

	for _, bad := range []string{"", "2024-03", "03/05/2024", "2024-13-01", "2024-01-32", "abcd-01-02"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDateOrdering(t *testing.T) {
	assert.True(t, d(2024, 3, 5).Before(d(2024, 3, 6)))
	assert.True(t, d(2023, 12, 31).Before(d(2024, 1, 1)))
	assert.True(t, d(2024, 4, 1).After(d(2024, 3, 31)))
	assert.False(t, d(2024, 3, 5).Before(d(2024, 3, 5)))
	assert.True(t, d(2024, 3, 5).Equal(d(2024, 3, 5)))
}

func TestAddDaysCrossesMonthAndYear(t *testing.T) {
	assert.Equal(t, d(2024, 3, 1), d(2024, 2, 28).AddDays(2)) // leap year
	assert.Equal(t, d(2025, 1, 1), d(2024, 12, 31).AddDays(1))
	assert.Equal(t, d(2024, 6, 14), d(2024, 6, 15).AddDays(-1))
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     Date
		want                           bool
	}{
		{"partial overlap", d(2024, 3, 1), d(2024, 3, 10), d(2024, 3, 5), d(2024, 3, 15), true},
		{"disjoint after", d(2024, 3, 1), d(2024, 3, 10), d(2024, 3, 11), d(2024, 3, 20), false},
		{"shared boundary day", d(2024, 3, 1), d(2024, 3, 10), d(2024, 3, 10), d(2024, 3, 20), true},
		{"contained", d(2024, 3, 1), d(2024, 3, 31), d(2024, 3, 10), d(2024, 3, 12), true},
		{"identical", d(2024, 3, 1), d(2024, 3, 10), d(2024, 3, 1), d(2024, 3, 10), true},
		{"single day inside", d(2024, 3, 5), d(2024, 3, 5), d(2024, 3, 1), d(2024, 3, 10), true},
		{"disjoint before", d(2024, 3, 11), d(2024, 3, 20), d(2024, 3, 1), d(2024, 3, 10), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RangesOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			assert.Equal(t, tc.want, got)
			// Overlap is symmetric.
			assert.Equal(t, tc.want, RangesOverlap(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestDayBoundsHalfOpenWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	at := time.Date(2024, 6, 15, 23, 45, 0, 0, loc)
	start, end := DayBounds(at, loc)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, loc), end)
	assert.True(t, !at.Before(start) && at.Before(end))
}

func TestSameCalendarDayRespectsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 11 PM June 15 and 1 AM June 16 New York straddle a New York
	// midnight but both land on June 16 in UTC.
	a := time.Date(2024, 6, 15, 23, 0, 0, 0, loc)
	b := time.Date(2024, 6, 16, 1, 0, 0, 0, loc)
	assert.False(t, SameCalendarDay(a, b, loc))
	assert.True(t, SameCalendarDay(a, b, time.UTC))
}
