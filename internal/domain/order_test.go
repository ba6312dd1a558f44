package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gardenhub-backend/internal/utils"
)

func date(y, m, d int) utils.Date {
	return utils.Date{Year: y, Month: m, Day: d}
}

func TestOrderStatusClassification(t *testing.T) {
	today := date(2024, 6, 15)
	cases := []struct {
		name     string
		order    Order
		expected OrderStatus
	}{
		{"starts tomorrow", Order{StartDate: date(2024, 6, 16), EndDate: date(2024, 6, 20)}, OrderStatusUpcoming},
		{"started today", Order{StartDate: date(2024, 6, 15), EndDate: date(2024, 6, 20)}, OrderStatusActive},
		{"ends today", Order{StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 15)}, OrderStatusActive},
		{"single day today", Order{StartDate: date(2024, 6, 15), EndDate: date(2024, 6, 15)}, OrderStatusActive},
		{"ended yesterday", Order{StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 14)}, OrderStatusClosed},
		{"canceled while active", Order{StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 20), Canceled: true}, OrderStatusCanceled},
		{"canceled before start", Order{StartDate: date(2024, 6, 20), EndDate: date(2024, 6, 25), Canceled: true}, OrderStatusCanceled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.order.Status(today))
		})
	}
}

func TestOrderStatesArePartition(t *testing.T) {
	// Every order is exactly one of upcoming, active, closed, canceled,
	// whatever its dates and flags.
	today := date(2024, 6, 15)
	orders := []Order{
		{StartDate: date(2024, 6, 16), EndDate: date(2024, 6, 20)},
		{StartDate: date(2024, 6, 14), EndDate: date(2024, 6, 16)},
		{StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 10)},
		{StartDate: date(2024, 6, 14), EndDate: date(2024, 6, 16), Canceled: true},
		{StartDate: date(2024, 6, 20), EndDate: date(2024, 6, 10)}, // inverted range
	}
	for _, o := range orders {
		open := o.IsOpen(today)
		closed := o.IsClosed(today)
		assert.NotEqual(t, open, closed, "order %+v must be open xor closed", o)
	}
}

func TestCanceledOrderIsClosedEvenMidRange(t *testing.T) {
	today := date(2024, 6, 15)
	o := Order{StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 20), Canceled: true}
	assert.True(t, o.IsClosed(today))
	assert.False(t, o.IsActive(today))
	assert.False(t, o.IsOpen(today))
}

func TestProgressBounds(t *testing.T) {
	o := Order{StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 20)}

	before := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)
	after := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0.0, o.Progress(before, time.UTC))
	assert.Equal(t, 100.0, o.Progress(after, time.UTC))
}

func TestProgressMidpoint(t *testing.T) {
	// 10 day span measured between start-of-day instants: June 15
	// midnight is exactly halfway from June 10 to June 20.
	o := Order{StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 20)}
	mid := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 50.0, o.Progress(mid, time.UTC), 0.01)
}

func TestProgressMonotonic(t *testing.T) {
	o := Order{StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 20)}
	prev := -1.0
	at := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		p := o.Progress(at, time.UTC)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
		at = at.Add(24 * time.Hour)
	}
}

func TestProgressZeroDurationOrder(t *testing.T) {
	// A single-day order spans zero seconds between its start-of-day
	// instants. It is 0% before the day begins and 100% from then on.
	o := Order{StartDate: date(2024, 6, 15), EndDate: date(2024, 6, 15)}
	assert.Equal(t, 0.0, o.Progress(time.Date(2024, 6, 14, 23, 0, 0, 0, time.UTC), time.UTC))
	assert.Equal(t, 100.0, o.Progress(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), time.UTC))
	assert.Equal(t, 100.0, o.Progress(time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC), time.UTC))
}

func TestOverlapsUsesInclusiveBounds(t *testing.T) {
	o := Order{StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 20)}
	assert.True(t, o.Overlaps(date(2024, 6, 20), date(2024, 6, 25)))
	assert.False(t, o.Overlaps(date(2024, 6, 21), date(2024, 6, 25)))
	assert.True(t, o.Overlaps(date(2024, 6, 1), date(2024, 6, 10)))
	assert.False(t, o.Overlaps(date(2024, 6, 1), date(2024, 6, 9)))
}
