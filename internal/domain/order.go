package domain

import (
	"time"

	"gardenhub-backend/internal/utils"
)

// OrderStatus is the lifecycle state of an order, derived from its date
// range and cancellation flag relative to a given day. It is never
// stored; Status is the one function that computes it.
type OrderStatus string

const (
	OrderStatusUpcoming OrderStatus = "UPCOMING"
	OrderStatusActive   OrderStatus = "ACTIVE"
	OrderStatusClosed   OrderStatus = "CLOSED"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

// Order is a request to have a plot picked over an inclusive date
// range. Orders are immutable history once placed; cancellation is a
// soft flag, never a delete.
type Order struct {
	ID          int32      `json:"id"`
	PlotID      int32      `json:"plot_id"`
	RequesterID int32      `json:"requester_id"`
	StartDate   utils.Date `json:"start_date"`
	EndDate     utils.Date `json:"end_date"`
	PickAll     bool       `json:"pick_all"`
	CropIDs     []int32    `json:"crop_ids"`
	Canceled    bool       `json:"canceled"`
	CanceledOn  *time.Time `json:"canceled_on,omitempty"`
	Comment     string     `json:"comment"`
	Plot        *Plot      `json:"plot,omitempty"` // Populated when needed
	CreatedOn   time.Time  `json:"created_on"`
}

// Status derives the order's lifecycle state for the given day.
// Cancellation wins over everything; a past end date closes the order
// regardless of its start.
func (o *Order) Status(today utils.Date) OrderStatus {
	switch {
	case o.Canceled:
		return OrderStatusCanceled
	case o.EndDate.Before(today):
		return OrderStatusClosed
	case o.StartDate.After(today):
		return OrderStatusUpcoming
	default:
		return OrderStatusActive
	}
}

// IsActive reports whether today falls within the order's range and the
// order is not canceled.
func (o *Order) IsActive(today utils.Date) bool {
	return o.Status(today) == OrderStatusActive
}

// IsUpcoming reports whether the order has not yet begun.
func (o *Order) IsUpcoming(today utils.Date) bool {
	return o.Status(today) == OrderStatusUpcoming
}

// IsOpen reports whether the order still has picking days ahead of or
// around it: active or upcoming.
func (o *Order) IsOpen(today utils.Date) bool {
	s := o.Status(today)
	return s == OrderStatusActive || s == OrderStatusUpcoming
}

// IsClosed reports whether the order is finished or canceled. Closed is
// defined by the end date and the cancellation flag, not by Progress
// reaching 100.
func (o *Order) IsClosed(today utils.Date) bool {
	s := o.Status(today)
	return s == OrderStatusClosed || s == OrderStatusCanceled
}

// Progress is the percentage this order is complete, between 0 and 100,
// measured in elapsed seconds between the start-of-day instants of the
// order's dates in loc. A zero-duration order counts as fully complete
// the moment it starts.
func (o *Order) Progress(now time.Time, loc *time.Location) float64 {
	start := o.StartDate.Time(loc)
	end := o.EndDate.Time(loc)

	duration := end.Sub(start).Seconds()
	if duration <= 0 {
		if now.Before(start) {
			return 0
		}
		return 100
	}

	elapsed := now.Sub(start).Seconds()
	percentage := (elapsed / duration) * 100

	// Force bounds
	return min(100, max(0, percentage))
}

// Overlaps reports whether this order's inclusive date range overlaps
// another inclusive range.
func (o *Order) Overlaps(start, end utils.Date) bool {
	return utils.RangesOverlap(o.StartDate, o.EndDate, start, end)
}
