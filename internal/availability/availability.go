// Package availability computes how many units of a vehicle remain free on a
// given day or across a date range, from a snapshot of its reservations. The
// functions are pure: they never read the clock or touch storage, so the same
// inputs always produce the same answer.
//
// Availability is per-day on purpose. Reservations overlap partially, so a
// range can be constrained by a single day in the middle of it; summing the
// quantities of every active reservation covering a day, then taking the
// minimum over the range, is the simplest formulation that gets maximum
// overlap right. Spans are days to weeks and per-vehicle reservation counts
// are small, so the O(days × reservations) cost does not matter.
package availability

import (
	"time"

	"github.com/ujen5173/Ridezio-sub000/internal/domain"
)

// OnDate returns the quantity still free on a single calendar day. Reservations
// that are not active (rejected, cancelled, completed) are ignored. The result
// is clamped at zero so callers never see a negative count.
func OnDate(inventory int, reservations []*domain.Reservation, day time.Time) int {
	d := domain.Day(day)
	booked := 0
	for _, r := range reservations {
		if !r.Status.Active() {
			continue
		}
		if r.Range().Contains(d) {
			booked += r.Quantity
		}
	}
	free := inventory - booked
	if free < 0 {
		return 0
	}
	return free
}

// ForRange returns the quantity that can be booked for every day of the range:
// the minimum of OnDate over all days. If any single day is constrained, the
// whole range inherits that constraint.
func ForRange(inventory int, reservations []*domain.Reservation, rng domain.DateRange) int {
	free := inventory
	for _, day := range rng.EachDay() {
		if v := OnDate(inventory, reservations, day); v < free {
			free = v
		}
	}
	if free < 0 {
		return 0
	}
	return free
}

// PerDay returns the free quantity for each day of the range, keyed by
// YYYY-MM-DD. Used by date pickers to grey out constrained days.
func PerDay(inventory int, reservations []*domain.Reservation, rng domain.DateRange) map[string]int {
	out := make(map[string]int, rng.Days())
	for _, day := range rng.EachDay() {
		out[day.Format(domain.DayFormat)] = OnDate(inventory, reservations, day)
	}
	return out
}

// IsFullyBooked reports whether no unit is free on the given day.
func IsFullyBooked(inventory int, reservations []*domain.Reservation, day time.Time) bool {
	return OnDate(inventory, reservations, day) <= 0
}
