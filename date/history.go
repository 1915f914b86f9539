package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of float values, each associated with
// a specific date. Dates are unique and the series is always sorted, so it
// can back both dividend streams and date-indexed rate curves.
type History struct {
	days   []Date
	values []float64
}

// Len returns the number of points in the history.
func (h *History) Len() int { return len(h.days) }

// Clear removes all points from the history.
func (h *History) Clear() {
	h.days = h.days[:0]
	h.values = h.values[:0]
}

// compare orders two dates chronologically for binary searches.
func compare(d, t Date) int {
	switch {
	case d.After(t):
		return 1
	case d.Before(t):
		return -1
	default:
		return 0
	}
}

// Append adds a point to the history, keeping it sorted.
//
// An existing value at that date is overwritten.
func (h *History) Append(on Date, v float64) *History {
	i, found := slices.BinarySearchFunc(h.days, on, compare)
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// AppendAdd adds a point to the history; an existing value at that date is
// added to instead of overwritten.
func (h *History) AppendAdd(on Date, v float64) *History {
	i, found := slices.BinarySearchFunc(h.days, on, compare)
	if found {
		h.values[i] += v
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Get returns the value at 'day' and true, or zero and false.
func (h *History) Get(day Date) (float64, bool) {
	i, found := slices.BinarySearchFunc(h.days, day, compare)
	if found {
		return h.values[i], true
	}
	return 0, false
}

// ValueAsOf returns the value on a given day, or the most recent value before
// it. It returns the value and true if found, otherwise zero and false.
func (h *History) ValueAsOf(day Date) (float64, bool) {
	i, found := slices.BinarySearchFunc(h.days, day, compare)
	if found {
		return h.values[i], true
	}
	// Not found. `i` is the index where `day` would be inserted, so the last
	// entry before the target date is at `i-1`.
	if i == 0 {
		return 0, false // No date on or before the given day.
	}
	return h.values[i-1], true
}

// Values returns an iterator over all date/value pairs in chronological order.
func (h *History) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the history.
func (h *History) Clone() *History {
	return &History{days: slices.Clone(h.days), values: slices.Clone(h.values)}
}
