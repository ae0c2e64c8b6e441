package finbook

import "iter"

// Range represents an inclusive range of months.
type Range struct{ From, To Month }

// NewRange creates a new month range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Month) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true if the month is included in the range (boundaries included).
func (r Range) Contains(m Month) bool { return !m.Before(r.From) && !m.After(r.To) }

// Months returns an iterator that yields each month within the range, inclusive.
func (r Range) Months() iter.Seq[Month] {
	return func(yield func(Month) bool) {
		for m := r.From; !m.After(r.To); m = m.Next() {
			if !yield(m) {
				return
			}
		}
	}
}

// Len returns the number of months in the range.
func (r Range) Len() int { return r.To.Sub(r.From) + 1 }
