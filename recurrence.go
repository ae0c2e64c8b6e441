package finbook

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"
)

// Recurrence is the rule governing how many occurrences a transaction item
// produces: its step size and whether it repeats at all.
type Recurrence int

const (
	Once Recurrence = iota
	Monthly
	Quarterly
	Yearly
)

func (r Recurrence) String() string {
	switch r {
	case Once:
		return "once"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown recurrence %d", r))
	}
}

// ParseRecurrence parses a string into a Recurrence.
func ParseRecurrence(s string) (Recurrence, error) {
	switch strings.ToLower(s) {
	case "once":
		return Once, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Once, fmt.Errorf("unknown recurrence %q", s)
	}
}

// step returns the recurrence step size in months, or 0 for Once.
func (r Recurrence) step() int {
	switch r {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case Yearly:
		return 12
	default:
		return 0
	}
}

// Occurrences returns an iterator over the months of the derived occurrences
// of an item based in month 'base' and bounded by month 'end' (inclusive).
// The base month is not yielded: it holds the original occurrence already.
// Once never yields. An end before the base yields nothing.
func (r Recurrence) Occurrences(base, end Month) iter.Seq[Month] {
	return func(yield func(Month) bool) {
		step := r.step()
		if step == 0 {
			return
		}
		for m := base.Add(step); !m.After(end); m = m.Add(step) {
			if !yield(m) {
				return
			}
		}
	}
}

func (r Recurrence) MarshalJSON() ([]byte, error) { return json.Marshal(r.String()) }

func (r *Recurrence) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseRecurrence(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
