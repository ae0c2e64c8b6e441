package finbook

import (
	"encoding/json"
	"fmt"
)

// Rating is the qualitative classification of a month's financial health.
type Rating int

const (
	// Neutral is the default rating of a month with nothing notable going on.
	Neutral Rating = iota
	// Good rates a month with positive net income ending on a positive balance.
	Good
	// Bad rates a month that lost money or ended below zero.
	Bad
)

func (r Rating) String() string {
	switch r {
	case Neutral:
		return "neutral"
	case Good:
		return "good"
	case Bad:
		return "bad"
	default:
		panic(fmt.Sprintf("unknown rating %d", r))
	}
}

// ParseRating parses a string into a Rating.
func ParseRating(s string) (Rating, error) {
	switch s {
	case "neutral":
		return Neutral, nil
	case "good":
		return Good, nil
	case "bad":
		return Bad, nil
	default:
		return Neutral, fmt.Errorf("unknown rating %q", s)
	}
}

// rate derives the rating of a month from its net income (income minus
// expenses) and its ending balance.
func rate(net, balance Money) Rating {
	switch {
	case net.IsPositive() && balance.IsPositive():
		return Good
	case net.IsNegative() || balance.IsNegative():
		return Bad
	default:
		return Neutral
	}
}

func (r Rating) MarshalJSON() ([]byte, error) { return json.Marshal(r.String()) }

func (r *Rating) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseRating(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
