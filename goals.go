package finbook

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Goal is a savings target accruing a fixed monthly contribution until the
// target amount is reached.
type Goal struct {
	ID         string
	Name       string
	Target     Money
	TargetDate Date
	Monthly    Money // fixed contribution applied once per month transition
	Current    Money // accrued savings, never exceeds Target
}

// Validate checks the goal's fields.
func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if !g.Target.IsPositive() {
		return invalid("target", "must be positive, got %s", g.Target)
	}
	if g.Monthly.IsNegative() {
		return invalid("monthly savings", "must not be negative, got %s", g.Monthly)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Goal.
func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("name", g.Name)
	w.Append("target", g.Target)
	w.Optional("due", g.TargetDate)
	w.Append("monthly", g.Monthly)
	w.Append("current", g.Current)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Goal.
func (g *Goal) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Target  Money  `json:"target"`
		Due     Date   `json:"due"`
		Monthly Money  `json:"monthly"`
		Current Money  `json:"current"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*g = Goal{
		ID:         temp.ID,
		Name:       temp.Name,
		Target:     temp.Target,
		TargetDate: temp.Due,
		Monthly:    temp.Monthly,
		Current:    temp.Current,
	}
	return nil
}

// GoalBook owns the savings goals and advances their progress, one increment
// per calendar month crossed, never twice for the same month.
type GoalBook struct {
	goals    []Goal
	advanced Month // last month whose contribution has been applied
}

// NewGoalBook creates an empty goal book.
func NewGoalBook() *GoalBook {
	return &GoalBook{}
}

// Add validates the goal, assigns a fresh id if absent and stores it with its
// accrued savings reset to zero. It returns the stored goal.
func (b *GoalBook) Add(g Goal) (Goal, error) {
	if err := g.Validate(); err != nil {
		return g, err
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	g.Current = M(0, g.Target.Currency())
	b.goals = append(b.goals, g)
	return g, nil
}

// Edit replaces the goal with this id, preserving its accrued savings.
// An unknown id is a silent no-op.
func (b *GoalBook) Edit(id string, updated Goal) error {
	i := slices.IndexFunc(b.goals, func(g Goal) bool { return g.ID == id })
	if i < 0 {
		return nil
	}
	updated.ID = id
	if err := updated.Validate(); err != nil {
		return err
	}
	updated.Current = Min(b.goals[i].Current, updated.Target)
	b.goals[i] = updated
	return nil
}

// Delete removes the goal with this id. An unknown id is a silent no-op.
func (b *GoalBook) Delete(id string) {
	b.goals = slices.DeleteFunc(b.goals, func(g Goal) bool { return g.ID == id })
}

// Get returns the goal with this id.
func (b *GoalBook) Get(id string) (Goal, bool) {
	i := slices.IndexFunc(b.goals, func(g Goal) bool { return g.ID == id })
	if i < 0 {
		return Goal{}, false
	}
	return b.goals[i], true
}

// Goals returns a copy of the goals in insertion order.
func (b *GoalBook) Goals() []Goal {
	return slices.Clone(b.goals)
}

// LastAdvanced returns the last month whose contribution has been applied.
// It is zero until the first call to Advance.
func (b *GoalBook) LastAdvanced() Month { return b.advanced }

// Advance applies the monthly contribution once per month between the last
// advancement and 'to', in sequence: jumping forward N months replays N
// individual increments, each capped at the goal's target. The very first
// call only records the baseline month. It returns the number of months
// applied.
func (b *GoalBook) Advance(to Month) int {
	if b.advanced.IsZero() {
		b.advanced = to
		return 0
	}
	applied := 0
	for m := b.advanced.Next(); !m.After(to); m = m.Next() {
		for i := range b.goals {
			g := &b.goals[i]
			g.Current = Min(g.Target, g.Current.Add(g.Monthly))
		}
		b.advanced = m
		applied++
	}
	return applied
}
