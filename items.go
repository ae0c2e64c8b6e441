package finbook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind tags a transaction item as money coming in or going out.
type Kind int

const (
	Income Kind = iota
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		panic(fmt.Sprintf("unknown kind %d", k))
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return Income, fmt.Errorf("unknown kind %q", s)
	}
}

func (k Kind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *Kind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// TransactionItem is a recurring or one-off income/expense declaration. It is
// the canonical fact from which monthly occurrences are derived.
type TransactionItem struct {
	ID         string
	Kind       Kind
	Name       string
	Amount     Money
	Recurrence Recurrence
	StartDate  Date
	EndDate    Date // zero means "recurs indefinitely", capped at Horizon
}

// NewTransactionItem creates a transaction item without an id; the ledger
// assigns one on insertion.
func NewTransactionItem(kind Kind, name string, amount Money, recurrence Recurrence, start, end Date) TransactionItem {
	return TransactionItem{
		Kind:       kind,
		Name:       name,
		Amount:     amount,
		Recurrence: recurrence,
		StartDate:  start,
		EndDate:    end,
	}
}

// Validate checks the item's fields. It rejects the item before any mutation
// of the ledger takes place.
func (t TransactionItem) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if t.Amount.IsNegative() {
		return invalid("amount", "must not be negative, got %s", t.Amount)
	}
	if t.StartDate.IsZero() {
		return invalid("start date", "is missing")
	}
	return nil
}

// baseMonth returns the month holding the item's original occurrence.
func (t TransactionItem) baseMonth() Month { return t.StartDate.Month() }

// endMonth returns the last month the item may contribute to. A one-off item
// ignores its end date and contributes to its base month only.
func (t TransactionItem) endMonth() Month {
	if t.Recurrence == Once {
		return t.baseMonth()
	}
	if t.EndDate.IsZero() {
		return Horizon
	}
	return t.EndDate.Month()
}

func (t TransactionItem) Equal(o TransactionItem) bool {
	return t.ID == o.ID && t.Kind == o.Kind && t.Name == o.Name &&
		t.Amount.Equal(o.Amount) && t.Recurrence == o.Recurrence &&
		t.StartDate == o.StartDate && t.EndDate == o.EndDate
}

// MarshalJSON implements the json.Marshaler interface for TransactionItem.
func (t TransactionItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("kind", t.Kind)
	w.Append("name", t.Name)
	w.EmbedFrom(t.Amount)
	w.Append("recurrence", t.Recurrence)
	w.Append("start", t.StartDate)
	w.Optional("end", t.EndDate)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for TransactionItem.
// It handles the persisted structure where amount and currency are separate fields.
func (t *TransactionItem) UnmarshalJSON(data []byte) error {
	var temp struct {
		jsonAmount
		ID         string     `json:"id"`
		Kind       Kind       `json:"kind"`
		Name       string     `json:"name"`
		Recurrence Recurrence `json:"recurrence"`
		Start      Date       `json:"start"`
		End        Date       `json:"end"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = TransactionItem{
		ID:         temp.ID,
		Kind:       temp.Kind,
		Name:       temp.Name,
		Amount:     temp.Money(),
		Recurrence: temp.Recurrence,
		StartDate:  temp.Start,
		EndDate:    temp.End,
	}
	return nil
}

// Occurrence is one month's materialized instance of a transaction item.
type Occurrence struct {
	ItemID  string // id of the item this occurrence belongs to
	Month   Month
	Kind    Kind
	Name    string
	Amount  Money
	Derived bool // false for the original occurrence in the item's base month
}

// occurrenceOf materializes the item's occurrence for a given month.
func occurrenceOf(t TransactionItem, m Month) Occurrence {
	return Occurrence{
		ItemID:  t.ID,
		Month:   m,
		Kind:    t.Kind,
		Name:    t.Name,
		Amount:  t.Amount,
		Derived: m != t.baseMonth(),
	}
}

// PeriodRecord holds everything derived for one month: the occurrences active
// in it, the cumulative balances at its end, and its rating.
type PeriodRecord struct {
	Month    Month
	Incomes  []Occurrence
	Expenses []Occurrence
	Balance  Money // cumulative balance at month end
	Savings  Money // cumulative savings at month end
	Rating   Rating
}

// Income returns the total income of the month.
func (p PeriodRecord) Income() Money {
	var sum Money
	for _, o := range p.Incomes {
		sum = sum.Add(o.Amount)
	}
	return sum
}

// Expense returns the total expenses of the month.
func (p PeriodRecord) Expense() Money {
	var sum Money
	for _, o := range p.Expenses {
		sum = sum.Add(o.Amount)
	}
	return sum
}

// Net returns the month's income minus its expenses.
func (p PeriodRecord) Net() Money { return p.Income().Sub(p.Expense()) }
