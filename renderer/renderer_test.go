package renderer

import (
	"strings"
	"testing"

	"finbook"
)

func eur(v float64) finbook.Money { return finbook.M(v, "EUR") }

func TestMonthMarkdown(t *testing.T) {
	m := finbook.MustParseMonth("2024-01")
	rec := finbook.PeriodRecord{
		Month: m,
		Incomes: []finbook.Occurrence{
			{ItemID: "a", Month: m, Kind: finbook.Income, Name: "salary", Amount: eur(10000)},
		},
		Expenses: []finbook.Occurrence{
			{ItemID: "b", Month: m, Kind: finbook.Expense, Name: "laptop", Amount: eur(3000)},
		},
		Balance: eur(7000),
		Savings: eur(0),
		Rating:  finbook.Good,
	}

	got := MonthMarkdown(rec)
	for _, want := range []string{"Report for 2024-01", "salary", "laptop", "good", "Totals"} {
		if !strings.Contains(got, want) {
			t.Errorf("MonthMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestHistoryMarkdown(t *testing.T) {
	jan := finbook.MustParseMonth("2024-01")
	feb := finbook.MustParseMonth("2024-02")
	records := []finbook.PeriodRecord{
		{Month: jan, Balance: eur(7000), Rating: finbook.Good},
		{Month: feb, Balance: eur(17000), Rating: finbook.Good},
	}

	got := HistoryMarkdown(finbook.NewRange(jan, feb), records)
	for _, want := range []string{"History from 2024-01 to 2024-02", "| 2024-01 |", "| 2024-02 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("HistoryMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestGoalsMarkdown(t *testing.T) {
	goals := []finbook.Goal{
		{ID: "g1", Name: "vacation", Target: eur(1200), Monthly: eur(100), Current: eur(300)},
	}
	got := GoalsMarkdown(goals)
	for _, want := range []string{"vacation", "25%"} {
		if !strings.Contains(got, want) {
			t.Errorf("GoalsMarkdown missing %q in:\n%s", want, got)
		}
	}

	if got := GoalsMarkdown(nil); !strings.Contains(got, "No goals yet.") {
		t.Errorf("empty GoalsMarkdown = %q", got)
	}
}
