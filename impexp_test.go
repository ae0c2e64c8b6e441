package finbook

import (
	"strings"
	"testing"
)

const flatDump = `{
  "state": {
    "items": [
      {"id": "1700000000001", "type": "income", "name": "salary", "amount": 3000, "recurrence": "monthly", "startDate": "2024-01-01"},
      {"id": "1700000000002", "type": "expense", "name": "rent", "amount": 1200, "recurrence": "monthly", "startDate": "2024-01-05", "endDate": "2024-12-31"},
      {"id": "1700000000003", "type": "savings-deposit", "name": "emergency fund", "amount": 500, "recurrence": "once", "startDate": "2024-02-10"},
      {"id": "1700000000004", "type": "savings-withdrawal", "name": "car repair", "amount": 200, "recurrence": "once", "startDate": "2024-03-15"}
    ],
    "goals": [
      {"id": "g1", "name": "vacation", "targetAmount": 1200, "targetDate": "2025-06-01T00:00:00.000Z"}
    ]
  },
  "version": 0
}`

const nestedDump = `{
  "financeData": {
    "2024": {
      "01": {
        "incomes": [
          {"id": "10", "type": "income", "name": "salary", "amount": 3000, "recurrence": "monthly"}
        ],
        "expenses": [
          {"id": "11", "type": "expense", "name": "laptop", "amount": 900, "recurrence": "once"}
        ],
        "balance": 2100, "savings": 0, "rating": "good"
      },
      "02": {
        "incomes": [
          {"id": "10-2024-02", "type": "income", "name": "salary", "amount": 3000, "recurrence": "monthly"}
        ],
        "expenses": [],
        "balance": 5100, "savings": 0, "rating": "good"
      }
    }
  },
  "goals": [
    {"id": "g1", "name": "vacation", "amount": 1200, "targetDate": "2025-06-01", "monthlySavings": 100, "currentSavings": 300}
  ]
}`

func TestImportBrowserState_FlatDump(t *testing.T) {
	l, b, err := ImportBrowserState(strings.NewReader(flatDump), "EUR")
	if err != nil {
		t.Fatalf("ImportBrowserState returned error: %v", err)
	}

	salary, ok := l.Item("1700000000001")
	if !ok {
		t.Fatal("salary item not imported")
	}
	if salary.Kind != Income || salary.Recurrence != Monthly || !salary.Amount.Equal(EUR(3000)) {
		t.Errorf("salary imported as %+v", salary)
	}
	rent, ok := l.Item("1700000000002")
	if !ok || rent.EndDate.IsZero() {
		t.Errorf("rent end date lost: %+v", rent)
	}

	// The savings pseudo items became movements, not transaction items.
	if _, ok := l.Item("1700000000003"); ok {
		t.Error("savings-deposit imported as a transaction item")
	}
	if got := len(l.Movements()); got != 2 {
		t.Fatalf("Movements() has %d entries, want 2", got)
	}
	mar := l.PeriodData(mar24)
	if !mar.Savings.Equal(EUR(300)) {
		t.Errorf("Savings in %s = %s, want %s", mar24, mar.Savings, EUR(300))
	}

	goals := b.Goals()
	if len(goals) != 1 {
		t.Fatalf("imported %d goals, want 1", len(goals))
	}
	if !goals[0].Target.Equal(EUR(1200)) || goals[0].TargetDate != MustParseDate("2025-06-01") {
		t.Errorf("goal imported as %+v", goals[0])
	}
}

func TestImportBrowserState_NestedDump(t *testing.T) {
	l, b, err := ImportBrowserState(strings.NewReader(nestedDump), "EUR")
	if err != nil {
		t.Fatalf("ImportBrowserState returned error: %v", err)
	}

	// The derived February copy of the salary is skipped, the base entry
	// regenerates it.
	if _, ok := l.Item("10-2024-02"); ok {
		t.Error("derived entry imported as its own item")
	}
	salary, ok := l.Item("10")
	if !ok {
		t.Fatal("base salary entry not imported")
	}
	if salary.StartDate.Month() != jan24 {
		t.Errorf("salary starts in %s, want %s", salary.StartDate.Month(), jan24)
	}

	if got := l.PeriodData(jan24).Balance; !got.Equal(EUR(2100)) {
		t.Errorf("Balance in %s = %s, want %s", jan24, got, EUR(2100))
	}
	if got := l.PeriodData(feb24).Balance; !got.Equal(EUR(5100)) {
		t.Errorf("Balance in %s = %s, want %s", feb24, got, EUR(5100))
	}

	goals := b.Goals()
	if len(goals) != 1 {
		t.Fatalf("imported %d goals, want 1", len(goals))
	}
	if !goals[0].Monthly.Equal(EUR(100)) || !goals[0].Current.Equal(EUR(300)) {
		t.Errorf("goal imported as %+v", goals[0])
	}
}

func TestImportBrowserState_Unrecognized(t *testing.T) {
	if _, _, err := ImportBrowserState(strings.NewReader(`{"something":"else"}`), "EUR"); err == nil {
		t.Error("unrecognized dump did not return an error")
	}
}
