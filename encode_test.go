package finbook

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeDecodeLedger_RoundTrip(t *testing.T) {
	l := NewLedger()
	salary := mustAdd(t, l, monthly(Income, "salary", EUR(3000), jan24))
	rent := mustAdd(t, l, monthly(Expense, "rent", EUR(1200), jan24))
	mustAdd(t, l, once(Expense, "laptop", EUR(900), feb24))
	l.SetOpeningBalance(jan24, EUR(150))
	if err := l.DepositToSavings(feb24, EUR(500)); err != nil {
		t.Fatal(err)
	}
	if err := l.WithdrawFromSavings(mar24, EUR(200)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger returned error: %v", err)
	}

	got, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger returned error: %v", err)
	}

	for _, id := range []string{salary.ID, rent.ID} {
		want, _ := l.Item(id)
		item, ok := got.Item(id)
		if !ok || !item.Equal(want) {
			t.Errorf("item %q round trip: got %+v, want %+v", id, item, want)
		}
	}
	if a, b := got.Movements(), l.Movements(); len(a) != len(b) {
		t.Errorf("movements round trip: got %d, want %d", len(a), len(b))
	}
	for _, m := range []Month{jan24, feb24, mar24, apr24} {
		a, b := got.PeriodData(m), l.PeriodData(m)
		if !a.Balance.Equal(b.Balance) || !a.Savings.Equal(b.Savings) || a.Rating != b.Rating {
			t.Errorf("%s: decoded projection %s/%s/%s, want %s/%s/%s",
				m, a.Balance, a.Savings, a.Rating, b.Balance, b.Savings, b.Rating)
		}
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"not json", "this is not json\n"},
		{"unknown command", `{"command":"frobnicate"}` + "\n"},
		{"item without id", `{"command":"item","kind":"income","name":"x","currency":"EUR","amount":1,"recurrence":"once","start":"2024-01-01"}` + "\n"},
		{"save without month", `{"command":"save","currency":"EUR","amount":10}` + "\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.input)); err == nil {
				t.Errorf("DecodeLedger(%q) succeeded, want error", tc.input)
			}
		})
	}
}

func TestDecodeLedger_SkipsEmptyLines(t *testing.T) {
	input := "\n" +
		`{"command":"item","id":"a","kind":"income","name":"salary","currency":"EUR","amount":100,"recurrence":"monthly","start":"2024-01-01"}` +
		"\n\n"
	l, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger returned error: %v", err)
	}
	if _, ok := l.Item("a"); !ok {
		t.Error("item not decoded")
	}
	if got := l.PeriodData(feb24).Balance; !got.Equal(EUR(200)) {
		t.Errorf("Balance = %s, want %s", got, EUR(200))
	}
}

func TestEncodeDecodeGoals_RoundTrip(t *testing.T) {
	b := NewGoalBook()
	stored, err := b.Add(Goal{Name: "vacation", Target: EUR(1200), TargetDate: MustParseDate("2025-06-01"), Monthly: EUR(100)})
	if err != nil {
		t.Fatal(err)
	}
	b.Advance(jan24)
	b.Advance(mar24)

	var buf bytes.Buffer
	if err := EncodeGoals(&buf, b); err != nil {
		t.Fatalf("EncodeGoals returned error: %v", err)
	}

	got, err := DecodeGoals(&buf)
	if err != nil {
		t.Fatalf("DecodeGoals returned error: %v", err)
	}
	g, ok := got.Get(stored.ID)
	if !ok {
		t.Fatalf("goal %q lost in round trip", stored.ID)
	}
	if g.Name != "vacation" || !g.Target.Equal(EUR(1200)) || !g.Current.Equal(EUR(200)) {
		t.Errorf("goal round trip mismatch: %+v", g)
	}
	if got.LastAdvanced() != mar24 {
		t.Errorf("LastAdvanced = %s, want %s", got.LastAdvanced(), mar24)
	}

	// The decoded book never re-applies an already counted month.
	if applied := got.Advance(mar24); applied != 0 {
		t.Errorf("Advance on decoded book applied %d, want 0", applied)
	}
}

func TestLoadLedger_MissingFileIsEmpty(t *testing.T) {
	l := LoadLedger(filepath.Join(t.TempDir(), "book.jsonl"))
	if _, ok := l.Span(); ok {
		t.Error("missing file did not yield an empty ledger")
	}
}

func TestLoadLedger_CorruptFileRecoversEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.jsonl")
	if err := os.WriteFile(path, []byte("{{{ not jsonl"), 0644); err != nil {
		t.Fatal(err)
	}
	l := LoadLedger(path)
	if l == nil {
		t.Fatal("LoadLedger returned nil")
	}
	if _, ok := l.Span(); ok {
		t.Error("corrupt file did not yield an empty ledger")
	}
}

func TestSaveLoadLedger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books", "book.jsonl")

	l := NewLedger()
	salary := mustAdd(t, l, monthly(Income, "salary", EUR(3000), jan24))
	if err := SaveLedger(path, l); err != nil {
		t.Fatalf("SaveLedger returned error: %v", err)
	}

	got := LoadLedger(path)
	item, ok := got.Item(salary.ID)
	if !ok || !item.Equal(salary) {
		t.Errorf("loaded item = %+v, want %+v", item, salary)
	}
}

func TestSaveLoadGoals_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goals.jsonl")

	b := NewGoalBook()
	stored, err := b.Add(Goal{Name: "vacation", Target: EUR(1200), Monthly: EUR(100)})
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveGoals(path, b); err != nil {
		t.Fatalf("SaveGoals returned error: %v", err)
	}

	got := LoadGoals(path)
	if _, ok := got.Get(stored.ID); !ok {
		t.Errorf("goal %q lost after save/load", stored.ID)
	}
}
