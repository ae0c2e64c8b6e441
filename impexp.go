package finbook

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// This file imports the JSON dump of the original browser app's local
// storage, so an existing book can be carried over. Two dump shapes exist in
// the wild: a flat store ({"state":{"items":[...],"goals":[...]}}) and a
// nested per-month one ({"financeData":{"2024":{"01":{...}}},"goals":[...]}).
// Both are probed with jsonpath; amounts are bare numbers, so the importer
// takes the currency to stamp on them.

// derivedID matches the ids the browser app gave to generated recurring
// entries, "<base>-YYYY-MM". Those are skipped: regenerating them from the
// base entry is the ledger's job.
var derivedID = regexp.MustCompile(`-\d{4}-\d{2}$`)

// ImportBrowserState parses a browser storage dump and returns the ledger and
// goal book it describes, fully recomputed.
func ImportBrowserState(r io.Reader, currency string) (*Ledger, *GoalBook, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, nil, fmt.Errorf("cannot parse browser dump: %w", err)
	}

	l := NewLedger()
	if jval, err := jsonpath.Get("$.state.items", jobj); err == nil {
		if err := importFlatItems(l, jval, currency); err != nil {
			return nil, nil, err
		}
	} else if jval, err := jsonpath.Get("$.financeData", jobj); err == nil {
		if err := importNestedData(l, jval, currency); err != nil {
			return nil, nil, err
		}
	} else {
		return nil, nil, fmt.Errorf("unrecognized browser dump: found neither $.state.items nor $.financeData")
	}
	l.rebuild()

	b := NewGoalBook()
	jval, err := jsonpath.Get("$.state.goals", jobj)
	if err != nil {
		jval, err = jsonpath.Get("$.goals", jobj)
	}
	if err == nil {
		if err := importGoals(b, jval, currency); err != nil {
			return nil, nil, err
		}
	}
	return l, b, nil
}

// importFlatItems reads the flat store's item list. Besides income and
// expense entries, that variant recorded savings moves as pseudo items.
func importFlatItems(l *Ledger, jval any, currency string) error {
	jlist, ok := jval.([]any)
	if !ok {
		return fmt.Errorf("browser dump: $.state.items is not a list")
	}
	for i, entry := range jlist {
		jitem, ok := entry.(map[string]any)
		if !ok {
			return fmt.Errorf("browser dump: item %d is not an object", i)
		}
		start, err := parseBrowserDate(str(jitem, "startDate"))
		if err != nil {
			return fmt.Errorf("browser dump: item %d: %w", i, err)
		}
		var end Date
		if s := str(jitem, "endDate"); s != "" {
			if end, err = parseBrowserDate(s); err != nil {
				return fmt.Errorf("browser dump: item %d: %w", i, err)
			}
		}
		amount := M(num(jitem, "amount"), currency)
		m := start.Month()

		switch str(jitem, "type") {
		case "savings-deposit":
			l.movements = append(l.movements, SavingsMovement{Month: m, Amount: amount})
			continue
		case "savings-withdrawal":
			l.movements = append(l.movements, SavingsMovement{Month: m, Amount: amount.Neg()})
			continue
		}
		if err := addImported(l, jitem, amount, start, end); err != nil {
			return fmt.Errorf("browser dump: item %d: %w", i, err)
		}
	}
	return nil
}

// importNestedData reads the per-month variant: base entries only, since
// generated recurring entries carry a derived id and are skipped.
func importNestedData(l *Ledger, jval any, currency string) error {
	years, ok := jval.(map[string]any)
	if !ok {
		return fmt.Errorf("browser dump: $.financeData is not an object")
	}
	// Walk months in order so insertion order follows the calendar.
	for _, y := range sortedKeys(years) {
		months, ok := years[y].(map[string]any)
		if !ok {
			continue
		}
		for _, mo := range sortedKeys(months) {
			m, err := ParseMonth(y + "-" + mo)
			if err != nil {
				return fmt.Errorf("browser dump: bad month key %q/%q: %w", y, mo, err)
			}
			rec, ok := months[mo].(map[string]any)
			if !ok {
				continue
			}
			for _, field := range []string{"incomes", "expenses"} {
				jlist, _ := rec[field].([]any)
				for _, entry := range jlist {
					jitem, ok := entry.(map[string]any)
					if !ok || derivedID.MatchString(str(jitem, "id")) {
						continue
					}
					var end Date
					if s := str(jitem, "endDate"); s != "" {
						if end, err = parseBrowserDate(s); err != nil {
							return fmt.Errorf("browser dump: %s in %s: %w", field, m, err)
						}
					}
					amount := M(num(jitem, "amount"), currency)
					if err := addImported(l, jitem, amount, m.First(), end); err != nil {
						return fmt.Errorf("browser dump: %s in %s: %w", field, m, err)
					}
				}
			}
		}
	}
	return nil
}

// addImported appends one base entry as a canonical item, keeping its
// original id.
func addImported(l *Ledger, jitem map[string]any, amount Money, start, end Date) error {
	kind, err := ParseKind(str(jitem, "type"))
	if err != nil {
		return err
	}
	recurrence, err := ParseRecurrence(str(jitem, "recurrence"))
	if err != nil {
		return err
	}
	t := TransactionItem{
		ID:         str(jitem, "id"),
		Kind:       kind,
		Name:       str(jitem, "name"),
		Amount:     amount,
		Recurrence: recurrence,
		StartDate:  start,
		EndDate:    end,
	}
	if t.ID == "" {
		return fmt.Errorf("missing id")
	}
	if _, exists := l.items[t.ID]; exists {
		return fmt.Errorf("duplicate id %q", t.ID)
	}
	if err := t.Validate(); err != nil {
		return err
	}
	l.items[t.ID] = t
	l.order = append(l.order, t.ID)
	return nil
}

// importGoals reads the goal list of either variant. The flat variant calls
// the target "targetAmount" and has no monthly contribution.
func importGoals(b *GoalBook, jval any, currency string) error {
	jlist, ok := jval.([]any)
	if !ok {
		return fmt.Errorf("browser dump: goals is not a list")
	}
	for i, entry := range jlist {
		jgoal, ok := entry.(map[string]any)
		if !ok {
			return fmt.Errorf("browser dump: goal %d is not an object", i)
		}
		target := num(jgoal, "amount")
		if target == 0 {
			target = num(jgoal, "targetAmount")
		}
		var due Date
		if s := str(jgoal, "targetDate"); s != "" {
			var err error
			if due, err = parseBrowserDate(s); err != nil {
				return fmt.Errorf("browser dump: goal %d: %w", i, err)
			}
		}
		g := Goal{
			ID:         str(jgoal, "id"),
			Name:       str(jgoal, "name"),
			Target:     M(target, currency),
			TargetDate: due,
			Monthly:    M(num(jgoal, "monthlySavings"), currency),
			Current:    M(num(jgoal, "currentSavings"), currency),
		}
		if g.ID == "" {
			return fmt.Errorf("browser dump: goal %d: missing id", i)
		}
		if err := g.Validate(); err != nil {
			return fmt.Errorf("browser dump: goal %d: %w", i, err)
		}
		b.goals = append(b.goals, g)
	}
	return nil
}

// parseBrowserDate accepts both the date-input form "2024-01-15" and the
// toISOString form "2024-01-15T00:00:00.000Z".
func parseBrowserDate(s string) (Date, error) {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	return ParseDate(s)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// str reads a string attribute, tolerating its absence.
func str(jobj map[string]any, key string) string {
	s, _ := jobj[key].(string)
	return s
}

// num reads a number attribute, tolerating its absence.
func num(jobj map[string]any, key string) float64 {
	f, _ := jobj[key].(float64)
	return f
}
