package finbook

import (
	"iter"
	"maps"
	"slices"

	"github.com/google/uuid"
)

// SavingsMovement is a dated transfer between the month balance and the
// savings balance. A positive amount moves money into savings.
type SavingsMovement struct {
	Month  Month
	Amount Money
}

// Ledger owns the canonical set of transaction items, savings movements and
// opening-balance overrides, and the per-month records derived from them.
//
// Every mutating call leaves the ledger fully propagated: a read immediately
// after a write observes balances recomputed for every affected month.
type Ledger struct {
	items     map[string]TransactionItem
	order     []string // item ids in insertion order
	movements []SavingsMovement
	openings  map[Month]Money

	// derived state, rebuilt by materialize/project
	periods map[Month]*PeriodRecord
	derived map[string][]Month // item id -> months of its derived occurrences
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		items:    make(map[string]TransactionItem),
		openings: make(map[Month]Money),
		periods:  make(map[Month]*PeriodRecord),
		derived:  make(map[string][]Month),
	}
}

// Item returns the canonical item with this id.
func (l *Ledger) Item(id string) (TransactionItem, bool) {
	t, ok := l.items[id]
	return t, ok
}

// Items returns an iterator over the canonical items in insertion order.
func (l *Ledger) Items() iter.Seq[TransactionItem] {
	return func(yield func(TransactionItem) bool) {
		for _, id := range l.order {
			if !yield(l.items[id]) {
				return
			}
		}
	}
}

// AddItem validates the item, assigns a fresh id if absent, materializes its
// occurrences and recomputes balances from its first month forward. It
// returns the stored item.
func (l *Ledger) AddItem(t TransactionItem) (TransactionItem, error) {
	if err := t.Validate(); err != nil {
		return t, err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if _, exists := l.items[t.ID]; exists {
		return t, invalid("id", "%q is already in the ledger", t.ID)
	}
	l.items[t.ID] = t
	l.order = append(l.order, t.ID)
	l.materialize(t)
	l.project(t.baseMonth())
	return t, nil
}

// EditItem replaces the item with this id, regenerates its occurrences from
// the new rule and recomputes balances from the earliest affected month.
// An unknown id is a silent no-op.
func (l *Ledger) EditItem(id string, updated TransactionItem) error {
	existing, ok := l.items[id]
	if !ok {
		return nil
	}
	updated.ID = id
	if err := updated.Validate(); err != nil {
		return err
	}
	l.dematerialize(existing)
	l.items[id] = updated
	l.materialize(updated)

	from := existing.baseMonth()
	if updated.baseMonth().Before(from) {
		from = updated.baseMonth()
	}
	l.project(from)
	return nil
}

// DeleteItem removes the item, its base occurrence and every derived
// occurrence, and recomputes balances from the deletion point forward.
// An unknown id is a silent no-op.
func (l *Ledger) DeleteItem(id string) {
	t, ok := l.items[id]
	if !ok {
		return
	}
	l.dematerialize(t)
	delete(l.items, id)
	l.order = slices.DeleteFunc(l.order, func(s string) bool { return s == id })
	l.project(t.baseMonth())
}

// SetOpeningBalance overrides (not additively) the balance carried into the
// given month and recomputes that month and every later one.
func (l *Ledger) SetOpeningBalance(m Month, amount Money) {
	l.openings[m] = amount
	l.ensure(m)
	l.project(m)
}

// DepositToSavings moves money from the month balance into savings.
func (l *Ledger) DepositToSavings(m Month, amount Money) error {
	if !amount.IsPositive() {
		return invalid("amount", "must be positive, got %s", amount)
	}
	l.movements = append(l.movements, SavingsMovement{Month: m, Amount: amount})
	l.ensure(m)
	l.project(m)
	return nil
}

// WithdrawFromSavings moves money from savings back to the month balance.
// A withdrawal that would drive the savings balance below zero at any month
// is rejected with ErrInsufficientSavings, leaving the ledger unchanged.
func (l *Ledger) WithdrawFromSavings(m Month, amount Money) error {
	if !amount.IsPositive() {
		return invalid("amount", "must be positive, got %s", amount)
	}
	l.movements = append(l.movements, SavingsMovement{Month: m, Amount: amount.Neg()})
	l.ensure(m)
	l.project(m)

	for _, month := range l.months() {
		if month.Before(m) {
			continue
		}
		if l.periods[month].Savings.IsNegative() {
			// Revert: drop the movement appended above and re-project.
			l.movements = l.movements[:len(l.movements)-1]
			l.project(m)
			return ErrInsufficientSavings
		}
	}
	return nil
}

// Movements returns a copy of the recorded savings movements.
func (l *Ledger) Movements() []SavingsMovement {
	return slices.Clone(l.movements)
}

// OpeningBalances returns the opening-balance overrides sorted by month.
func (l *Ledger) OpeningBalances() iter.Seq2[Month, Money] {
	return func(yield func(Month, Money) bool) {
		ms := slices.Collect(maps.Keys(l.openings))
		slices.SortFunc(ms, Month.Compare)
		for _, m := range ms {
			if !yield(m, l.openings[m]) {
				return
			}
		}
	}
}

// Span returns the range from the earliest to the latest materialized month.
// ok is false for an empty ledger.
func (l *Ledger) Span() (r Range, ok bool) {
	ms := l.months()
	if len(ms) == 0 {
		return Range{}, false
	}
	return NewRange(ms[0], ms[len(ms)-1]), true
}

// ensure creates the month's record if it does not exist yet. Records are
// created lazily and never deleted.
func (l *Ledger) ensure(m Month) *PeriodRecord {
	rec, ok := l.periods[m]
	if !ok {
		rec = &PeriodRecord{Month: m}
		l.periods[m] = rec
	}
	return rec
}

// materialize inserts the item's base occurrence and generates one derived
// occurrence per recurrence step up to the item's end bound, recording the
// derived months in the parent index.
func (l *Ledger) materialize(t TransactionItem) {
	l.insertOccurrence(l.ensure(t.baseMonth()), occurrenceOf(t, t.baseMonth()))
	for m := range t.Recurrence.Occurrences(t.baseMonth(), t.endMonth()) {
		l.insertOccurrence(l.ensure(m), occurrenceOf(t, m))
		l.derived[t.ID] = append(l.derived[t.ID], m)
	}
}

// dematerialize removes the item's base occurrence and, through the parent
// index, exactly the derived occurrences belonging to it.
func (l *Ledger) dematerialize(t TransactionItem) {
	l.removeOccurrence(t.baseMonth(), t.ID)
	for _, m := range l.derived[t.ID] {
		l.removeOccurrence(m, t.ID)
	}
	delete(l.derived, t.ID)
}

func (l *Ledger) insertOccurrence(rec *PeriodRecord, o Occurrence) {
	switch o.Kind {
	case Income:
		rec.Incomes = append(rec.Incomes, o)
	case Expense:
		rec.Expenses = append(rec.Expenses, o)
	}
}

func (l *Ledger) removeOccurrence(m Month, itemID string) {
	rec, ok := l.periods[m]
	if !ok {
		return
	}
	owned := func(o Occurrence) bool { return o.ItemID == itemID }
	rec.Incomes = slices.DeleteFunc(rec.Incomes, owned)
	rec.Expenses = slices.DeleteFunc(rec.Expenses, owned)
}

// months returns the materialized months in chronological order.
func (l *Ledger) months() []Month {
	ms := slices.Collect(maps.Keys(l.periods))
	slices.SortFunc(ms, Month.Compare)
	return ms
}

// rebuild regenerates all derived state from the canonical facts. It is used
// after decoding a persisted ledger.
func (l *Ledger) rebuild() {
	l.periods = make(map[Month]*PeriodRecord)
	l.derived = make(map[string][]Month)
	for _, id := range l.order {
		l.materialize(l.items[id])
	}
	for _, mv := range l.movements {
		l.ensure(mv.Month)
	}
	for m := range l.openings {
		l.ensure(m)
	}
	ms := l.months()
	if len(ms) > 0 {
		l.project(ms[0])
	}
}
