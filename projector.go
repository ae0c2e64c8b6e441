package finbook

import "slices"

// This file holds the balance projection: a single deterministic fold over
// the materialized months in chronological order. Re-running it over the same
// canonical facts always yields the same per-month results.

// project recomputes balance, savings and rating for every materialized month
// at or after 'from', carrying the ending balances of the month preceding it.
func (l *Ledger) project(from Month) {
	ms := l.months()

	// Carry from the latest materialized month strictly before 'from'.
	var balance, savings Money
	for _, m := range ms {
		if !m.Before(from) {
			break
		}
		balance, savings = l.periods[m].Balance, l.periods[m].Savings
	}

	for _, m := range ms {
		if m.Before(from) {
			continue
		}
		rec := l.periods[m]
		if opening, ok := l.openings[m]; ok {
			// An override replaces the carry-in, it does not add to it.
			balance = opening
		}
		net := rec.Net()
		moved := l.netMovement(m)
		balance = balance.Add(net).Sub(moved)
		savings = savings.Add(moved)
		rec.Balance = balance
		rec.Savings = savings
		rec.Rating = rate(net, balance)
	}
}

// netMovement sums the savings movements recorded for a month.
func (l *Ledger) netMovement(m Month) Money {
	var sum Money
	for _, mv := range l.movements {
		if mv.Month == m {
			sum = sum.Add(mv.Amount)
		}
	}
	return sum
}

// PeriodData returns the record of a month. A month nothing ever touched has
// no occurrences and simply carries the balances of the latest materialized
// month before it.
func (l *Ledger) PeriodData(m Month) PeriodRecord {
	if rec, ok := l.periods[m]; ok {
		out := *rec
		out.Incomes = slices.Clone(rec.Incomes)
		out.Expenses = slices.Clone(rec.Expenses)
		return out
	}
	var balance, savings Money
	for _, month := range l.months() {
		if month.After(m) {
			break
		}
		balance, savings = l.periods[month].Balance, l.periods[month].Savings
	}
	return PeriodRecord{
		Month:   m,
		Balance: balance,
		Savings: savings,
		Rating:  rate(Money{}, balance),
	}
}

// BalanceOn returns the cumulative balance at the end of the month containing
// the date.
func (l *Ledger) BalanceOn(d Date) Money { return l.PeriodData(d.Month()).Balance }
