package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"finbook"
	"finbook/renderer"
)

type monthCmd struct {
	month string
}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "show one month's incomes, expenses, balances and rating" }
func (*monthCmd) Usage() string {
	return `fb month [-m <month>]

  Shows the full report of a month: the occurrences active in it, the income
  and expense totals, the cumulative balance and savings at its end, and its
  good/neutral/bad rating.
`
}

func (p *monthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "m", "", "Month (YYYY-MM). Defaults to the current month.")
}

func (p *monthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := monthFlag(p.month)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	book := loadBook()
	printMarkdown(renderer.MonthMarkdown(book.PeriodData(m)))
	return subcommands.ExitSuccess
}

type historyCmd struct {
	from string
	to   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the month-by-month evolution of the book" }
func (*historyCmd) Usage() string {
	return `fb history [-s <month>] [-e <month>]

  Shows one row per month over a range: totals, net, cumulative balance and
  savings, and rating. The range defaults to the book's full span.
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "s", "", "First month (YYYY-MM). Defaults to the book's first month.")
	f.StringVar(&p.to, "e", "", "Last month (YYYY-MM). Defaults to the book's last month.")
}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()
	r, err := historyRange(book, p.from, p.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.HistoryMarkdown(r, collectHistory(book, r)))
	return subcommands.ExitSuccess
}

// historyRange resolves the report range from the flags, defaulting each
// bound to the book's own span.
func historyRange(book *finbook.Ledger, from, to string) (finbook.Range, error) {
	span, ok := book.Span()
	if !ok {
		span = finbook.NewRange(finbook.ThisMonth(), finbook.ThisMonth())
	}
	first, last := span.From, span.To
	var err error
	if from != "" {
		if first, err = finbook.ParseMonth(from); err != nil {
			return finbook.Range{}, err
		}
	}
	if to != "" {
		if last, err = finbook.ParseMonth(to); err != nil {
			return finbook.Range{}, err
		}
	}
	return finbook.NewRange(first, last), nil
}

// collectHistory gathers the projected record of every month in the range.
func collectHistory(book *finbook.Ledger, r finbook.Range) []finbook.PeriodRecord {
	records := make([]finbook.PeriodRecord, 0, r.Len())
	for m := range r.Months() {
		records = append(records, book.PeriodData(m))
	}
	return records
}
