package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"finbook"
)

type setBalanceCmd struct {
	month  string
	amount float64
}

func (*setBalanceCmd) Name() string     { return "set-balance" }
func (*setBalanceCmd) Synopsis() string { return "override the balance carried into a month" }
func (*setBalanceCmd) Usage() string {
	return `fb set-balance -amount <amount> [-m <month>]

  Sets the opening balance of a month. The override replaces the balance
  carried over from the previous month, it is not added to it. The month and
  every later one are recomputed.

Usage Examples:
# Start 2024 from scratch, whatever happened before.
$ fb set-balance -amount 0 -m 2024-01
`
}

func (p *setBalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "m", "", "Month (YYYY-MM). Defaults to the current month.")
	f.Float64Var(&p.amount, "amount", 0, "Opening balance, in the app currency.")
}

func (p *setBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := monthFlag(p.month)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	book := loadBook()
	book.SetOpeningBalance(m, amount(p.amount))
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Opening balance of %s set to %s\n", m, amount(p.amount))
	return subcommands.ExitSuccess
}

type balanceCmd struct {
	date string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "print the balance at the end of a month" }
func (*balanceCmd) Usage() string {
	return `fb balance [-d <date>]

  Prints the cumulative balance at the end of the month containing the date
  (today by default).
`
}

func (p *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Date (YYYY-MM-DD). Defaults to today.")
}

func (p *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := finbook.Today()
	if p.date != "" {
		var err error
		if day, err = finbook.ParseDate(p.date); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}
	book := loadBook()
	fmt.Printf("Balance on %s: %s\n", day, book.BalanceOn(day))
	return subcommands.ExitSuccess
}
