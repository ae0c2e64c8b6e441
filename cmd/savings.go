package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"finbook"
)

type saveCmd struct {
	month  string
	amount float64
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "move money from the month balance into savings" }
func (*saveCmd) Usage() string {
	return `fb save -amount <amount> [-m <month>]

  Records a savings deposit in a month: the amount leaves the month balance
  and joins the cumulative savings.
`
}

func (p *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "m", "", "Month (YYYY-MM). Defaults to the current month.")
	f.Float64Var(&p.amount, "amount", 0, "Amount to save, in the app currency.")
}

func (p *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := monthFlag(p.month)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	book := loadBook()
	if err := book.DepositToSavings(m, amount(p.amount)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Saved %s in %s\n", amount(p.amount), m)
	return subcommands.ExitSuccess
}

type withdrawCmd struct {
	month  string
	amount float64
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "move money from savings back to the month balance" }
func (*withdrawCmd) Usage() string {
	return `fb withdraw -amount <amount> [-m <month>]

  Records a savings withdrawal in a month. A withdrawal that would drive the
  savings below zero, in that month or any later one, is rejected and the
  book is left unchanged.
`
}

func (p *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "m", "", "Month (YYYY-MM). Defaults to the current month.")
	f.Float64Var(&p.amount, "amount", 0, "Amount to withdraw, in the app currency.")
}

func (p *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := monthFlag(p.month)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	book := loadBook()
	if err := book.WithdrawFromSavings(m, amount(p.amount)); err != nil {
		if errors.Is(err, finbook.ErrInsufficientSavings) {
			fmt.Fprintf(os.Stderr, "Warning: not enough savings in %s to withdraw %s, nothing done.\n", m, amount(p.amount))
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return subcommands.ExitFailure
	}
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Withdrew %s in %s\n", amount(p.amount), m)
	return subcommands.ExitSuccess
}
