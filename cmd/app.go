// Package cmd implements the CLI application to manage a personal finance book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"finbook"
)

// Commands lists every subcommand of the application, in display order.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&editCmd{},
	&deleteCmd{},
	&itemsCmd{},
	&setBalanceCmd{},
	&saveCmd{},
	&withdrawCmd{},
	&balanceCmd{},
	&monthCmd{},
	&historyCmd{},
	&goalsCmd{},
	&goalAddCmd{},
	&goalEditCmd{},
	&goalDeleteCmd{},
	&advanceCmd{},
	&importCmd{},
	&exportCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "book.jsonl", "Path to the book file containing items and movements (JSONL format)")
var goalsFile = flag.String("goals-file", "goals.jsonl", "Path to the goals file (JSONL format)")
var defaultCurrency = flag.String("currency", "EUR", "Currency for amounts given on the command line")

// loadBook reads the app book file. It never fails: a missing or corrupt file
// yields an empty book.
func loadBook() *finbook.Ledger { return finbook.LoadLedger(*bookFile) }

// saveBook persists the ledger back to the app book file.
func saveBook(l *finbook.Ledger) subcommands.ExitStatus {
	if err := finbook.SaveLedger(*bookFile, l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// loadGoalBook reads the app goals file, empty on missing or corrupt.
func loadGoalBook() *finbook.GoalBook { return finbook.LoadGoals(*goalsFile) }

// saveGoalBook persists the goal book back to the app goals file.
func saveGoalBook(b *finbook.GoalBook) subcommands.ExitStatus {
	if err := finbook.SaveGoals(*goalsFile, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving goals file %q: %v\n", *goalsFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// amount parses a command line amount in the app currency.
func amount(v float64) finbook.Money { return finbook.M(v, *defaultCurrency) }

// monthFlag parses a -m value, defaulting to the current month.
func monthFlag(s string) (finbook.Month, error) {
	if s == "" {
		return finbook.ThisMonth(), nil
	}
	return finbook.ParseMonth(s)
}
