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

// itemFlags are the flags shared by the add and edit commands.
type itemFlags struct {
	kind       string
	name       string
	amount     float64
	recurrence string
	start      string
	end        string
}

func (p *itemFlags) register(f *flag.FlagSet) {
	f.StringVar(&p.kind, "type", "expense", "Item type (income, expense).")
	f.StringVar(&p.name, "name", "", "Item name.")
	f.Float64Var(&p.amount, "amount", 0, "Item amount, in the app currency.")
	f.StringVar(&p.recurrence, "r", "once", "Recurrence (once, monthly, quarterly, yearly).")
	f.StringVar(&p.start, "s", "", "Start date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&p.end, "e", "", "Optional end date (YYYY-MM-DD) for recurring items.")
}

// item builds the transaction item described by the flags.
func (p *itemFlags) item() (finbook.TransactionItem, error) {
	kind, err := finbook.ParseKind(p.kind)
	if err != nil {
		return finbook.TransactionItem{}, err
	}
	recurrence, err := finbook.ParseRecurrence(p.recurrence)
	if err != nil {
		return finbook.TransactionItem{}, err
	}
	start := finbook.Today()
	if p.start != "" {
		if start, err = finbook.ParseDate(p.start); err != nil {
			return finbook.TransactionItem{}, err
		}
	}
	var end finbook.Date
	if p.end != "" {
		if end, err = finbook.ParseDate(p.end); err != nil {
			return finbook.TransactionItem{}, err
		}
	}
	return finbook.NewTransactionItem(kind, p.name, amount(p.amount), recurrence, start, end), nil
}

type addCmd struct{ itemFlags }

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "declare a new income or expense item" }
func (*addCmd) Usage() string {
	return `fb add -type <income|expense> -name <name> -amount <amount> [-r <recurrence>] [-s <start>] [-e <end>]

  Declares a new item. A recurring item generates one occurrence per period
  from its start date until its end date (or indefinitely without one), and
  all monthly balances are recomputed.

Usage Examples:
# A salary of 10000, every month from January 2024.
$ fb add -type income -name salary -amount 10000 -r monthly -s 2024-01-01

# A one time purchase.
$ fb add -name laptop -amount 3000 -s 2024-01-15
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) { p.register(f) }

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := p.item()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	book := loadBook()
	stored, err := book.AddItem(t)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added %s %q (%s) with id %s\n", stored.Kind, stored.Name, stored.Amount, stored.ID)
	return subcommands.ExitSuccess
}

type editCmd struct {
	itemFlags
	id string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace an existing item's declaration" }
func (*editCmd) Usage() string {
	return `fb edit -id <id> -type <income|expense> -name <name> -amount <amount> [-r <recurrence>] [-s <start>] [-e <end>]

  Replaces the item with this id. Its occurrences are regenerated from the
  new declaration and all affected months are recomputed. An unknown id is
  ignored.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the item to edit.")
	p.register(f)
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	t, err := p.item()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	book := loadBook()
	if err := book.EditItem(p.id, t); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Edited item %s\n", p.id)
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an item and all its occurrences" }
func (*deleteCmd) Usage() string {
	return `fb delete -id <id>

  Deletes the item with this id, together with every occurrence it generated,
  and recomputes the affected months. An unknown id is ignored.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the item to delete.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	book := loadBook()
	book.DeleteItem(p.id)
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted item %s\n", p.id)
	return subcommands.ExitSuccess
}

type itemsCmd struct{}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list the declared items" }
func (*itemsCmd) Usage() string {
	return `fb items

  Lists the canonical items of the book, with their ids.
`
}

func (*itemsCmd) SetFlags(*flag.FlagSet) {}

func (p *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()
	var items []finbook.TransactionItem
	for t := range book.Items() {
		items = append(items, t)
	}
	printMarkdown(renderer.ItemsMarkdown(items))
	return subcommands.ExitSuccess
}
