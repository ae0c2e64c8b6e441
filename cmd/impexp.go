package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"finbook"
	"finbook/renderer"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a browser storage dump of the original web app" }
func (*importCmd) Usage() string {
	return `fb import -file <dump.json>

  Reads a JSON dump of the web app's browser storage and replaces the book
  and goals files with its content. Both dump shapes are understood: the flat
  item list and the per-month data. Amounts are stamped with the app
  currency.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "file", "", "Path to the JSON dump.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(p.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening dump %q: %v\n", p.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	book, goals, err := finbook.ImportBrowserState(in, *defaultCurrency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	if status := saveGoalBook(goals); status != subcommands.ExitSuccess {
		return status
	}
	items := 0
	for range book.Items() {
		items++
	}
	fmt.Printf("Imported %d item(s) and %d goal(s) from %s\n", items, len(goals.Goals()), p.file)
	return subcommands.ExitSuccess
}

type exportCmd struct {
	output string
	format string
	from   string
	to     string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the history report to a file" }
func (*exportCmd) Usage() string {
	return `fb export -o <file> [-format <markdown|html>] [-s <month>] [-e <month>]

  Writes the month-by-month history report to a file, as markdown or as a
  standalone HTML page.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file.")
	f.StringVar(&p.format, "format", "markdown", "Output format (markdown, html).")
	f.StringVar(&p.from, "s", "", "First month (YYYY-MM). Defaults to the book's first month.")
	f.StringVar(&p.to, "e", "", "Last month (YYYY-MM). Defaults to the book's last month.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.output == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required.")
		return subcommands.ExitUsageError
	}
	book := loadBook()
	r, err := historyRange(book, p.from, p.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	report := renderer.HistoryMarkdown(r, collectHistory(book, r))

	out, err := os.Create(p.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", p.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	switch p.format {
	case "markdown", "md":
		if _, err := out.WriteString(report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
	case "html":
		// GFM for the tables the report is made of.
		md := goldmark.New(goldmark.WithExtensions(extension.GFM))
		fmt.Fprintln(out, "<!DOCTYPE html><html><body>")
		if err := md.Convert([]byte(report), out); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(out, "</body></html>")
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q.\n", p.format)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Exported history to %s\n", p.output)
	return subcommands.ExitSuccess
}
