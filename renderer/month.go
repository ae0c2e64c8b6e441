// Package renderer turns book data into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"finbook"
)

// MonthMarkdown renders one month's full report: its occurrences, totals,
// ending balances and rating.
func MonthMarkdown(rec finbook.PeriodRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Report for %s", rec.Month))
	doc.PlainText(fmt.Sprintf("Rating: %s", badge(rec.Rating)))

	if len(rec.Incomes) > 0 {
		doc.H2("Incomes")
		doc.Table(occurrenceTable(rec.Incomes))
	}
	if len(rec.Expenses) > 0 {
		doc.H2("Expenses")
		doc.Table(occurrenceTable(rec.Expenses))
	}

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Amount"},
		Rows: [][]string{
			{"Income", rec.Income().String()},
			{"Expenses", rec.Expense().String()},
			{"Net", rec.Net().SignedString()},
			{"Balance", rec.Balance.String()},
			{"Savings", rec.Savings.String()},
		},
	})

	return doc.String()
}

func occurrenceTable(occurrences []finbook.Occurrence) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Name", "Amount", "Origin"},
		Rows:      [][]string{},
	}
	for _, o := range occurrences {
		origin := "declared"
		if o.Derived {
			origin = "recurring"
		}
		table.Rows = append(table.Rows, []string{o.Name, o.Amount.String(), origin})
	}
	return table
}

// badge decorates a rating for terminal display.
func badge(r finbook.Rating) string {
	switch r {
	case finbook.Good:
		return "🟢 good"
	case finbook.Bad:
		return "🔴 bad"
	default:
		return "⚪ neutral"
	}
}
