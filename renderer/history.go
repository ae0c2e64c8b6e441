package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"finbook"
)

// HistoryMarkdown renders the month-by-month evolution of the book over a
// range, one row per month.
func HistoryMarkdown(r finbook.Range, records []finbook.PeriodRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History from %s to %s", r.From, r.To))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Month", "Income", "Expenses", "Net", "Balance", "Savings", "Rating"},
		Rows:   [][]string{},
	}
	for _, rec := range records {
		table.Rows = append(table.Rows, []string{
			rec.Month.String(),
			rec.Income().String(),
			rec.Expense().String(),
			rec.Net().SignedString(),
			rec.Balance.String(),
			rec.Savings.String(),
			rec.Rating.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// ItemsMarkdown renders the canonical transaction items.
func ItemsMarkdown(items []finbook.TransactionItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Declared items")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"ID", "Kind", "Name", "Amount", "Recurrence", "Start", "End"},
		Rows:   [][]string{},
	}
	for _, t := range items {
		end := ""
		if !t.EndDate.IsZero() {
			end = t.EndDate.String()
		}
		table.Rows = append(table.Rows, []string{
			t.ID,
			t.Kind.String(),
			t.Name,
			t.Amount.String(),
			t.Recurrence.String(),
			t.StartDate.String(),
			end,
		})
	}
	doc.Table(table)

	return doc.String()
}
