package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"finbook"
)

// GoalsMarkdown renders the savings goals with their progress.
func GoalsMarkdown(goals []finbook.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Savings goals")
	if len(goals) == 0 {
		doc.PlainText("No goals yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"ID", "Name", "Target", "Monthly", "Saved", "Progress", "Due"},
		Rows:   [][]string{},
	}
	for _, g := range goals {
		due := ""
		if !g.TargetDate.IsZero() {
			due = g.TargetDate.String()
		}
		table.Rows = append(table.Rows, []string{
			g.ID,
			g.Name,
			g.Target.String(),
			g.Monthly.String(),
			g.Current.String(),
			progress(g),
			due,
		})
	}
	doc.Table(table)

	return doc.String()
}

// progress formats the saved/target ratio as a percentage.
func progress(g finbook.Goal) string {
	if !g.Target.IsPositive() {
		return "-"
	}
	return fmt.Sprintf("%d%%", g.Current.PercentOf(g.Target))
}
