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

// goalFlags are the flags shared by the goal-add and goal-edit commands.
type goalFlags struct {
	name    string
	target  float64
	monthly float64
	due     string
}

func (p *goalFlags) register(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Goal name.")
	f.Float64Var(&p.target, "target", 0, "Target amount, in the app currency.")
	f.Float64Var(&p.monthly, "monthly", 0, "Monthly contribution, in the app currency.")
	f.StringVar(&p.due, "due", "", "Optional target date (YYYY-MM-DD).")
}

func (p *goalFlags) goal() (finbook.Goal, error) {
	var due finbook.Date
	if p.due != "" {
		var err error
		if due, err = finbook.ParseDate(p.due); err != nil {
			return finbook.Goal{}, err
		}
	}
	return finbook.Goal{
		Name:       p.name,
		Target:     amount(p.target),
		TargetDate: due,
		Monthly:    amount(p.monthly),
	}, nil
}

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list the savings goals and their progress" }
func (*goalsCmd) Usage() string {
	return `fb goals

  Lists the savings goals with their accumulated progress.
`
}

func (*goalsCmd) SetFlags(*flag.FlagSet) {}

func (p *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.GoalsMarkdown(loadGoalBook().Goals()))
	return subcommands.ExitSuccess
}

type goalAddCmd struct{ goalFlags }

func (*goalAddCmd) Name() string     { return "goal-add" }
func (*goalAddCmd) Synopsis() string { return "create a savings goal" }
func (*goalAddCmd) Usage() string {
	return `fb goal-add -name <name> -target <amount> [-monthly <amount>] [-due <date>]

  Creates a savings goal. Its progress starts at zero and grows by the
  monthly contribution at each month transition (see 'fb advance'), capped at
  the target.
`
}

func (p *goalAddCmd) SetFlags(f *flag.FlagSet) { p.register(f) }

func (p *goalAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := p.goal()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	goals := loadGoalBook()
	stored, err := goals.Add(g)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveGoalBook(goals); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added goal %q (%s) with id %s\n", stored.Name, stored.Target, stored.ID)
	return subcommands.ExitSuccess
}

type goalEditCmd struct {
	goalFlags
	id string
}

func (*goalEditCmd) Name() string     { return "goal-edit" }
func (*goalEditCmd) Synopsis() string { return "replace a goal's declaration, keeping its progress" }
func (*goalEditCmd) Usage() string {
	return `fb goal-edit -id <id> -name <name> -target <amount> [-monthly <amount>] [-due <date>]

  Replaces the goal with this id. The savings already accumulated are kept,
  clamped to the new target. An unknown id is ignored.
`
}

func (p *goalEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the goal to edit.")
	p.register(f)
}

func (p *goalEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	g, err := p.goal()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	goals := loadGoalBook()
	if err := goals.Edit(p.id, g); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveGoalBook(goals); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Edited goal %s\n", p.id)
	return subcommands.ExitSuccess
}

type goalDeleteCmd struct {
	id string
}

func (*goalDeleteCmd) Name() string     { return "goal-delete" }
func (*goalDeleteCmd) Synopsis() string { return "delete a savings goal" }
func (*goalDeleteCmd) Usage() string {
	return `fb goal-delete -id <id>

  Deletes the goal with this id. An unknown id is ignored.
`
}

func (p *goalDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the goal to delete.")
}

func (p *goalDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	goals := loadGoalBook()
	goals.Delete(p.id)
	if status := saveGoalBook(goals); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted goal %s\n", p.id)
	return subcommands.ExitSuccess
}

type advanceCmd struct {
	month string
}

func (*advanceCmd) Name() string     { return "advance" }
func (*advanceCmd) Synopsis() string { return "apply the monthly goal contributions up to a month" }
func (*advanceCmd) Usage() string {
	return `fb advance [-m <month>]

  Applies the monthly contribution of every goal once per month since the
  last advancement, up to the given month (the current one by default). The
  very first call only records the starting month. A month is never applied
  twice.
`
}

func (p *advanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "m", "", "Month (YYYY-MM). Defaults to the current month.")
}

func (p *advanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := monthFlag(p.month)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	goals := loadGoalBook()
	applied := goals.Advance(m)
	if status := saveGoalBook(goals); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Advanced goals to %s (%d month(s) applied)\n", m, applied)
	return subcommands.ExitSuccess
}
