package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"fintrack/internal/core"
)

type budgetsCmd struct {
	app *App
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "list budgets" }
func (*budgetsCmd) Usage() string {
	return `fintrack budgets

  Lists the configured budgets and their periods.
`
}
func (*budgetsCmd) SetFlags(*flag.FlagSet) {}

func (c *budgetsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	budgets, err := c.app.Budgets.List(ctx)
	if err != nil {
		return fail(err)
	}
	if len(budgets) == 0 {
		fmt.Println("No budgets.")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tLIMIT\tFROM\tTO\tID")
	for _, b := range budgets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			b.CategoryID, b.Limit.StringFixed(2), b.PeriodStart, b.PeriodEnd, b.ID)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type setBudgetCmd struct {
	app      *App
	category string
	limit    string
	start    string
	end      string
}

func (*setBudgetCmd) Name() string     { return "set-budget" }
func (*setBudgetCmd) Synopsis() string { return "create a budget for a category" }
func (*setBudgetCmd) Usage() string {
	return `fintrack set-budget -category <id> -limit <amount> -start <date> -end <date>

  Creates a spending budget for one category over a date range.
`
}

func (c *setBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "category id")
	f.StringVar(&c.limit, "limit", "", "spending limit for the period")
	f.StringVar(&c.start, "start", "", "first day of the period")
	f.StringVar(&c.end, "end", "", "last day of the period")
}

func (c *setBudgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	limit, err := core.ParseLimit(c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -limit %q: %v\n", c.limit, err)
		return subcommands.ExitUsageError
	}
	budget := core.Budget{CategoryID: c.category, Limit: limit}
	if budget.PeriodStart, err = core.ParseDate(c.start); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -start date %q\n", c.start)
		return subcommands.ExitUsageError
	}
	if budget.PeriodEnd, err = core.ParseDate(c.end); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -end date %q\n", c.end)
		return subcommands.ExitUsageError
	}

	created, err := c.app.Budgets.Create(ctx, budget)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Budget created for %s: %s from %s to %s (%s)\n",
		created.CategoryID, created.Limit.StringFixed(2), created.PeriodStart, created.PeriodEnd, created.ID)
	return subcommands.ExitSuccess
}

type removeBudgetCmd struct {
	app *App
	id  string
}

func (*removeBudgetCmd) Name() string     { return "remove-budget" }
func (*removeBudgetCmd) Synopsis() string { return "delete a budget" }
func (*removeBudgetCmd) Usage() string {
	return `fintrack remove-budget -id <budget-id>
`
}

func (c *removeBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id of the budget to delete")
}

func (c *removeBudgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	if err := c.app.Budgets.Remove(ctx, c.id); err != nil {
		return fail(err)
	}
	fmt.Println("Deleted.")
	return subcommands.ExitSuccess
}
