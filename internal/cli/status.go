package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"fintrack/internal/services"
)

type statusCmd struct {
	app *App
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show budget progress" }
func (*statusCmd) Usage() string {
	return `fintrack status

  Shows how much of each budget has been spent. Budgets and transactions
  are fetched together and the progress is computed locally.
`
}
func (*statusCmd) SetFlags(*flag.FlagSet) {}

func (c *statusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	statuses, err := c.app.Status.BudgetStatuses(ctx)
	if err != nil {
		return fail(err)
	}
	if len(statuses) == 0 {
		fmt.Println("No budgets.")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tLIMIT\tSPENT\tREMAINING\tUSED")
	for _, st := range statuses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f%%\n",
			st.Budget.CategoryID,
			st.Budget.Limit.StringFixed(2),
			st.Spent.StringFixed(2),
			st.Remaining.StringFixed(2),
			st.PercentageUsed)
	}
	w.Flush()

	summary := services.SummarizeBudgets(statuses)
	if summary.OverspentCount > 0 {
		fmt.Printf("\n%d budget(s) overspent.\n", summary.OverspentCount)
	}
	return subcommands.ExitSuccess
}

type summaryCmd struct {
	app       *App
	timeRange string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the financial overview" }
func (*summaryCmd) Usage() string {
	return `fintrack summary [-range <range>]

  Prints the dashboard overview: totals, recent activity, budget
  progress, and the monthly expense-versus-income report.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeRange, "range", "6months", "report range (e.g. 3months, 6months, 1year)")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	overview := c.app.Dashboard.Summary(ctx)
	fmt.Printf("Income:   %s\n", overview.TotalIncome.StringFixed(2))
	fmt.Printf("Expenses: %s\n", overview.TotalExpenses.StringFixed(2))
	fmt.Printf("Balance:  %s\n", overview.Balance.StringFixed(2))

	recent := c.app.Dashboard.RecentTransactions(ctx)
	if len(recent) > 0 {
		fmt.Println("\nRecent activity:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, tx := range recent {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", tx.Date, tx.Kind, tx.Amount.StringFixed(2), tx.Description)
		}
		w.Flush()
	}

	breakdown := c.app.Dashboard.CategoryBreakdown(ctx)
	if len(breakdown) > 0 {
		fmt.Println("\nSpending by category:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, share := range breakdown {
			fmt.Fprintf(w, "  %s\t%s\t%.1f%%\n", share.Category, share.Amount.StringFixed(2), share.Percentage)
		}
		w.Flush()
	}

	flows, err := c.app.Reports.ExpenseVsIncome(ctx, c.timeRange)
	if err != nil {
		return fail(err)
	}
	if len(flows) > 0 {
		fmt.Println("\nMonthly flow:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  MONTH\tINCOME\tEXPENSES")
		for _, m := range flows {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", m.Month, m.Income.StringFixed(2), m.Expenses.StringFixed(2))
		}
		w.Flush()
	}
	return subcommands.ExitSuccess
}
