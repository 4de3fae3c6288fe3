package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"fintrack/internal/api"
	"fintrack/internal/core"
)

// requireSession restores the stored session and reports a friendly error
// when none exists, so commands fail before the first network call.
func requireSession(ctx context.Context, app *App) subcommands.ExitStatus {
	_, ok, err := app.Session.RestoreSession(ctx)
	if err != nil {
		return fail(err)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Not signed in. Run 'fintrack login' first.")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type listTransactionsCmd struct {
	app      *App
	category string
	kind     string
	start    string
	end      string
	limit    int
}

func (*listTransactionsCmd) Name() string     { return "transactions" }
func (*listTransactionsCmd) Synopsis() string { return "list transactions" }
func (*listTransactionsCmd) Usage() string {
	return `fintrack transactions [-category <id>] [-type expense|income] [-start <date>] [-end <date>] [-limit <n>]

  Lists transactions, newest first, optionally narrowed by category,
  kind, or date range. Dates use the 2006-01-02 format.
`
}

func (c *listTransactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "filter by category id")
	f.StringVar(&c.kind, "type", "", "filter by kind (expense or income)")
	f.StringVar(&c.start, "start", "", "earliest date to include")
	f.StringVar(&c.end, "end", "", "latest date to include")
	f.IntVar(&c.limit, "limit", 0, "maximum number of results")
}

func (c *listTransactionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	filter := api.TransactionFilter{
		Category: c.category,
		Kind:     core.TransactionKind(c.kind),
		Limit:    c.limit,
	}
	if c.kind != "" {
		if err := filter.Kind.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -type %q: use expense or income\n", c.kind)
			return subcommands.ExitUsageError
		}
	}
	var err error
	if c.start != "" {
		if filter.StartDate, err = core.ParseDate(c.start); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -start date %q\n", c.start)
			return subcommands.ExitUsageError
		}
	}
	if c.end != "" {
		if filter.EndDate, err = core.ParseDate(c.end); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -end date %q\n", c.end)
			return subcommands.ExitUsageError
		}
	}

	transactions, err := c.app.Transactions.List(ctx, filter)
	if err != nil {
		return fail(err)
	}
	if len(transactions) == 0 {
		fmt.Println("No transactions.")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tCATEGORY\tDESCRIPTION\tID")
	for _, tx := range transactions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.Date, tx.Kind, tx.Amount.StringFixed(2), tx.CategoryID, tx.Description, tx.ID)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type addTransactionCmd struct {
	app         *App
	amount      string
	category    string
	description string
	kind        string
	date        string
}

func (*addTransactionCmd) Name() string     { return "add" }
func (*addTransactionCmd) Synopsis() string { return "record a new transaction" }
func (*addTransactionCmd) Usage() string {
	return `fintrack add -amount <value> -category <id> -description <text> [-type expense|income] [-date <date>]

  Records a transaction. The amount accepts a comma or dot decimal
  separator and is rounded to two decimal places. The date defaults to
  today.
`
}

func (c *addTransactionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "transaction amount")
	f.StringVar(&c.category, "category", "", "category id")
	f.StringVar(&c.description, "description", "", "what the money was for")
	f.StringVar(&c.kind, "type", string(core.Expense), "transaction kind (expense or income)")
	f.StringVar(&c.date, "date", "", "transaction date (defaults to today)")
}

func (c *addTransactionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	amount, err := core.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	tx := core.Transaction{
		CategoryID:  c.category,
		Description: c.description,
		Amount:      amount,
		Kind:        core.TransactionKind(c.kind),
	}
	if c.date == "" {
		tx.Date = core.Today()
	} else if tx.Date, err = core.ParseDate(c.date); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -date %q\n", c.date)
		return subcommands.ExitUsageError
	}

	created, err := c.app.Transactions.Create(ctx, tx)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s %s on %s (%s)\n", created.Kind, created.Amount.StringFixed(2), created.Date, created.ID)
	return subcommands.ExitSuccess
}

type removeTransactionCmd struct {
	app *App
	id  string
}

func (*removeTransactionCmd) Name() string     { return "remove" }
func (*removeTransactionCmd) Synopsis() string { return "delete a transaction" }
func (*removeTransactionCmd) Usage() string {
	return `fintrack remove -id <transaction-id>
`
}

func (c *removeTransactionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id of the transaction to delete")
}

func (c *removeTransactionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	if err := c.app.Transactions.Remove(ctx, c.id); err != nil {
		return fail(err)
	}
	fmt.Println("Deleted.")
	return subcommands.ExitSuccess
}
