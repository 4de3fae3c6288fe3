package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
)

type calendarCmd struct {
	app   *App
	year  int
	month int
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "list one month of transactions" }
func (*calendarCmd) Usage() string {
	return `fintrack calendar [-year <yyyy>] [-month <1-12>]

  Lists the transactions of one calendar month. Defaults to the current
  month.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	now := time.Now()
	f.IntVar(&c.year, "year", now.Year(), "calendar year")
	f.IntVar(&c.month, "month", int(now.Month()), "calendar month (1-12)")
}

func (c *calendarCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month < 1 || c.month > 12 {
		fmt.Fprintf(os.Stderr, "Invalid -month %d: must be between 1 and 12\n", c.month)
		return subcommands.ExitUsageError
	}
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	transactions, err := c.app.Transactions.Calendar(ctx, c.year, c.month)
	if err != nil {
		return fail(err)
	}
	if len(transactions) == 0 {
		fmt.Printf("No transactions in %04d-%02d.\n", c.year, c.month)
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tDESCRIPTION")
	for _, tx := range transactions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", tx.Date, tx.Kind, tx.Amount.StringFixed(2), tx.Description)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
