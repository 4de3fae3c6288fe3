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

type categoriesCmd struct {
	app *App
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list categories" }
func (*categoriesCmd) Usage() string {
	return `fintrack categories

  Lists the available transaction categories.
`
}
func (*categoriesCmd) SetFlags(*flag.FlagSet) {}

func (c *categoriesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	categories, err := c.app.Categories.List(ctx)
	if err != nil {
		return fail(err)
	}
	if len(categories) == 0 {
		fmt.Println("No categories.")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tID")
	for _, cat := range categories {
		fmt.Fprintf(w, "%s\t%s\t%s\n", cat.Name, cat.Kind, cat.ID)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type addCategoryCmd struct {
	app  *App
	name string
	kind string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "create a category" }
func (*addCategoryCmd) Usage() string {
	return `fintrack add-category -name <name> [-type expense|income]
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "category name")
	f.StringVar(&c.kind, "type", string(core.Expense), "category kind (expense or income)")
}

func (c *addCategoryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	created, err := c.app.Categories.Create(ctx, core.Category{
		Name: c.name,
		Kind: core.TransactionKind(c.kind),
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Category created: %s (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}

type removeCategoryCmd struct {
	app *App
	id  string
}

func (*removeCategoryCmd) Name() string     { return "remove-category" }
func (*removeCategoryCmd) Synopsis() string { return "delete a category" }
func (*removeCategoryCmd) Usage() string {
	return `fintrack remove-category -id <category-id>
`
}

func (c *removeCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id of the category to delete")
}

func (c *removeCategoryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	if err := c.app.Categories.Remove(ctx, c.id); err != nil {
		return fail(err)
	}
	fmt.Println("Deleted.")
	return subcommands.ExitSuccess
}
