package cli

import "github.com/google/subcommands"

// Register wires every command onto the commander, grouped the way the
// help output lists them.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&loginCmd{app: app}, "account")
	c.Register(&logoutCmd{app: app}, "account")
	c.Register(&registerCmd{app: app}, "account")
	c.Register(&whoamiCmd{app: app}, "account")
	c.Register(&profileCmd{app: app}, "account")

	c.Register(&listTransactionsCmd{app: app}, "transactions")
	c.Register(&addTransactionCmd{app: app}, "transactions")
	c.Register(&removeTransactionCmd{app: app}, "transactions")
	c.Register(&calendarCmd{app: app}, "transactions")

	c.Register(&categoriesCmd{app: app}, "categories")
	c.Register(&addCategoryCmd{app: app}, "categories")
	c.Register(&removeCategoryCmd{app: app}, "categories")

	c.Register(&budgetsCmd{app: app}, "budgets")
	c.Register(&setBudgetCmd{app: app}, "budgets")
	c.Register(&removeBudgetCmd{app: app}, "budgets")
	c.Register(&statusCmd{app: app}, "budgets")
	c.Register(&summaryCmd{app: app}, "budgets")
}
