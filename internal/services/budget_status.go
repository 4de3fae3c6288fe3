// Package services holds the derived-figure computations that run on the
// client: budget progress, period summaries, and monthly trends. Everything
// here is pure; fetching the inputs is the caller's job.
package services

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// ComputeBudgetStatus derives the progress of each budget from the given
// transactions. A transaction counts against a budget when it is an
// expense, matches the budget's category, and falls inside the budget
// period (both bounds inclusive). Income never reduces spending.
//
// Remaining is Limit minus Spent and may go negative for an overspent
// budget. A zero-limit budget reports zero percentage used regardless of
// spending. Results appear in the same order as the input budgets.
func ComputeBudgetStatus(budgets []core.Budget, transactions []core.Transaction) []core.BudgetStatus {
	statuses := make([]core.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := decimal.Zero
		for _, tx := range transactions {
			if tx.Kind != core.Expense {
				continue
			}
			if tx.CategoryID != b.CategoryID {
				continue
			}
			if !tx.Date.Between(b.PeriodStart, b.PeriodEnd) {
				continue
			}
			spent = spent.Add(tx.Amount)
		}

		var pct float64
		if !b.Limit.IsZero() {
			pct, _ = spent.Div(b.Limit).Mul(decimal.NewFromInt(100)).Float64()
		}

		statuses = append(statuses, core.BudgetStatus{
			Budget:         b,
			Spent:          spent,
			Remaining:      b.Limit.Sub(spent),
			PercentageUsed: pct,
		})
	}
	return statuses
}
