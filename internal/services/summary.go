package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// BudgetSummary aggregates a set of budget statuses into portfolio-level
// numbers.
type BudgetSummary struct {
	TotalLimit     decimal.Decimal
	TotalSpent     decimal.Decimal
	TotalRemaining decimal.Decimal
	OverspentCount int
}

// SummarizeBudgets folds budget statuses into a single summary.
func SummarizeBudgets(statuses []core.BudgetStatus) BudgetSummary {
	var s BudgetSummary
	s.TotalLimit = decimal.Zero
	s.TotalSpent = decimal.Zero
	for _, st := range statuses {
		s.TotalLimit = s.TotalLimit.Add(st.Budget.Limit)
		s.TotalSpent = s.TotalSpent.Add(st.Spent)
		if st.Remaining.IsNegative() {
			s.OverspentCount++
		}
	}
	s.TotalRemaining = s.TotalLimit.Sub(s.TotalSpent)
	return s
}

// TransactionSummary is the income/expense breakdown of a transaction set.
type TransactionSummary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	NetFlow  decimal.Decimal
	Count    int
}

// SummarizeTransactions totals income and expenses. NetFlow is income
// minus expenses and may be negative.
func SummarizeTransactions(transactions []core.Transaction) TransactionSummary {
	s := TransactionSummary{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Count:    len(transactions),
	}
	for _, tx := range transactions {
		switch tx.Kind {
		case core.Income:
			s.Income = s.Income.Add(tx.Amount)
		case core.Expense:
			s.Expenses = s.Expenses.Add(tx.Amount)
		}
	}
	s.NetFlow = s.Income.Sub(s.Expenses)
	return s
}

// MonthlyTrend is one month's totals, keyed by "2006-01".
type MonthlyTrend struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// MonthlyTrends buckets transactions by calendar month, oldest first.
// Months with no transactions do not appear.
func MonthlyTrends(transactions []core.Transaction) []MonthlyTrend {
	buckets := make(map[string]*MonthlyTrend)
	for _, tx := range transactions {
		if tx.Date.IsZero() {
			continue
		}
		month := tx.Date.Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &MonthlyTrend{Month: month, Income: decimal.Zero, Expenses: decimal.Zero}
			buckets[month] = b
		}
		switch tx.Kind {
		case core.Income:
			b.Income = b.Income.Add(tx.Amount)
		case core.Expense:
			b.Expenses = b.Expenses.Add(tx.Amount)
		}
	}

	trends := make([]MonthlyTrend, 0, len(buckets))
	for _, b := range buckets {
		trends = append(trends, *b)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })
	return trends
}
