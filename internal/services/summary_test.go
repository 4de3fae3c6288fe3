package services

import (
	"testing"

	"fintrack/internal/core"
)

func TestSummarizeTransactions(t *testing.T) {
	transactions := []core.Transaction{
		income("salary", "2000", d(2024, 3, 1)),
		expense("food", "350", d(2024, 3, 5)),
		expense("rent", "900", d(2024, 3, 1)),
	}

	got := SummarizeTransactions(transactions)
	if !got.Income.Equal(money("2000")) {
		t.Errorf("Income = %s", got.Income)
	}
	if !got.Expenses.Equal(money("1250")) {
		t.Errorf("Expenses = %s", got.Expenses)
	}
	if !got.NetFlow.Equal(money("750")) {
		t.Errorf("NetFlow = %s", got.NetFlow)
	}
	if got.Count != 3 {
		t.Errorf("Count = %d", got.Count)
	}
}

func TestSummarizeTransactionsNegativeNetFlow(t *testing.T) {
	got := SummarizeTransactions([]core.Transaction{
		income("salary", "100", d(2024, 3, 1)),
		expense("rent", "900", d(2024, 3, 1)),
	})
	if !got.NetFlow.Equal(money("-800")) {
		t.Errorf("NetFlow = %s, want -800", got.NetFlow)
	}
}

func TestSummarizeBudgets(t *testing.T) {
	budgets := []core.Budget{
		{CategoryID: "food", Limit: money("500"), PeriodStart: d(2024, 3, 1), PeriodEnd: d(2024, 3, 31)},
		{CategoryID: "rent", Limit: money("900"), PeriodStart: d(2024, 3, 1), PeriodEnd: d(2024, 3, 31)},
	}
	transactions := []core.Transaction{
		expense("food", "350", d(2024, 3, 5)),
		expense("rent", "950", d(2024, 3, 1)),
	}

	got := SummarizeBudgets(ComputeBudgetStatus(budgets, transactions))
	if !got.TotalLimit.Equal(money("1400")) {
		t.Errorf("TotalLimit = %s", got.TotalLimit)
	}
	if !got.TotalSpent.Equal(money("1300")) {
		t.Errorf("TotalSpent = %s", got.TotalSpent)
	}
	if !got.TotalRemaining.Equal(money("100")) {
		t.Errorf("TotalRemaining = %s", got.TotalRemaining)
	}
	if got.OverspentCount != 1 {
		t.Errorf("OverspentCount = %d, want 1", got.OverspentCount)
	}
}

func TestMonthlyTrendsBucketsAndSorts(t *testing.T) {
	transactions := []core.Transaction{
		expense("food", "50", d(2024, 4, 2)),
		income("salary", "2000", d(2024, 3, 1)),
		expense("food", "30", d(2024, 3, 20)),
		expense("rent", "900", d(2024, 4, 1)),
	}

	got := MonthlyTrends(transactions)
	if len(got) != 2 {
		t.Fatalf("want 2 months, got %d", len(got))
	}
	if got[0].Month != "2024-03" || got[1].Month != "2024-04" {
		t.Errorf("months out of order: %s, %s", got[0].Month, got[1].Month)
	}
	if !got[0].Income.Equal(money("2000")) || !got[0].Expenses.Equal(money("30")) {
		t.Errorf("march = %+v", got[0])
	}
	if !got[1].Expenses.Equal(money("950")) {
		t.Errorf("april expenses = %s", got[1].Expenses)
	}
}
