package services

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/api"
	"fintrack/internal/core"
)

type fakeBudgetLister struct {
	budgets []core.Budget
	err     error
}

func (f *fakeBudgetLister) List(ctx context.Context) ([]core.Budget, error) {
	return f.budgets, f.err
}

type fakeTransactionLister struct {
	transactions []core.Transaction
	err          error
	gotFilter    api.TransactionFilter
}

func (f *fakeTransactionLister) List(ctx context.Context, filter api.TransactionFilter) ([]core.Transaction, error) {
	f.gotFilter = filter
	return f.transactions, f.err
}

func TestStatusServiceDerivesProgress(t *testing.T) {
	budgets := &fakeBudgetLister{budgets: []core.Budget{{
		ID:          "b1",
		CategoryID:  "food",
		Limit:       money("500"),
		PeriodStart: d(2024, 3, 1),
		PeriodEnd:   d(2024, 3, 31),
	}}}
	transactions := &fakeTransactionLister{transactions: []core.Transaction{
		expense("food", "350", d(2024, 3, 10)),
	}}

	got, err := NewStatusService(budgets, transactions).BudgetStatuses(context.Background())
	if err != nil {
		t.Fatalf("BudgetStatuses: %v", err)
	}
	if len(got) != 1 || !got[0].Spent.Equal(money("350")) {
		t.Errorf("unexpected statuses: %#v", got)
	}
	if transactions.gotFilter.Kind != core.Expense {
		t.Errorf("expected expense-only fetch, got filter %+v", transactions.gotFilter)
	}
}

func TestStatusServicePropagatesFetchError(t *testing.T) {
	wantErr := errors.New("backend down")
	budgets := &fakeBudgetLister{err: wantErr}
	transactions := &fakeTransactionLister{}

	_, err := NewStatusService(budgets, transactions).BudgetStatuses(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("want %v, got %v", wantErr, err)
	}
}
