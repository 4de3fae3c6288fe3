package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/api"
	"fintrack/internal/core"
)

// BudgetLister provides the budgets to evaluate.
type BudgetLister interface {
	List(ctx context.Context) ([]core.Budget, error)
}

// TransactionLister provides the transactions to evaluate budgets against.
type TransactionLister interface {
	List(ctx context.Context, filter api.TransactionFilter) ([]core.Transaction, error)
}

// StatusService fetches budgets and transactions concurrently and derives
// the current budget progress.
type StatusService struct {
	budgets      BudgetLister
	transactions TransactionLister
}

func NewStatusService(budgets BudgetLister, transactions TransactionLister) *StatusService {
	return &StatusService{budgets: budgets, transactions: transactions}
}

// BudgetStatuses returns the progress of every budget. Both inputs are
// fetched in parallel; the first error cancels the other fetch.
func (s *StatusService) BudgetStatuses(ctx context.Context) ([]core.BudgetStatus, error) {
	var (
		budgets      []core.Budget
		transactions []core.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = s.budgets.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.transactions.List(gctx, api.TransactionFilter{Kind: core.Expense})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ComputeBudgetStatus(budgets, transactions), nil
}
