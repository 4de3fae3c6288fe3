package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"fintrack/internal/core"
	"fintrack/internal/session"
)

type BudgetsClient struct {
	session *session.Manager
}

func NewBudgetsClient(s *session.Manager) *BudgetsClient {
	return &BudgetsClient{session: s}
}

// List returns all budgets. An empty result is an empty slice, never an
// error.
func (c *BudgetsClient) List(ctx context.Context) ([]core.Budget, error) {
	var out []core.Budget
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodGet,
		Path:         "/budgets",
		RequiresAuth: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []core.Budget{}
	}
	return out, nil
}

func (c *BudgetsClient) Get(ctx context.Context, id string) (core.Budget, error) {
	var out core.Budget
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodGet,
		Path:         "/budgets/" + url.PathEscape(id),
		RequiresAuth: true,
	}, &out)
	return out, err
}

func (c *BudgetsClient) Create(ctx context.Context, budget core.Budget) (core.Budget, error) {
	if err := budget.Validate(); err != nil {
		return core.Budget{}, fmt.Errorf("%w: %w", core.ErrValidationFailed, err)
	}
	var out core.Budget
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodPost,
		Path:         "/budgets",
		Body:         budget,
		RequiresAuth: true,
	}, &out)
	return out, err
}

func (c *BudgetsClient) Update(ctx context.Context, id string, budget core.Budget) (core.Budget, error) {
	if err := budget.Validate(); err != nil {
		return core.Budget{}, fmt.Errorf("%w: %w", core.ErrValidationFailed, err)
	}
	var out core.Budget
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodPut,
		Path:         "/budgets/" + url.PathEscape(id),
		Body:         budget,
		RequiresAuth: true,
	}, &out)
	return out, err
}

func (c *BudgetsClient) Remove(ctx context.Context, id string) error {
	return c.session.Do(ctx, &session.Call{
		Method:       http.MethodDelete,
		Path:         "/budgets/" + url.PathEscape(id),
		RequiresAuth: true,
	}, nil)
}
