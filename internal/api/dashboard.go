package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/session"
)

// Summary holds the headline figures shown on the dashboard.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// BudgetRow is a per-budget progress line from the dashboard.
type BudgetRow struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"amount"`
	Spent    decimal.Decimal `json:"spent"`
}

// CategoryShare is one slice of the spending breakdown.
type CategoryShare struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// DashboardClient reads the aggregate dashboard endpoints. Every read is
// tolerant: a failed call is logged and an empty value returned, so one
// broken widget never takes the whole view down.
type DashboardClient struct {
	session *session.Manager
	logger  *log.Logger
}

func NewDashboardClient(s *session.Manager, logger *log.Logger) *DashboardClient {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &DashboardClient{
		session: s,
		logger:  logger.WithComponent(log.ComponentAPI),
	}
}

func (c *DashboardClient) Summary(ctx context.Context) Summary {
	var out Summary
	if err := c.read(ctx, "/dashboard/summary", &out); err != nil {
		return Summary{}
	}
	return out
}

func (c *DashboardClient) RecentTransactions(ctx context.Context) []core.Transaction {
	var out []core.Transaction
	if err := c.read(ctx, "/dashboard/recent-transactions", &out); err != nil || out == nil {
		return []core.Transaction{}
	}
	return out
}

func (c *DashboardClient) BudgetProgress(ctx context.Context) []BudgetRow {
	var out []BudgetRow
	if err := c.read(ctx, "/dashboard/budgets", &out); err != nil || out == nil {
		return []BudgetRow{}
	}
	return out
}

func (c *DashboardClient) CategoryBreakdown(ctx context.Context) []CategoryShare {
	var out []CategoryShare
	if err := c.read(ctx, "/dashboard/category-breakdown", &out); err != nil || out == nil {
		return []CategoryShare{}
	}
	return out
}

func (c *DashboardClient) read(ctx context.Context, path string, out any) error {
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodGet,
		Path:         path,
		RequiresAuth: true,
	}, out)
	if err != nil {
		c.logger.WarnContext(ctx, "Dashboard read failed",
			log.FieldPath, path, log.FieldError, err.Error())
	}
	return err
}
