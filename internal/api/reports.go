package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"fintrack/internal/session"
)

// MonthlyFlow is one month of the expense-versus-income report.
type MonthlyFlow struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// TrendPoint is one point on a spending trend line.
type TrendPoint struct {
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// ReportsClient reads the reporting endpoints. Unlike dashboard reads,
// report failures propagate: a report is the whole output, not one widget
// among many.
type ReportsClient struct {
	session *session.Manager
}

func NewReportsClient(s *session.Manager) *ReportsClient {
	return &ReportsClient{session: s}
}

func (c *ReportsClient) ExpenseVsIncome(ctx context.Context, timeRange string) ([]MonthlyFlow, error) {
	var out []MonthlyFlow
	err := c.read(ctx, "/reports/expense-vs-income"+timeRangeQuery(timeRange), &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []MonthlyFlow{}
	}
	return out, nil
}

func (c *ReportsClient) CategoryBreakdown(ctx context.Context, timeRange string) ([]CategoryShare, error) {
	var out []CategoryShare
	err := c.read(ctx, "/reports/category-breakdown"+timeRangeQuery(timeRange), &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []CategoryShare{}
	}
	return out, nil
}

func (c *ReportsClient) SpendingTrends(ctx context.Context, timeRange string) ([]TrendPoint, error) {
	var out []TrendPoint
	err := c.read(ctx, "/reports/spending-trends"+timeRangeQuery(timeRange), &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []TrendPoint{}
	}
	return out, nil
}

func (c *ReportsClient) read(ctx context.Context, path string, out any) error {
	return c.session.Do(ctx, &session.Call{
		Method:       http.MethodGet,
		Path:         path,
		RequiresAuth: true,
	}, out)
}
