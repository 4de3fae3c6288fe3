// Package api provides the typed resource clients for the remote
// personal-finance API. Every call goes through the session manager's
// authenticated pipeline; clients never touch credential storage.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"fintrack/internal/core"
	"fintrack/internal/session"
)

type TransactionsClient struct {
	session *session.Manager
}

func NewTransactionsClient(s *session.Manager) *TransactionsClient {
	return &TransactionsClient{session: s}
}

// List returns the transactions matching filter. An empty result is an
// empty slice, never an error.
func (c *TransactionsClient) List(ctx context.Context, filter TransactionFilter) ([]core.Transaction, error) {
	var out []core.Transaction
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodGet,
		Path:         "/transactions" + filter.Encode(),
		RequiresAuth: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []core.Transaction{}
	}
	return out, nil
}

func (c *TransactionsClient) Get(ctx context.Context, id string) (core.Transaction, error) {
	var out core.Transaction
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodGet,
		Path:         "/transactions/" + url.PathEscape(id),
		RequiresAuth: true,
	}, &out)
	return out, err
}

func (c *TransactionsClient) Create(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("%w: %w", core.ErrValidationFailed, err)
	}
	var out core.Transaction
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodPost,
		Path:         "/transactions",
		Body:         tx,
		RequiresAuth: true,
	}, &out)
	return out, err
}

func (c *TransactionsClient) Update(ctx context.Context, id string, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("%w: %w", core.ErrValidationFailed, err)
	}
	var out core.Transaction
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodPut,
		Path:         "/transactions/" + url.PathEscape(id),
		Body:         tx,
		RequiresAuth: true,
	}, &out)
	return out, err
}

func (c *TransactionsClient) Remove(ctx context.Context, id string) error {
	return c.session.Do(ctx, &session.Call{
		Method:       http.MethodDelete,
		Path:         "/transactions/" + url.PathEscape(id),
		RequiresAuth: true,
	}, nil)
}

// Calendar returns the transactions of one calendar month, as consumed by
// the calendar screen.
func (c *TransactionsClient) Calendar(ctx context.Context, year, month int) ([]core.Transaction, error) {
	var out []core.Transaction
	err := c.session.Do(ctx, &session.Call{
		Method: http.MethodGet,
		Path: "/calendar/transactions?year=" + strconv.Itoa(year) +
			"&month=" + strconv.Itoa(month),
		RequiresAuth: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []core.Transaction{}
	}
	return out, nil
}
