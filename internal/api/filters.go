package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// TransactionFilter narrows a transaction listing. Zero-valued fields are
// omitted from the query string entirely; a filter never produces empty
// parameters like "category=".
type TransactionFilter struct {
	Category  string
	Kind      core.TransactionKind
	StartDate core.Date
	EndDate   core.Date
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
	Limit     int
}

// Encode renders the filter as a query string (including the leading "?"),
// or an empty string when no field is set. Keys always appear in the same
// order so any two call sites build identical URLs for identical filters.
func (f TransactionFilter) Encode() string {
	pairs := make([]string, 0, 7)
	add := func(key, value string) {
		if value == "" {
			return
		}
		pairs = append(pairs, key+"="+url.QueryEscape(value))
	}

	add("category", f.Category)
	add("type", string(f.Kind))
	if !f.StartDate.IsEmpty() {
		add("start_date", f.StartDate.String())
	}
	if !f.EndDate.IsEmpty() {
		add("end_date", f.EndDate.String())
	}
	if !f.MinAmount.IsZero() {
		add("min_amount", f.MinAmount.String())
	}
	if !f.MaxAmount.IsZero() {
		add("max_amount", f.MaxAmount.String())
	}
	if f.Limit > 0 {
		add("limit", strconv.Itoa(f.Limit))
	}

	if len(pairs) == 0 {
		return ""
	}
	return "?" + strings.Join(pairs, "&")
}

// timeRangeQuery renders the reports time-range parameter, following the
// same omit-when-empty rule as transaction filters.
func timeRangeQuery(timeRange string) string {
	if timeRange == "" {
		return ""
	}
	return "?timeRange=" + url.QueryEscape(timeRange)
}
