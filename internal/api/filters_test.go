package api

import (
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

func TestTransactionFilterEncode(t *testing.T) {
	tests := []struct {
		name   string
		filter TransactionFilter
		want   string
	}{
		{
			name:   "empty filter produces no query",
			filter: TransactionFilter{},
			want:   "",
		},
		{
			name:   "blank category is omitted entirely",
			filter: TransactionFilter{Category: "", Kind: core.Expense},
			want:   "?type=expense",
		},
		{
			name: "all fields in fixed order",
			filter: TransactionFilter{
				Category:  "cat-1",
				Kind:      core.Income,
				StartDate: core.NewDate(2024, 1, 1),
				EndDate:   core.NewDate(2024, 1, 31),
				MinAmount: decimal.NewFromInt(10),
				MaxAmount: decimal.NewFromInt(500),
				Limit:     25,
			},
			want: "?category=cat-1&type=income&start_date=2024-01-01&end_date=2024-01-31&min_amount=10&max_amount=500&limit=25",
		},
		{
			name:   "category value is escaped",
			filter: TransactionFilter{Category: "food & drink"},
			want:   "?category=food+%26+drink",
		},
		{
			name:   "zero limit is omitted",
			filter: TransactionFilter{Category: "cat-1", Limit: 0},
			want:   "?category=cat-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Encode(); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeRangeQuery(t *testing.T) {
	if got := timeRangeQuery(""); got != "" {
		t.Errorf("empty range: got %q, want empty", got)
	}
	if got := timeRangeQuery("6months"); got != "?timeRange=6months" {
		t.Errorf("got %q", got)
	}
}
