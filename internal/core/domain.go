package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Expense TransactionKind = "expense"
	Income  TransactionKind = "income"
)

type (
	TransactionKind string

	Date struct {
		time.Time
	}

	// User is the authenticated profile cached alongside the credentials.
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	Transaction struct {
		ID          string          `json:"id"`
		CategoryID  string          `json:"category_id"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		Kind        TransactionKind `json:"type"`
		Date        Date            `json:"date"`
	}

	Category struct {
		ID   string          `json:"id"`
		Name string          `json:"name"`
		Kind TransactionKind `json:"type"`
	}

	Budget struct {
		ID          string          `json:"id"`
		CategoryID  string          `json:"category_id"`
		Limit       decimal.Decimal `json:"amount"`
		PeriodStart Date            `json:"start_date"`
		PeriodEnd   Date            `json:"end_date"`
	}

	// BudgetStatus is derived from a budget and the matching transactions.
	// It is recomputed on every request and never persisted.
	BudgetStatus struct {
		Budget         Budget
		Spent          decimal.Decimal
		Remaining      decimal.Decimal
		PercentageUsed float64
	}
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidKind      = errors.New("invalid transaction kind")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
	ErrInvalidPeriod    = errors.New("invalid budget period")
)

const dateLayout = "2006-01-02"

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses a wire-format date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// IsEmpty returns true if the date is zero (used for optional filter bounds)
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// Between reports whether d falls within [start, end], both bounds inclusive.
func (d Date) Between(start, end Date) bool {
	if d.Before(start.Time) {
		return false
	}
	return !d.After(end.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	// Some endpoints return full timestamps; keep only the calendar day.
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (k TransactionKind) Validate() error {
	switch k {
	case Expense, Income:
		return nil
	default:
		return ErrInvalidKind
	}
}

func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.CategoryID) == "" {
		return ErrEmptyCategory
	}
	return t.Kind.Validate()
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("empty category name")
	}
	return c.Kind.Validate()
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.CategoryID) == "" {
		return ErrEmptyCategory
	}
	if b.Limit.IsNegative() {
		return ErrInvalidAmount
	}
	if b.PeriodStart.IsZero() || b.PeriodEnd.IsZero() {
		return ErrInvalidPeriod
	}
	if b.PeriodEnd.Before(b.PeriodStart.Time) {
		return ErrInvalidPeriod
	}
	return nil
}
