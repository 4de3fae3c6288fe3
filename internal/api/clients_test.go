package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/credstore"
	"fintrack/internal/session"
)

// newTestSession builds a session manager pointed at handler with an access
// credential already in place, so clients exercise the authenticated path.
func newTestSession(t *testing.T, handler http.Handler) *session.Manager {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := credstore.Open(filepath.Join(t.TempDir(), "creds.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Set(context.Background(), credstore.KeyAccessCredential, "test-access"); err != nil {
		t.Fatalf("seed access credential: %v", err)
	}

	return session.NewManager(srv.URL, store, 5*time.Second, nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestTransactionsListEmptyBodyYieldsEmptySlice(t *testing.T) {
	mgr := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, []core.Transaction{})
	}))

	got, err := NewTransactionsClient(mgr).List(context.Background(), TransactionFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("want empty slice, got %#v", got)
	}
}

func TestTransactionsListForwardsFilterQuery(t *testing.T) {
	var gotQuery string
	mgr := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(w, http.StatusOK, []core.Transaction{})
	}))

	filter := TransactionFilter{Kind: core.Expense, Category: "cat-1"}
	if _, err := NewTransactionsClient(mgr).List(context.Background(), filter); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotQuery != "category=cat-1&type=expense" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestTransactionsGetMapsNotFound(t *testing.T) {
	mgr := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "transaction not found"})
	}))

	_, err := NewTransactionsClient(mgr).Get(context.Background(), "missing")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestTransactionsCreateRejectsInvalidWithoutCall(t *testing.T) {
	var hits atomic.Int32
	mgr := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusOK, core.Transaction{})
	}))

	invalid := core.Transaction{
		CategoryID:  "cat-1",
		Description: "",
		Amount:      decimal.NewFromInt(10),
		Kind:        core.Expense,
		Date:        core.NewDate(2024, 3, 1),
	}
	_, err := NewTransactionsClient(mgr).Create(context.Background(), invalid)
	if !errors.Is(err, core.ErrValidationFailed) {
		t.Fatalf("want ErrValidationFailed, got %v", err)
	}
	if hits.Load() != 0 {
		t.Errorf("invalid transaction reached the network: %d calls", hits.Load())
	}
}

func TestTransactionsCalendarBuildsMonthQuery(t *testing.T) {
	var gotURL string
	mgr := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		writeJSON(w, http.StatusOK, []core.Transaction{})
	}))

	if _, err := NewTransactionsClient(mgr).Calendar(context.Background(), 2024, 3); err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if gotURL != "/calendar/transactions?year=2024&month=3" {
		t.Errorf("url = %q", gotURL)
	}
}

func TestCategoriesListServedFromCache(t *testing.T) {
	var hits atomic.Int32
	mgr := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusOK, []core.Category{{ID: "c1", Name: "Food", Kind: core.Expense}})
	}))
	client := NewCategoriesClient(mgr, time.Minute)

	ctx := context.Background()
	first, err := client.List(ctx)
	if err != nil {
		t.Fatalf("first List: %v", err)
	}
	second, err := client.List(ctx)
	if err != nil {
		t.Fatalf("second List: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("want 1 network call, got %d", hits.Load())
	}
	if len(first) != 1 || len(second) != 1 || second[0].ID != "c1" {
		t.Errorf("cached list mismatch: %#v vs %#v", first, second)
	}
}

func TestCategoriesWriteInvalidatesCache(t *testing.T) {
	var listHits atomic.Int32
	mgr := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			listHits.Add(1)
			writeJSON(w, http.StatusOK, []core.Category{{ID: "c1", Name: "Food", Kind: core.Expense}})
		case r.Method == http.MethodPost:
			writeJSON(w, http.StatusCreated, core.Category{ID: "c2", Name: "Travel", Kind: core.Expense})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	client := NewCategoriesClient(mgr, time.Minute)

	ctx := context.Background()
	if _, err := client.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	if _, err := client.Create(ctx, core.Category{Name: "Travel", Kind: core.Expense}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := client.List(ctx); err != nil {
		t.Fatalf("List after create: %v", err)
	}
	if listHits.Load() != 2 {
		t.Errorf("want cache invalidated after write (2 list calls), got %d", listHits.Load())
	}
}

func TestBudgetsCreateRejectsNegativeLimit(t *testing.T) {
	var hits atomic.Int32
	mgr := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	bad := core.Budget{
		CategoryID:  "cat-1",
		Limit:       decimal.NewFromInt(-5),
		PeriodStart: core.NewDate(2024, 1, 1),
		PeriodEnd:   core.NewDate(2024, 1, 31),
	}
	_, err := NewBudgetsClient(mgr).Create(context.Background(), bad)
	if !errors.Is(err, core.ErrValidationFailed) {
		t.Fatalf("want ErrValidationFailed, got %v", err)
	}
	if hits.Load() != 0 {
		t.Errorf("invalid budget reached the network")
	}
}

func TestDashboardReadsAreTolerant(t *testing.T) {
	mgr := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "boom"})
	}))
	client := NewDashboardClient(mgr, nil)

	ctx := context.Background()
	if got := client.Summary(ctx); !got.Balance.IsZero() || !got.TotalIncome.IsZero() {
		t.Errorf("failed summary should be zero-valued, got %+v", got)
	}
	if got := client.RecentTransactions(ctx); got == nil || len(got) != 0 {
		t.Errorf("failed read should yield empty slice, got %#v", got)
	}
	if got := client.BudgetProgress(ctx); got == nil || len(got) != 0 {
		t.Errorf("failed read should yield empty slice, got %#v", got)
	}
	if got := client.CategoryBreakdown(ctx); got == nil || len(got) != 0 {
		t.Errorf("failed read should yield empty slice, got %#v", got)
	}
}

func TestReportsFailuresPropagate(t *testing.T) {
	mgr := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "boom"})
	}))

	_, err := NewReportsClient(mgr).ExpenseVsIncome(context.Background(), "6months")
	if !errors.Is(err, core.ErrUnexpected) {
		t.Fatalf("want ErrUnexpected, got %v", err)
	}
}

func TestReportsTimeRangeForwarded(t *testing.T) {
	var gotURL string
	mgr := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		writeJSON(w, http.StatusOK, []TrendPoint{})
	}))

	if _, err := NewReportsClient(mgr).SpendingTrends(context.Background(), "1year"); err != nil {
		t.Fatalf("SpendingTrends: %v", err)
	}
	if gotURL != "/reports/spending-trends?timeRange=1year" {
		t.Errorf("url = %q", gotURL)
	}
}

func TestUpdateProfileRefreshesCachedUser(t *testing.T) {
	mgr := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/settings/profile" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		writeJSON(w, http.StatusOK, map[string]core.User{
			"user": {ID: "u1", Email: "ada@example.com", Name: "Ada L."},
		})
	}))

	user, err := NewSettingsClient(mgr).UpdateProfile(context.Background(), "Ada L.")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if user.Name != "Ada L." {
		t.Errorf("name = %q", user.Name)
	}
	cached := mgr.CurrentUser()
	if cached == nil || cached.Name != "Ada L." {
		t.Errorf("cached user not refreshed: %+v", cached)
	}
}
