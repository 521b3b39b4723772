package reports

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizreport/internal/core/apperror"
	"bizreport/internal/core/id"
	"bizreport/internal/domain/catalogs/client"
	"bizreport/internal/domain/catalogs/product"
	"bizreport/internal/domain/catalogs/unit"
	"bizreport/internal/domain/finance"
	"bizreport/pkg/logger"
)

// stubRepo serves fixed rows and records which methods were called.
type stubRepo struct {
	revenues []finance.RevenueEntry
	expenses []finance.ExpenseEntry
	items    []finance.LineItem
	clients  []client.Client
	products []product.Product
	count    int

	failOn string

	mu    sync.Mutex
	calls map[string]int
}

func (r *stubRepo) track(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = make(map[string]int)
	}
	r.calls[name]++
	if r.failOn == name {
		return errors.New("connection reset")
	}
	return nil
}

func (r *stubRepo) called(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[name]
}

func (r *stubRepo) ListRevenueEntries(_ context.Context, _ id.ID) ([]finance.RevenueEntry, error) {
	if err := r.track("revenues"); err != nil {
		return nil, err
	}
	return r.revenues, nil
}

func (r *stubRepo) ListExpenseEntries(_ context.Context, _ id.ID) ([]finance.ExpenseEntry, error) {
	if err := r.track("expenses"); err != nil {
		return nil, err
	}
	return r.expenses, nil
}

func (r *stubRepo) ListLineItems(_ context.Context, _ id.ID) ([]finance.LineItem, error) {
	if err := r.track("items"); err != nil {
		return nil, err
	}
	return r.items, nil
}

func (r *stubRepo) ListClientsByIDs(_ context.Context, _ id.ID, ids []id.ID) ([]client.Client, error) {
	if err := r.track("clients"); err != nil {
		return nil, err
	}
	want := make(map[id.ID]bool, len(ids))
	for _, i := range ids {
		want[i] = true
	}
	var out []client.Client
	for _, c := range r.clients {
		if want[c.ID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubRepo) CountClients(_ context.Context, _ id.ID) (int, error) {
	if err := r.track("count"); err != nil {
		return 0, err
	}
	return r.count, nil
}

func (r *stubRepo) ListProductsByIDs(_ context.Context, _ id.ID, ids []id.ID) ([]product.Product, error) {
	if err := r.track("productsByIDs"); err != nil {
		return nil, err
	}
	want := make(map[id.ID]bool, len(ids))
	for _, i := range ids {
		want[i] = true
	}
	var out []product.Product
	for _, p := range r.products {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubRepo) ListActiveProducts(_ context.Context, _ id.ID) ([]product.Product, error) {
	if err := r.track("activeProducts"); err != nil {
		return nil, err
	}
	var out []product.Product
	for _, p := range r.products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

type recorderSpy struct {
	mu   sync.Mutex
	errs []error
}

func (s *recorderSpy) ObserveBuild(_ time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func testContext() context.Context {
	return logger.WithLogger(context.Background(), logger.NewNop())
}

func newTestService(repo Repository, opts ...Option) *Service {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewService(repo, opts...)
}

func TestService_Build_EmptyOwner(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo)
	owner := testID(900)

	report, err := svc.Build(testContext(), owner)
	require.NoError(t, err)

	assert.Equal(t, owner, report.OwnerID)
	assert.Equal(t, fixedNow, report.GeneratedAt)
	assertDecimal(t, "0", report.Totals.Revenue)
	assertDecimal(t, "0", report.Totals.Expense)
	assertDecimal(t, "0", report.Totals.Profit)
	assert.Empty(t, report.Revenue.TopCategories)
	assert.Empty(t, report.Expense.TopCategoriesByCount)
	assert.Empty(t, report.Clients.TopBySpend)
	assert.Zero(t, report.Clients.TotalClients)
	assert.Empty(t, report.Products.TopSold)
	assert.Empty(t, report.Stock.TopCategories)

	assert.Zero(t, repo.called("clients"), "no clients referenced")
	assert.Zero(t, repo.called("productsByIDs"), "no products referenced")
}

func TestService_Build_FullScenario(t *testing.T) {
	owner := testID(900)
	ana, bruno := testID(1), testID(2)
	coffee, beans := testID(10), testID(11)
	e1, e2, e3 := testID(101), testID(102), testID(103)

	repo := &stubRepo{
		revenues: []finance.RevenueEntry{
			{ID: e1, OwnerID: owner, Amount: dec("60"), Category: ptr("Sales"), ClientID: &ana},
			{ID: e2, OwnerID: owner, Amount: dec("40"), Category: ptr("Sales"), ClientID: &ana, AttachmentURL: ptr("s3://r/2.pdf")},
			{ID: e3, OwnerID: owner, Amount: dec("50"), Category: ptr("Service"), ClientID: &bruno},
		},
		expenses: []finance.ExpenseEntry{
			{ID: testID(201), OwnerID: owner, Amount: dec("30"), Category: ptr("Rent")},
		},
		items: []finance.LineItem{
			{RevenueEntryID: e1, ProductID: coffee, Quantity: dec("2"), Subtotal: dec("60")},
			{RevenueEntryID: e2, ProductID: beans, Quantity: dec("750"), Subtotal: dec("40")},
		},
		clients: []client.Client{{ID: ana, OwnerID: owner, Name: "Ana"}},
		products: []product.Product{
			{ID: coffee, OwnerID: owner, Name: "Coffee", Unit: unit.Count, Quantity: dec("20"), Active: true},
			{ID: beans, OwnerID: owner, Name: "Beans", Unit: unit.Gram, Quantity: dec("5000"), Category: ptr("Grocery"), Active: true},
		},
		count: 4,
	}
	spy := &recorderSpy{}
	svc := newTestService(repo, WithRecorder(spy))

	report, err := svc.Build(testContext(), owner)
	require.NoError(t, err)

	assertDecimal(t, "150", report.Totals.Revenue)
	assertDecimal(t, "30", report.Totals.Expense)
	assertDecimal(t, "120", report.Totals.Profit)

	assert.Equal(t, 3, report.Revenue.TotalEntries)
	assert.Equal(t, 2, report.Revenue.WithoutAttachment)
	require.Len(t, report.Revenue.TopCategories, 2)
	assert.Equal(t, CategoryCount{Category: "Sales", Count: 2}, report.Revenue.TopCategories[0])

	assert.Equal(t, 4, report.Clients.TotalClients)
	require.Len(t, report.Clients.TopBySpend, 2)
	assert.Equal(t, "Ana", report.Clients.TopBySpend[0].Name)
	assertDecimal(t, "100", report.Clients.TopBySpend[0].TotalSpent)
	assert.Equal(t, 2, report.Clients.TopBySpend[0].Count)
	assert.Equal(t, client.PlaceholderName(bruno), report.Clients.TopBySpend[1].Name)

	assert.Equal(t, 1, report.Products.EntriesWithoutItems)
	require.Len(t, report.Products.TopSold, 2)
	assert.Equal(t, "Beans", report.Products.TopSold[0].Name)
	assertDecimal(t, "0.75", report.Products.TopSold[0].Quantity)
	assert.Equal(t, "kg", report.Products.TopSold[0].Unit)

	require.Len(t, report.Stock.TopCount, 1)
	require.Len(t, report.Stock.TopMass, 1)
	assertDecimal(t, "5", report.Stock.TopMass[0].Quantity)

	assert.Equal(t, 1, repo.called("clients"))
	assert.Equal(t, 1, repo.called("productsByIDs"))
	require.Len(t, spy.errs, 1)
	assert.NoError(t, spy.errs[0])
}

func TestService_Build_RetrievalFailure(t *testing.T) {
	for _, method := range []string{"revenues", "expenses", "items", "activeProducts", "count", "clients", "productsByIDs"} {
		t.Run(method, func(t *testing.T) {
			owner := testID(900)
			c, p := testID(1), testID(2)
			repo := &stubRepo{
				revenues: []finance.RevenueEntry{{ID: testID(101), OwnerID: owner, Amount: dec("10"), ClientID: &c}},
				items:    []finance.LineItem{{RevenueEntryID: testID(101), ProductID: p, Quantity: dec("1")}},
				failOn:   method,
			}
			spy := &recorderSpy{}
			svc := newTestService(repo, WithRecorder(spy))

			report, err := svc.Build(testContext(), owner)

			require.Error(t, err)
			assert.Nil(t, report)
			assert.True(t, apperror.HasCode(err, apperror.CodeReportFailed))
			assert.Equal(t, 500, apperror.GetHTTPStatus(err))

			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, "report generation failed", appErr.Message)
			assert.NotContains(t, appErr.Message, "connection reset")

			require.Len(t, spy.errs, 1)
			assert.Error(t, spy.errs[0])
		})
	}
}

func TestService_Build_IgnoresOtherOwners(t *testing.T) {
	owner, other := testID(900), testID(901)
	mine, theirs := testID(1), testID(2)

	repo := &stubRepo{
		revenues: []finance.RevenueEntry{
			{ID: testID(101), OwnerID: owner, Amount: dec("10"), ClientID: &mine},
			{ID: testID(102), OwnerID: other, Amount: dec("999"), ClientID: &theirs},
		},
		expenses: []finance.ExpenseEntry{
			{ID: testID(201), OwnerID: other, Amount: dec("500")},
		},
		items: []finance.LineItem{
			{RevenueEntryID: testID(102), ProductID: testID(10), Quantity: dec("7")},
		},
		clients: []client.Client{
			{ID: mine, OwnerID: owner, Name: "Mine"},
			{ID: theirs, OwnerID: other, Name: "Theirs"},
		},
		products: []product.Product{
			{ID: testID(10), OwnerID: other, Name: "Foreign", Unit: unit.Count, Quantity: dec("3"), Active: true},
		},
	}
	svc := newTestService(repo)

	report, err := svc.Build(testContext(), owner)
	require.NoError(t, err)

	assertDecimal(t, "10", report.Totals.Revenue)
	assertDecimal(t, "0", report.Totals.Expense)
	assert.Equal(t, 1, report.Revenue.TotalEntries)
	require.Len(t, report.Clients.TopBySpend, 1)
	assert.Equal(t, "Mine", report.Clients.TopBySpend[0].Name)
	assert.Empty(t, report.Products.TopSold)
	assert.Empty(t, report.Stock.TopCount)

	assert.Zero(t, repo.called("productsByIDs"), "foreign line items are dropped before lookup")
}

func TestCompose_SectionsIndependent(t *testing.T) {
	ds := &Dataset{
		Revenues: []finance.RevenueEntry{{ID: testID(1), Amount: dec("5")}},
	}

	report := Compose(testID(900), ds, fixedNow)

	assertDecimal(t, "5", report.Totals.Revenue)
	assert.Equal(t, 1, report.Products.EntriesWithoutItems)
	assert.Empty(t, report.Clients.TopBySpend)
}
