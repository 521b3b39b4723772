package reports

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"bizreport/internal/core/apperror"
	"bizreport/internal/core/id"
	"bizreport/internal/domain/catalogs/client"
	"bizreport/internal/domain/catalogs/product"
	"bizreport/internal/domain/finance"
	"bizreport/pkg/logger"
)

var tracer = otel.Tracer("bizreport/reports")

// Recorder receives the outcome of every report build (metrics).
type Recorder interface {
	ObserveBuild(duration time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveBuild(time.Duration, error) {}

// Option configures Service.
type Option func(*Service)

// WithClock overrides the time source used for Report.GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRecorder sets the build outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// Service assembles owner reports.
type Service struct {
	repo     Repository
	now      func() time.Time
	recorder Recorder
}

// NewService creates a new reports service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		now:      time.Now,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build fetches the owner's records and computes the full report.
// Any retrieval error fails the whole report; the cause is logged, not returned.
func (s *Service) Build(ctx context.Context, ownerID id.ID) (*Report, error) {
	ctx, span := tracer.Start(ctx, "reports.Build",
		trace.WithAttributes(attribute.String("owner.id", ownerID.String())))
	defer span.End()

	start := time.Now()

	ds, err := s.fetch(ctx, ownerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "report generation failed")
		logger.Error(ctx, "report generation failed", "owner_id", ownerID, "cause", err)
		s.recorder.ObserveBuild(time.Since(start), err)
		return nil, apperror.NewReportFailed(err)
	}

	report := Compose(ownerID, ds, s.now())

	s.recorder.ObserveBuild(time.Since(start), nil)
	logger.Debug(ctx, "report built",
		"owner_id", ownerID,
		"revenue_entries", len(ds.Revenues),
		"expense_entries", len(ds.Expenses),
		"line_items", len(ds.LineItems),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return report, nil
}

// Compose computes every report section from a fetched dataset.
func Compose(ownerID id.ID, ds *Dataset, generatedAt time.Time) *Report {
	return &Report{
		OwnerID:     ownerID,
		GeneratedAt: generatedAt,
		Totals:      ComputeTotals(ds.Revenues, ds.Expenses),
		Revenue:     BuildRevenueSummary(ds.Revenues),
		Expense:     BuildExpenseSummary(ds.Expenses),
		Clients:     BuildClientSummary(ds.Revenues, ds.Clients, ds.ClientCount),
		Products:    BuildProductSummary(ds.Revenues, ds.LineItems, ds.SoldProducts),
		Stock:       BuildStockSummary(ds.ActiveProducts),
	}
}

// fetch loads the dataset in two concurrent phases. The second phase resolves the
// clients and products referenced by the first. Nothing is aggregated before both
// phases complete.
func (s *Service) fetch(ctx context.Context, ownerID id.ID) (*Dataset, error) {
	ds := &Dataset{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.repo.ListRevenueEntries(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("list revenue entries: %w", err)
		}
		ds.Revenues = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.ListExpenseEntries(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("list expense entries: %w", err)
		}
		ds.Expenses = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.ListLineItems(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("list line items: %w", err)
		}
		ds.LineItems = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.ListActiveProducts(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("list active products: %w", err)
		}
		ds.ActiveProducts = rows
		return nil
	})
	g.Go(func() error {
		n, err := s.repo.CountClients(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("count clients: %w", err)
		}
		ds.ClientCount = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds.Revenues = owned(ds.Revenues, ownerID, func(e finance.RevenueEntry) id.ID { return e.OwnerID })
	ds.Expenses = owned(ds.Expenses, ownerID, func(e finance.ExpenseEntry) id.ID { return e.OwnerID })
	ds.ActiveProducts = owned(ds.ActiveProducts, ownerID, func(p product.Product) id.ID { return p.OwnerID })
	ds.LineItems = ofEntries(ds.LineItems, ds.Revenues)

	clientIDs := make([]id.ID, 0, len(ds.Revenues))
	for _, e := range ds.Revenues {
		if e.ClientID != nil {
			clientIDs = append(clientIDs, *e.ClientID)
		}
	}
	clientIDs = id.Unique(clientIDs)

	productIDs := make([]id.ID, 0, len(ds.LineItems))
	for _, li := range ds.LineItems {
		productIDs = append(productIDs, li.ProductID)
	}
	productIDs = id.Unique(productIDs)

	g, gctx = errgroup.WithContext(ctx)
	if len(clientIDs) > 0 {
		g.Go(func() error {
			rows, err := s.repo.ListClientsByIDs(gctx, ownerID, clientIDs)
			if err != nil {
				return fmt.Errorf("list clients: %w", err)
			}
			ds.Clients = owned(rows, ownerID, func(c client.Client) id.ID { return c.OwnerID })
			return nil
		})
	}
	if len(productIDs) > 0 {
		g.Go(func() error {
			rows, err := s.repo.ListProductsByIDs(gctx, ownerID, productIDs)
			if err != nil {
				return fmt.Errorf("list products: %w", err)
			}
			ds.SoldProducts = owned(rows, ownerID, func(p product.Product) id.ID { return p.OwnerID })
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ds, nil
}

// owned drops records that belong to another owner.
func owned[T any](rows []T, ownerID id.ID, ownerOf func(T) id.ID) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if ownerOf(r) == ownerID {
			out = append(out, r)
		}
	}
	return out
}

// ofEntries keeps line items whose revenue entry is in entries.
func ofEntries(items []finance.LineItem, entries []finance.RevenueEntry) []finance.LineItem {
	known := make(map[id.ID]struct{}, len(entries))
	for _, e := range entries {
		known[e.ID] = struct{}{}
	}
	out := make([]finance.LineItem, 0, len(items))
	for _, li := range items {
		if _, ok := known[li.RevenueEntryID]; ok {
			out = append(out, li)
		}
	}
	return out
}
