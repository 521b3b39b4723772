// Package report_repo provides the PostgreSQL implementation of reports.Repository.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bizreport/internal/core/id"
	"bizreport/internal/domain/catalogs/client"
	"bizreport/internal/domain/catalogs/product"
	"bizreport/internal/domain/finance"
	"bizreport/internal/domain/reports"
	"bizreport/internal/infrastructure/storage/postgres"
)

const (
	tableRevenueEntries = "revenue_entries"
	tableExpenseEntries = "expense_entries"
	tableLineItems      = "revenue_line_items"
	tableClients        = "clients"
	tableProducts       = "products"
)

var (
	revenueCols = postgres.ExtractDBColumns[finance.RevenueEntry]()
	expenseCols = postgres.ExtractDBColumns[finance.ExpenseEntry]()
	clientCols  = postgres.ExtractDBColumns[client.Client]()
	productCols = postgres.ExtractDBColumns[product.Product]()
)

var _ reports.Repository = (*ReportRepo)(nil)

// ReportRepo implements reports.Repository. Every query filters by owner.
type ReportRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListRevenueEntries returns all revenue entries of the owner.
func (r *ReportRepo) ListRevenueEntries(ctx context.Context, ownerID id.ID) ([]finance.RevenueEntry, error) {
	var rows []finance.RevenueEntry
	if err := r.selectInto(ctx, &rows, r.revenueEntriesQuery(ownerID)); err != nil {
		return nil, fmt.Errorf("select %s: %w", tableRevenueEntries, err)
	}
	return rows, nil
}

// ListExpenseEntries returns all expense entries of the owner.
func (r *ReportRepo) ListExpenseEntries(ctx context.Context, ownerID id.ID) ([]finance.ExpenseEntry, error) {
	var rows []finance.ExpenseEntry
	if err := r.selectInto(ctx, &rows, r.expenseEntriesQuery(ownerID)); err != nil {
		return nil, fmt.Errorf("select %s: %w", tableExpenseEntries, err)
	}
	return rows, nil
}

// ListLineItems returns the line items of the owner's revenue entries.
func (r *ReportRepo) ListLineItems(ctx context.Context, ownerID id.ID) ([]finance.LineItem, error) {
	var rows []finance.LineItem
	if err := r.selectInto(ctx, &rows, r.lineItemsQuery(ownerID)); err != nil {
		return nil, fmt.Errorf("select %s: %w", tableLineItems, err)
	}
	return rows, nil
}

// ListClientsByIDs returns the owner's clients among ids.
func (r *ReportRepo) ListClientsByIDs(ctx context.Context, ownerID id.ID, ids []id.ID) ([]client.Client, error) {
	if len(ids) == 0 {
		return []client.Client{}, nil
	}
	var rows []client.Client
	if err := r.selectInto(ctx, &rows, r.clientsByIDsQuery(ownerID, ids)); err != nil {
		return nil, fmt.Errorf("select %s: %w", tableClients, err)
	}
	return rows, nil
}

// CountClients returns how many clients the owner has registered.
func (r *ReportRepo) CountClients(ctx context.Context, ownerID id.ID) (int, error) {
	sql, args, err := r.countClientsQuery(ownerID).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", tableClients, err)
	}
	return n, nil
}

// ListProductsByIDs returns the owner's products among ids, active or not.
func (r *ReportRepo) ListProductsByIDs(ctx context.Context, ownerID id.ID, ids []id.ID) ([]product.Product, error) {
	if len(ids) == 0 {
		return []product.Product{}, nil
	}
	var rows []product.Product
	if err := r.selectInto(ctx, &rows, r.productsByIDsQuery(ownerID, ids)); err != nil {
		return nil, fmt.Errorf("select %s: %w", tableProducts, err)
	}
	return rows, nil
}

// ListActiveProducts returns the owner's active products.
func (r *ReportRepo) ListActiveProducts(ctx context.Context, ownerID id.ID) ([]product.Product, error) {
	var rows []product.Product
	if err := r.selectInto(ctx, &rows, r.activeProductsQuery(ownerID)); err != nil {
		return nil, fmt.Errorf("select active %s: %w", tableProducts, err)
	}
	return rows, nil
}

// --- Query builders ---

func (r *ReportRepo) revenueEntriesQuery(ownerID id.ID) squirrel.SelectBuilder {
	return r.builder.
		Select(revenueCols...).
		From(tableRevenueEntries).
		Where("owner_id = ?", ownerID).
		OrderBy("date", "id")
}

func (r *ReportRepo) expenseEntriesQuery(ownerID id.ID) squirrel.SelectBuilder {
	return r.builder.
		Select(expenseCols...).
		From(tableExpenseEntries).
		Where("owner_id = ?", ownerID).
		OrderBy("created_at", "id")
}

func (r *ReportRepo) lineItemsQuery(ownerID id.ID) squirrel.SelectBuilder {
	return r.builder.
		Select("li.id", "li.revenue_entry_id", "li.product_id", "li.quantity", "li.subtotal").
		From(tableLineItems + " li").
		Join(tableRevenueEntries + " re ON re.id = li.revenue_entry_id").
		Where("re.owner_id = ?", ownerID).
		OrderBy("re.date", "li.id")
}

func (r *ReportRepo) clientsByIDsQuery(ownerID id.ID, ids []id.ID) squirrel.SelectBuilder {
	return r.builder.
		Select(clientCols...).
		From(tableClients).
		Where("owner_id = ?", ownerID).
		Where(squirrel.Eq{"id": ids})
}

func (r *ReportRepo) countClientsQuery(ownerID id.ID) squirrel.SelectBuilder {
	return r.builder.
		Select("COUNT(*)").
		From(tableClients).
		Where("owner_id = ?", ownerID)
}

func (r *ReportRepo) productsByIDsQuery(ownerID id.ID, ids []id.ID) squirrel.SelectBuilder {
	return r.builder.
		Select(productCols...).
		From(tableProducts).
		Where("owner_id = ?", ownerID).
		Where(squirrel.Eq{"id": ids})
}

func (r *ReportRepo) activeProductsQuery(ownerID id.ID) squirrel.SelectBuilder {
	return r.builder.
		Select(productCols...).
		From(tableProducts).
		Where("owner_id = ?", ownerID).
		Where("active").
		OrderBy("name", "id")
}

func (r *ReportRepo) selectInto(ctx context.Context, dst any, q squirrel.SelectBuilder) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, r.txm.GetQuerier(ctx), dst, sql, args...)
}
