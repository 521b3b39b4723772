package reports

import (
	"context"

	"bizreport/internal/core/id"
	"bizreport/internal/domain/catalogs/client"
	"bizreport/internal/domain/catalogs/product"
	"bizreport/internal/domain/finance"
)

// Repository defines report data access. Every method is scoped to one owner.
type Repository interface {
	// Money records
	ListRevenueEntries(ctx context.Context, ownerID id.ID) ([]finance.RevenueEntry, error)
	ListExpenseEntries(ctx context.Context, ownerID id.ID) ([]finance.ExpenseEntry, error)

	// ListLineItems returns line items of the owner's revenue entries
	ListLineItems(ctx context.Context, ownerID id.ID) ([]finance.LineItem, error)

	// Clients
	ListClientsByIDs(ctx context.Context, ownerID id.ID, ids []id.ID) ([]client.Client, error)
	CountClients(ctx context.Context, ownerID id.ID) (int, error)

	// Products
	ListProductsByIDs(ctx context.Context, ownerID id.ID, ids []id.ID) ([]product.Product, error)
	ListActiveProducts(ctx context.Context, ownerID id.ID) ([]product.Product, error)
}
