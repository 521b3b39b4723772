// Package reports builds the owner overview report: money totals, category and client
// rankings, best-selling products and a stock summary.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"bizreport/internal/core/id"
	"bizreport/internal/domain/catalogs/client"
	"bizreport/internal/domain/catalogs/product"
	"bizreport/internal/domain/finance"
)

// Ranking sizes.
const (
	TopCategories         = 3
	TopProducts           = 3
	TopClientsBySpend     = 5
	TopClientsByPurchases = 3
)

// --- Sections ---

// TotalsSummary holds money totals. Profit is Revenue minus Expense, unrounded.
type TotalsSummary struct {
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// CategoryCount is a category ranked by number of entries.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryAmount is a category ranked by summed amount.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// RevenueSummary describes revenue entries.
type RevenueSummary struct {
	WithoutAttachment int             `json:"withoutAttachment"`
	TotalEntries      int             `json:"totalEntries"`
	TopCategories     []CategoryCount `json:"topCategories"`
}

// ExpenseSummary describes expense entries.
type ExpenseSummary struct {
	WithoutAttachment     int              `json:"withoutAttachment"`
	TopCategoriesByCount  []CategoryCount  `json:"topCategoriesByCount"`
	TopCategoriesByAmount []CategoryAmount `json:"topCategoriesByAmount"`
}

// ClientRanking is one client's purchases. TotalSpent sums raw revenue entry amounts.
type ClientRanking struct {
	ClientID   id.ID           `json:"clientId"`
	Name       string          `json:"name"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	Count      int             `json:"count"`
}

// ClientSummary ranks clients that have revenue entries.
type ClientSummary struct {
	TotalClients   int             `json:"totalClients"`
	TopBySpend     []ClientRanking `json:"topBySpend"`
	TopByPurchases []ClientRanking `json:"topByPurchases"`
}

// SoldProduct is a product ranked by sold quantity, shown in its display unit.
// Subtotal sums the line-item subtotals for the product.
type SoldProduct struct {
	ProductID id.ID           `json:"productId"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// ProductSummary describes sales by product.
type ProductSummary struct {
	TopSold             []SoldProduct `json:"topSold"`
	EntriesWithoutItems int           `json:"entriesWithoutItems"`
}

// CategoryQuantity is a category ranked by summed display quantity.
type CategoryQuantity struct {
	Category string          `json:"category"`
	Quantity decimal.Decimal `json:"quantity"`
}

// StockProduct is an active product with its on-hand stock in display units.
type StockProduct struct {
	ProductID id.ID           `json:"productId"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
}

// StockSummary describes on-hand stock of active products.
type StockSummary struct {
	TopCategories []CategoryQuantity `json:"topCategories"`
	TopCount      []StockProduct     `json:"topCount"`
	TopMass       []StockProduct     `json:"topMass"`
	TopVolume     []StockProduct     `json:"topVolume"`
}

// Report is the assembled overview for one owner.
type Report struct {
	OwnerID     id.ID          `json:"ownerId"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Totals      TotalsSummary  `json:"totals"`
	Revenue     RevenueSummary `json:"revenue"`
	Expense     ExpenseSummary `json:"expense"`
	Clients     ClientSummary  `json:"clients"`
	Products    ProductSummary `json:"products"`
	Stock       StockSummary   `json:"stock"`
}

// Dataset is the snapshot of one owner's records a report is computed from.
type Dataset struct {
	Revenues       []finance.RevenueEntry
	Expenses       []finance.ExpenseEntry
	LineItems      []finance.LineItem
	ActiveProducts []product.Product

	// SoldProducts are the products referenced by LineItems
	SoldProducts []product.Product

	// Clients are the clients referenced by Revenues
	Clients     []client.Client
	ClientCount int
}
