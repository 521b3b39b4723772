package dto

import (
	"time"

	"bizreport/internal/domain/reports"
)

// OverviewResponse is the JSON shape of the owner overview report.
// Money and quantities are plain JSON numbers.
type OverviewResponse struct {
	OwnerID     string           `json:"ownerId"`
	GeneratedAt string           `json:"generatedAt"`
	Totals      TotalsResponse   `json:"totals"`
	Revenue     RevenueResponse  `json:"revenue"`
	Expense     ExpenseResponse  `json:"expense"`
	Clients     ClientsResponse  `json:"clients"`
	Products    ProductsResponse `json:"products"`
	Stock       StockResponse    `json:"stock"`
}

type TotalsResponse struct {
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type CategoryAmountResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type RevenueResponse struct {
	WithoutAttachment int                     `json:"withoutAttachment"`
	TotalEntries      int                     `json:"totalEntries"`
	TopCategories     []CategoryCountResponse `json:"topCategories"`
}

type ExpenseResponse struct {
	WithoutAttachment     int                      `json:"withoutAttachment"`
	TopCategoriesByCount  []CategoryCountResponse  `json:"topCategoriesByCount"`
	TopCategoriesByAmount []CategoryAmountResponse `json:"topCategoriesByAmount"`
}

type ClientRankingResponse struct {
	ClientID   string  `json:"clientId"`
	Name       string  `json:"name"`
	TotalSpent float64 `json:"totalSpent"`
	Count      int     `json:"count"`
}

type ClientsResponse struct {
	TotalClients   int                     `json:"totalClients"`
	TopBySpend     []ClientRankingResponse `json:"topBySpend"`
	TopByPurchases []ClientRankingResponse `json:"topByPurchases"`
}

type SoldProductResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Subtotal  float64 `json:"subtotal"`
}

type ProductsResponse struct {
	TopSold             []SoldProductResponse `json:"topSold"`
	EntriesWithoutItems int                   `json:"entriesWithoutItems"`
}

type CategoryQuantityResponse struct {
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
}

type StockProductResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
}

type StockResponse struct {
	TopCategories []CategoryQuantityResponse `json:"topCategories"`
	TopCount      []StockProductResponse     `json:"topCount"`
	TopMass       []StockProductResponse     `json:"topMass"`
	TopVolume     []StockProductResponse     `json:"topVolume"`
}

// FromReport converts the domain report to its response DTO.
// Every list is non-nil so it encodes as [] rather than null.
func FromReport(r *reports.Report) *OverviewResponse {
	return &OverviewResponse{
		OwnerID:     r.OwnerID.String(),
		GeneratedAt: r.GeneratedAt.UTC().Format(time.RFC3339),
		Totals: TotalsResponse{
			Revenue: toFloat(r.Totals.Revenue),
			Expense: toFloat(r.Totals.Expense),
			Profit:  toFloat(r.Totals.Profit),
		},
		Revenue: RevenueResponse{
			WithoutAttachment: r.Revenue.WithoutAttachment,
			TotalEntries:      r.Revenue.TotalEntries,
			TopCategories:     fromCategoryCounts(r.Revenue.TopCategories),
		},
		Expense: ExpenseResponse{
			WithoutAttachment:     r.Expense.WithoutAttachment,
			TopCategoriesByCount:  fromCategoryCounts(r.Expense.TopCategoriesByCount),
			TopCategoriesByAmount: mapSlice(r.Expense.TopCategoriesByAmount, func(c reports.CategoryAmount) CategoryAmountResponse {
				return CategoryAmountResponse{Category: c.Category, Amount: toFloat(c.Amount)}
			}),
		},
		Clients: ClientsResponse{
			TotalClients:   r.Clients.TotalClients,
			TopBySpend:     mapSlice(r.Clients.TopBySpend, fromClientRanking),
			TopByPurchases: mapSlice(r.Clients.TopByPurchases, fromClientRanking),
		},
		Products: ProductsResponse{
			TopSold: mapSlice(r.Products.TopSold, func(p reports.SoldProduct) SoldProductResponse {
				return SoldProductResponse{
					ProductID: p.ProductID.String(),
					Name:      p.Name,
					Quantity:  toFloat(p.Quantity),
					Unit:      p.Unit,
					Subtotal:  toFloat(p.Subtotal),
				}
			}),
			EntriesWithoutItems: r.Products.EntriesWithoutItems,
		},
		Stock: StockResponse{
			TopCategories: mapSlice(r.Stock.TopCategories, func(c reports.CategoryQuantity) CategoryQuantityResponse {
				return CategoryQuantityResponse{Category: c.Category, Quantity: toFloat(c.Quantity)}
			}),
			TopCount:  mapSlice(r.Stock.TopCount, fromStockProduct),
			TopMass:   mapSlice(r.Stock.TopMass, fromStockProduct),
			TopVolume: mapSlice(r.Stock.TopVolume, fromStockProduct),
		},
	}
}

func fromCategoryCounts(in []reports.CategoryCount) []CategoryCountResponse {
	return mapSlice(in, func(c reports.CategoryCount) CategoryCountResponse {
		return CategoryCountResponse{Category: c.Category, Count: c.Count}
	})
}

func fromClientRanking(c reports.ClientRanking) ClientRankingResponse {
	return ClientRankingResponse{
		ClientID:   c.ClientID.String(),
		Name:       c.Name,
		TotalSpent: toFloat(c.TotalSpent),
		Count:      c.Count,
	}
}

func fromStockProduct(p reports.StockProduct) StockProductResponse {
	return StockProductResponse{
		ProductID: p.ProductID.String(),
		Name:      p.Name,
		Quantity:  toFloat(p.Quantity),
		Unit:      p.Unit,
	}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
