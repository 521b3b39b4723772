package reports

import (
	"github.com/shopspring/decimal"

	"bizreport/internal/core/id"
	"bizreport/internal/core/types"
	"bizreport/internal/domain/catalogs/product"
	"bizreport/internal/domain/catalogs/unit"
	"bizreport/internal/domain/finance"
)

// UncategorizedStock is the bucket for products without a category.
const UncategorizedStock = "Uncategorized"

// BuildProductSummary ranks products by summed sold quantity and counts revenue
// entries that have no line items. Line items whose product is not in products
// are left out of the ranking.
func BuildProductSummary(revenues []finance.RevenueEntry, items []finance.LineItem, products []product.Product) ProductSummary {
	withItems := make(map[id.ID]struct{}, len(items))
	for _, li := range items {
		withItems[li.RevenueEntryID] = struct{}{}
	}
	withoutItems := 0
	for _, e := range revenues {
		if _, ok := withItems[e.ID]; !ok {
			withoutItems++
		}
	}

	lookup := make(map[id.ID]product.Product, len(products))
	for _, p := range products {
		lookup[p.ID] = p
	}

	byProduct := func(li finance.LineItem) (id.ID, bool) { return li.ProductID, true }
	quantities := GroupBy(items, byProduct, func(li finance.LineItem) decimal.Decimal { return li.Quantity })
	subtotals := GroupBy(items, byProduct, func(li finance.LineItem) decimal.Decimal { return li.Subtotal })

	resolved := quantities.Filter(func(productID id.ID) bool {
		_, ok := lookup[productID]
		return ok
	})

	top := resolved.Top(TopProducts, BySum)
	sold := make([]SoldProduct, len(top))
	for i, r := range top {
		p := lookup[r.Key]
		display := unit.Normalize(r.Sum, p.Unit)
		subtotal, _ := subtotals.Get(r.Key)
		sold[i] = SoldProduct{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  display.Quantity,
			Unit:      display.Unit,
			Subtotal:  subtotal.Sum,
		}
	}

	return ProductSummary{
		TopSold:             sold,
		EntriesWithoutItems: withoutItems,
	}
}

// BuildStockSummary summarizes on-hand stock of active products in display units:
// top categories by summed quantity (2 decimals) and top products per unit class
// (count 0 decimals, mass and volume 2 decimals). Ranking uses unrounded values.
func BuildStockSummary(products []product.Product) StockSummary {
	type stocked struct {
		item     StockProduct
		class    unit.Class
		category string
	}

	active := make([]stocked, 0, len(products))
	for _, p := range products {
		if !p.Active {
			continue
		}
		display := p.DisplayStock()
		active = append(active, stocked{
			item: StockProduct{
				ProductID: p.ID,
				Name:      p.Name,
				Quantity:  display.Quantity,
				Unit:      display.Unit,
			},
			class:    unit.ClassOf(p.Unit),
			category: p.CategoryLabel(),
		})
	}

	categories := GroupBy(active, func(s stocked) (string, bool) {
		if s.category == "" {
			return UncategorizedStock, true
		}
		return s.category, true
	}, func(s stocked) decimal.Decimal {
		return s.item.Quantity
	})
	topCategories := categories.Top(TopCategories, BySum)
	cats := make([]CategoryQuantity, len(topCategories))
	for i, r := range topCategories {
		cats[i] = CategoryQuantity{Category: r.Key, Quantity: types.Round(r.Sum, 2)}
	}

	topOf := func(class unit.Class) []StockProduct {
		var items []StockProduct
		for _, s := range active {
			if s.class == class {
				items = append(items, s.item)
			}
		}
		top := TopN(items, TopProducts, func(a, b StockProduct) int {
			return Descending(a.Quantity, b.Quantity)
		})
		places := unit.DisplayPlaces(class)
		for i := range top {
			top[i].Quantity = types.Round(top[i].Quantity, places)
		}
		return top
	}

	return StockSummary{
		TopCategories: cats,
		TopCount:      topOf(unit.ClassCount),
		TopMass:       topOf(unit.ClassMass),
		TopVolume:     topOf(unit.ClassVolume),
	}
}
