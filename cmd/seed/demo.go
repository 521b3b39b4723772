package main

import (
	"context"
	"time"

	"bizreport/internal/core/id"
	"bizreport/internal/core/types"
	"bizreport/internal/domain/catalogs/client"
	"bizreport/internal/domain/catalogs/product"
	"bizreport/internal/domain/catalogs/unit"
	"bizreport/internal/domain/finance"
	"bizreport/internal/infrastructure/storage/postgres"
)

type dataset struct {
	clients   []client.Client
	products  []product.Product
	revenues  []finance.RevenueEntry
	lineItems []finance.LineItem
	expenses  []finance.ExpenseEntry
}

func str(s string) *string { return &s }

func money(s string) types.Money { return types.MustMoney(s) }

// demoDataset builds a small shop: a few clients, stock in all three unit
// classes, sales with and without line items, and categorized and blank expenses.
func demoDataset(ownerID id.ID) dataset {
	var d dataset
	now := time.Now().UTC()

	ana := client.Client{ID: id.New(), OwnerID: ownerID, Name: "Ana"}
	bruno := client.Client{ID: id.New(), OwnerID: ownerID, Name: "Bruno"}
	carla := client.Client{ID: id.New(), OwnerID: ownerID, Name: "Carla"}
	d.clients = []client.Client{ana, bruno, carla}

	newProduct := func(name string, u unit.BaseUnit, qty string, category *string, active bool) product.Product {
		p := product.Product{ID: id.New(), OwnerID: ownerID, Name: name, Unit: u, Quantity: money(qty), Category: category, Active: active}
		d.products = append(d.products, p)
		return p
	}
	coffee := newProduct("Coffee beans", unit.Gram, "12500", str("Grocery"), true)
	milk := newProduct("Milk", unit.Milliliter, "8000", str("Dairy"), true)
	cups := newProduct("Paper cups", unit.Count, "240", str("Supplies"), true)
	sugar := newProduct("Sugar", unit.Gram, "3000", str("Grocery"), true)
	newProduct("Napkins", unit.Count, "500", nil, true)
	newProduct("Old syrup", unit.Milliliter, "700", str("Grocery"), false)

	sale := func(c *client.Client, amount, category string, attachment *string, daysAgo int, items ...finance.LineItem) {
		e := finance.RevenueEntry{
			ID:            id.New(),
			OwnerID:       ownerID,
			Amount:        money(amount),
			AttachmentURL: attachment,
			Date:          now.AddDate(0, 0, -daysAgo),
		}
		if category != "" {
			e.Category = str(category)
		}
		if c != nil {
			e.ClientID = &c.ID
		}
		d.revenues = append(d.revenues, e)
		for _, li := range items {
			li.ID = id.New()
			li.RevenueEntryID = e.ID
			d.lineItems = append(d.lineItems, li)
		}
	}
	item := func(p product.Product, qty, subtotal string) finance.LineItem {
		return finance.LineItem{ProductID: p.ID, Quantity: money(qty), Subtotal: money(subtotal)}
	}

	sale(&ana, "40", "Sales", str("receipts/0001.pdf"), 9, item(coffee, "500", "25"), item(cups, "10", "15"))
	sale(&ana, "60", "Sales", nil, 7, item(coffee, "1000", "50"), item(sugar, "250", "10"))
	sale(&bruno, "35", "Sales", nil, 5, item(milk, "2000", "20"), item(cups, "5", "15"))
	sale(&carla, "120", "Catering", str("receipts/0004.pdf"), 3)
	sale(nil, "18", "", nil, 1, item(milk, "1000", "10"), item(cups, "4", "8"))

	expense := func(amount, category string, attachment *string, daysAgo int) {
		e := finance.ExpenseEntry{
			ID:            id.New(),
			OwnerID:       ownerID,
			Amount:        money(amount),
			AttachmentURL: attachment,
			CreatedAt:     now.AddDate(0, 0, -daysAgo),
		}
		if category != "" {
			e.Category = str(category)
		}
		d.expenses = append(d.expenses, e)
	}
	expense("900", "Rent", str("invoices/rent.pdf"), 10)
	expense("80", "Energy", nil, 8)
	expense("45", "Supplies", nil, 6)
	expense("30", "Supplies", nil, 4)
	expense("12", "", nil, 2)

	return d
}

func insertDataset(ctx context.Context, q postgres.Querier, d dataset) error {
	if _, err := postgres.InsertStructs(ctx, q, "clients", d.clients); err != nil {
		return err
	}
	if _, err := postgres.InsertStructs(ctx, q, "products", d.products); err != nil {
		return err
	}
	if _, err := postgres.InsertStructs(ctx, q, "revenue_entries", d.revenues); err != nil {
		return err
	}
	if _, err := postgres.InsertStructs(ctx, q, "revenue_line_items", d.lineItems); err != nil {
		return err
	}
	if _, err := postgres.InsertStructs(ctx, q, "expense_entries", d.expenses); err != nil {
		return err
	}
	return nil
}
