package reports

import (
	"github.com/shopspring/decimal"

	"bizreport/internal/domain/finance"
)

// ComputeTotals sums revenue and expense amounts. No rounding is applied.
func ComputeTotals(revenues []finance.RevenueEntry, expenses []finance.ExpenseEntry) TotalsSummary {
	revenue := decimal.Zero
	for _, e := range revenues {
		revenue = revenue.Add(e.Amount)
	}

	expense := decimal.Zero
	for _, e := range expenses {
		expense = expense.Add(e.Amount)
	}

	return TotalsSummary{
		Revenue: revenue,
		Expense: expense,
		Profit:  revenue.Sub(expense),
	}
}
