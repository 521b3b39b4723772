package reports

import (
	"github.com/shopspring/decimal"

	"bizreport/internal/core/id"
	"bizreport/internal/domain/catalogs/client"
	"bizreport/internal/domain/finance"
)

// BuildRevenueSummary counts entries without attachment and ranks categories by
// number of entries. Entries with a blank category are left out of the ranking.
func BuildRevenueSummary(revenues []finance.RevenueEntry) RevenueSummary {
	withoutAttachment := 0
	for _, e := range revenues {
		if !e.HasAttachment() {
			withoutAttachment++
		}
	}

	groups := GroupBy(revenues, func(e finance.RevenueEntry) (string, bool) {
		c := e.CategoryLabel()
		return c, c != ""
	}, nil)

	return RevenueSummary{
		WithoutAttachment: withoutAttachment,
		TotalEntries:      len(revenues),
		TopCategories:     toCategoryCounts(groups.Top(TopCategories, ByCount)),
	}
}

// BuildExpenseSummary counts entries without attachment and ranks categories by
// number of entries and by summed amount. Blank categories share one
// "Uncategorized" bucket.
func BuildExpenseSummary(expenses []finance.ExpenseEntry) ExpenseSummary {
	withoutAttachment := 0
	for _, e := range expenses {
		if !e.HasAttachment() {
			withoutAttachment++
		}
	}

	groups := GroupBy(expenses, func(e finance.ExpenseEntry) (string, bool) {
		return e.CategoryLabel(), true
	}, func(e finance.ExpenseEntry) decimal.Decimal {
		return e.Amount
	})

	byAmount := groups.Top(TopCategories, BySum)
	amounts := make([]CategoryAmount, len(byAmount))
	for i, r := range byAmount {
		amounts[i] = CategoryAmount{Category: r.Key, Amount: r.Sum}
	}

	return ExpenseSummary{
		WithoutAttachment:     withoutAttachment,
		TopCategoriesByCount:  toCategoryCounts(groups.Top(TopCategories, ByCount)),
		TopCategoriesByAmount: amounts,
	}
}

// BuildClientSummary ranks clients by summed entry amount and by number of entries.
// Entries without a client are ignored. totalClients is reported as given.
func BuildClientSummary(revenues []finance.RevenueEntry, clients []client.Client, totalClients int) ClientSummary {
	lookup := make(map[id.ID]client.Client, len(clients))
	for _, c := range clients {
		lookup[c.ID] = c
	}

	groups := GroupBy(revenues, func(e finance.RevenueEntry) (id.ID, bool) {
		if e.ClientID == nil {
			return id.ID{}, false
		}
		return *e.ClientID, true
	}, func(e finance.RevenueEntry) decimal.Decimal {
		return e.Amount
	})

	toRankings := func(ranked []Ranked[id.ID]) []ClientRanking {
		out := make([]ClientRanking, len(ranked))
		for i, r := range ranked {
			out[i] = ClientRanking{
				ClientID:   r.Key,
				Name:       client.ResolveName(lookup, r.Key),
				TotalSpent: r.Sum,
				Count:      r.Count,
			}
		}
		return out
	}

	return ClientSummary{
		TotalClients:   totalClients,
		TopBySpend:     toRankings(groups.Top(TopClientsBySpend, BySum)),
		TopByPurchases: toRankings(groups.Top(TopClientsByPurchases, ByCount)),
	}
}

func toCategoryCounts(ranked []Ranked[string]) []CategoryCount {
	out := make([]CategoryCount, len(ranked))
	for i, r := range ranked {
		out[i] = CategoryCount{Category: r.Key, Count: r.Count}
	}
	return out
}
