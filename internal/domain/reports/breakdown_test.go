package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizreport/internal/domain/catalogs/client"
	"bizreport/internal/domain/finance"
)

func TestBuildRevenueSummary(t *testing.T) {
	revenues := []finance.RevenueEntry{
		{Amount: dec("10"), Category: ptr("Food"), AttachmentURL: ptr("https://x/1.pdf")},
		{Amount: dec("10"), Category: ptr("")},
		{Amount: dec("10"), Category: ptr("Drinks")},
		{Amount: dec("10"), Category: ptr("Food")},
		{Amount: dec("10")},
		{Amount: dec("10"), Category: ptr("food")},
		{Amount: dec("10"), Category: ptr("Other")},
	}

	got := BuildRevenueSummary(revenues)

	assert.Equal(t, 7, got.TotalEntries)
	assert.Equal(t, 6, got.WithoutAttachment)
	assert.Equal(t, []CategoryCount{
		{Category: "Food", Count: 2},
		{Category: "Drinks", Count: 1},
		{Category: "food", Count: 1},
	}, got.TopCategories)
}

func TestBuildRevenueSummary_Empty(t *testing.T) {
	got := BuildRevenueSummary(nil)

	assert.Zero(t, got.TotalEntries)
	assert.Zero(t, got.WithoutAttachment)
	assert.NotNil(t, got.TopCategories)
	assert.Empty(t, got.TopCategories)
}

func TestBuildExpenseSummary_Scenario(t *testing.T) {
	got := BuildExpenseSummary([]finance.ExpenseEntry{
		{Amount: dec("30"), Category: ptr("rent")},
	})

	assert.Equal(t, []CategoryCount{{Category: "rent", Count: 1}}, got.TopCategoriesByCount)
	require.Len(t, got.TopCategoriesByAmount, 1)
	assertDecimal(t, "30", got.TopCategoriesByAmount[0].Amount)
	assert.Equal(t, 1, got.WithoutAttachment)
}

func TestBuildExpenseSummary_BlankFoldsIntoUncategorized(t *testing.T) {
	expenses := []finance.ExpenseEntry{
		{Amount: dec("5"), Category: ptr("")},
		{Amount: dec("7"), Category: ptr("rent")},
		{Amount: dec("1")},
		{Amount: dec("2"), Category: ptr("  ")},
		{Amount: dec("3"), AttachmentURL: ptr("https://x/e.png"), Category: ptr("")},
	}

	got := BuildExpenseSummary(expenses)

	require.NotEmpty(t, got.TopCategoriesByCount)
	assert.Equal(t, CategoryCount{Category: finance.UncategorizedExpense, Count: 4}, got.TopCategoriesByCount[0])
	assert.Equal(t, 4, got.WithoutAttachment)

	require.Len(t, got.TopCategoriesByAmount, 2)
	assert.Equal(t, finance.UncategorizedExpense, got.TopCategoriesByAmount[0].Category)
	assertDecimal(t, "11", got.TopCategoriesByAmount[0].Amount)
	assert.Equal(t, "rent", got.TopCategoriesByAmount[1].Category)
}

func TestBuildExpenseSummary_RankingsDiffer(t *testing.T) {
	expenses := []finance.ExpenseEntry{
		{Amount: dec("1"), Category: ptr("office")},
		{Amount: dec("1"), Category: ptr("office")},
		{Amount: dec("1"), Category: ptr("office")},
		{Amount: dec("900"), Category: ptr("rent")},
		{Amount: dec("40"), Category: ptr("energy")},
		{Amount: dec("40"), Category: ptr("energy")},
		{Amount: dec("5"), Category: ptr("travel")},
	}

	got := BuildExpenseSummary(expenses)

	assert.Equal(t, []CategoryCount{
		{Category: "office", Count: 3},
		{Category: "energy", Count: 2},
		{Category: "rent", Count: 1},
	}, got.TopCategoriesByCount)

	require.Len(t, got.TopCategoriesByAmount, TopCategories)
	assert.Equal(t, "rent", got.TopCategoriesByAmount[0].Category)
	assert.Equal(t, "energy", got.TopCategoriesByAmount[1].Category)
	assertDecimal(t, "80", got.TopCategoriesByAmount[1].Amount)
	assert.Equal(t, "travel", got.TopCategoriesByAmount[2].Category)
}

func TestBuildClientSummary_Scenario(t *testing.T) {
	ana := testID(1)
	revenues := []finance.RevenueEntry{
		{Amount: dec("40"), ClientID: &ana},
		{Amount: dec("60"), ClientID: &ana},
		{Amount: dec("500")},
	}
	clients := []client.Client{{ID: ana, Name: "Ana"}}

	got := BuildClientSummary(revenues, clients, 4)

	assert.Equal(t, 4, got.TotalClients)
	require.Len(t, got.TopBySpend, 1)
	assert.Equal(t, "Ana", got.TopBySpend[0].Name)
	assert.Equal(t, ana, got.TopBySpend[0].ClientID)
	assertDecimal(t, "100", got.TopBySpend[0].TotalSpent)
	assert.Equal(t, 2, got.TopBySpend[0].Count)
	assert.Equal(t, got.TopBySpend, got.TopByPurchases)
}

func TestBuildClientSummary_UnknownClientGetsPlaceholder(t *testing.T) {
	ghost := testID(99)
	revenues := []finance.RevenueEntry{{Amount: dec("10"), ClientID: &ghost}}

	got := BuildClientSummary(revenues, nil, 0)

	require.Len(t, got.TopBySpend, 1)
	assert.Equal(t, "Client ID "+ghost.String(), got.TopBySpend[0].Name)
}

func TestBuildClientSummary_Bounds(t *testing.T) {
	var revenues []finance.RevenueEntry
	var clients []client.Client
	for i := 1; i <= 7; i++ {
		cid := testID(i)
		clients = append(clients, client.Client{ID: cid, Name: cid.String()})
		for n := 0; n < i; n++ {
			revenues = append(revenues, finance.RevenueEntry{Amount: dec("10"), ClientID: &cid})
		}
	}

	got := BuildClientSummary(revenues, clients, len(clients))

	require.Len(t, got.TopBySpend, TopClientsBySpend)
	require.Len(t, got.TopByPurchases, TopClientsByPurchases)
	assert.Equal(t, testID(7), got.TopBySpend[0].ClientID)
	assertDecimal(t, "70", got.TopBySpend[0].TotalSpent)
	assert.Equal(t, testID(3), got.TopBySpend[4].ClientID)
	assert.Equal(t, []int{7, 6, 5}, []int{
		got.TopByPurchases[0].Count, got.TopByPurchases[1].Count, got.TopByPurchases[2].Count,
	})
}

func TestBuildClientSummary_SpendAndCountRankIndependently(t *testing.T) {
	big, frequent := testID(1), testID(2)
	revenues := []finance.RevenueEntry{
		{Amount: dec("1"), ClientID: &frequent},
		{Amount: dec("1000"), ClientID: &big},
		{Amount: dec("1"), ClientID: &frequent},
		{Amount: dec("1"), ClientID: &frequent},
	}

	got := BuildClientSummary(revenues, nil, 2)

	assert.Equal(t, big, got.TopBySpend[0].ClientID)
	assert.Equal(t, frequent, got.TopByPurchases[0].ClientID)
	assert.Equal(t, 3, got.TopByPurchases[0].Count)
}

func TestBuildClientSummary_NoClientEntries(t *testing.T) {
	got := BuildClientSummary([]finance.RevenueEntry{{Amount: dec("5")}}, nil, 3)

	assert.Equal(t, 3, got.TotalClients)
	assert.NotNil(t, got.TopBySpend)
	assert.Empty(t, got.TopBySpend)
	assert.Empty(t, got.TopByPurchases)
}
