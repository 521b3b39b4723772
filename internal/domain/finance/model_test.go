package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestRevenueEntry_CategoryLabel(t *testing.T) {
	assert.Equal(t, "", RevenueEntry{}.CategoryLabel())
	assert.Equal(t, "", RevenueEntry{Category: ptr("")}.CategoryLabel())
	assert.Equal(t, "", RevenueEntry{Category: ptr("  ")}.CategoryLabel())
	assert.Equal(t, "Food", RevenueEntry{Category: ptr("Food")}.CategoryLabel())
}

func TestExpenseEntry_CategoryLabel(t *testing.T) {
	assert.Equal(t, UncategorizedExpense, ExpenseEntry{}.CategoryLabel())
	assert.Equal(t, UncategorizedExpense, ExpenseEntry{Category: ptr("")}.CategoryLabel())
	assert.Equal(t, "rent", ExpenseEntry{Category: ptr("rent")}.CategoryLabel())
	assert.Equal(t, "Rent", ExpenseEntry{Category: ptr("Rent")}.CategoryLabel())
}

func TestHasAttachment(t *testing.T) {
	assert.False(t, RevenueEntry{}.HasAttachment())
	assert.False(t, RevenueEntry{AttachmentURL: ptr("")}.HasAttachment())
	assert.True(t, RevenueEntry{AttachmentURL: ptr("https://files/receipt.pdf")}.HasAttachment())
	assert.False(t, ExpenseEntry{AttachmentURL: nil}.HasAttachment())
	assert.True(t, ExpenseEntry{AttachmentURL: ptr("s3://bucket/a.png")}.HasAttachment())
}
