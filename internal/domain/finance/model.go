// Package finance holds the money records reports are built from:
// revenue entries, their line items, and expense entries.
package finance

import (
	"strings"
	"time"

	"bizreport/internal/core/id"
	"bizreport/internal/core/types"
)

// UncategorizedExpense is the bucket for expenses without a category.
const UncategorizedExpense = "Uncategorized"

// RevenueEntry is a single recorded inflow of money.
type RevenueEntry struct {
	ID      id.ID `db:"id" json:"id"`
	OwnerID id.ID `db:"owner_id" json:"ownerId"`

	Amount   types.Money `db:"amount" json:"amount"`
	Category *string     `db:"category" json:"category,omitempty"`

	// AttachmentURL points to a proof of sale
	AttachmentURL *string `db:"attachment_url" json:"attachmentUrl,omitempty"`

	Date     time.Time `db:"date" json:"date"`
	ClientID *id.ID    `db:"client_id" json:"clientId,omitempty"`
}

// HasAttachment reports whether a non-blank attachment reference is present.
func (e RevenueEntry) HasAttachment() bool { return present(e.AttachmentURL) }

// CategoryLabel returns the category, or "" when absent or blank.
func (e RevenueEntry) CategoryLabel() string { return label(e.Category) }

// ExpenseEntry is a single recorded outflow of money.
type ExpenseEntry struct {
	ID      id.ID `db:"id" json:"id"`
	OwnerID id.ID `db:"owner_id" json:"ownerId"`

	Amount        types.Money `db:"amount" json:"amount"`
	Category      *string     `db:"category" json:"category,omitempty"`
	AttachmentURL *string     `db:"attachment_url" json:"attachmentUrl,omitempty"`
	CreatedAt     time.Time   `db:"created_at" json:"createdAt"`
}

// HasAttachment reports whether a non-blank attachment reference is present.
func (e ExpenseEntry) HasAttachment() bool { return present(e.AttachmentURL) }

// CategoryLabel returns the category, falling back to UncategorizedExpense.
func (e ExpenseEntry) CategoryLabel() string {
	if l := label(e.Category); l != "" {
		return l
	}
	return UncategorizedExpense
}

// LineItem ties a product quantity to a revenue entry.
type LineItem struct {
	ID             id.ID `db:"id" json:"id"`
	RevenueEntryID id.ID `db:"revenue_entry_id" json:"revenueEntryId"`
	ProductID      id.ID `db:"product_id" json:"productId"`

	// Quantity is expressed in the product's base unit
	Quantity types.Quantity `db:"quantity" json:"quantity"`
	Subtotal types.Money    `db:"subtotal" json:"subtotal"`
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func label(s *string) string {
	if !present(s) {
		return ""
	}
	return *s
}
