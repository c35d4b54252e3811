package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabkitab/bills-tracker/constants"
)

// Bill represents a processed bill for data transfer between layers.
type Bill struct {
	ID            uuid.UUID        `json:"id"`
	UserID        uuid.UUID        `json:"user_id"`
	InvoiceNumber string           `json:"invoice_number,omitempty"`
	Vendor        string           `json:"vendor,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	TaxAmount     *decimal.Decimal `json:"tax_amount,omitempty"`
	Currency      string           `json:"currency"`
	ExchangeRate  decimal.Decimal  `json:"exchange_rate"`
	AmountNPR     *decimal.Decimal `json:"amount_npr,omitempty"`
	BillDate      *time.Time       `json:"bill_date,omitempty"`

	CategoryID        *int64                         `json:"category_id,omitempty"`
	CategoryName      string                         `json:"category_name,omitempty"`
	IsAutoCategorized bool                           `json:"is_auto_categorized"`
	ConfidenceScore   *float64                       `json:"confidence_score,omitempty"`
	Method            constants.CategorizationMethod `json:"categorization_method,omitempty"`

	TransactionType constants.TransactionType `json:"transaction_type"`
	AccountType     constants.AccountType     `json:"account_type"`
	IsDebit         bool                      `json:"is_debit"`

	OCRText   string          `json:"ocr_text,omitempty"`
	LineItems json.RawMessage `json:"line_items,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
