// Package extract pulls structured bill fields out of raw OCR text.
// Each field has its own pattern-driven extractor; Extract runs them all
// and reports whatever was found, leaving absent fields nil or empty.
package extract

import (
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Fields is everything the extractor can recover from one bill's text.
type Fields struct {
	Amount        *decimal.Decimal
	TaxAmount     *decimal.Decimal
	Subtotal      *decimal.Decimal
	CGST          *decimal.Decimal
	SGST          *decimal.Decimal
	Vendor        string
	InvoiceNumber string
	GSTIN         string
	Currency      string
	BillDate      *time.Time
	LineItems     []LineItem
}

// Date finds the bill date in the text and normalizes it.
func Date(text string) *time.Time {
	for _, re := range datePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if t := ParseDate(m[1]); t != nil {
				return t
			}
		}
	}
	return nil
}

// Extract runs every field extractor over the raw OCR text.
func Extract(rawText string) Fields {
	lower := strings.ToLower(rawText)
	lines := splitLines(rawText)

	f := Fields{
		Amount:        Amount(lower),
		TaxAmount:     Tax(lower),
		Subtotal:      Subtotal(lower),
		CGST:          CGST(lower),
		SGST:          SGST(lower),
		Vendor:        Vendor(lines),
		InvoiceNumber: InvoiceNumber(rawText),
		GSTIN:         GSTIN(rawText),
		Currency:      DetectCurrency(rawText),
		BillDate:      Date(rawText),
		LineItems:     LineItems(lines),
	}

	slog.Debug("extract.done",
		"vendor", f.Vendor,
		"invoice_number", f.InvoiceNumber,
		"has_amount", f.Amount != nil,
		"has_date", f.BillDate != nil,
		"line_items", len(f.LineItems),
	)
	return f
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
