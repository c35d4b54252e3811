package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorPrefersLegalEntity(t *testing.T) {
	lines := []string{
		"TAX INVOICE",
		"Acme Traders Pvt Ltd",
		"Plot 12, Industrial Road",
		"GSTIN: 22AAAAA0000A1Z5",
		"Bill To: John Smith",
	}
	assert.Equal(t, "Acme Traders Pvt Ltd", Vendor(lines))
}

func TestVendorSingleWordBrand(t *testing.T) {
	lines := []string{
		"STARBUCKS",
		"123 Main Street",
		"Cashier: 42",
	}
	assert.Equal(t, "STARBUCKS", Vendor(lines))
}

func TestVendorSkipsRecipientLines(t *testing.T) {
	lines := []string{
		"INVOICE",
		"Bill To: Mega Corporation Ltd",
		"Issued To: Another Company Inc",
	}
	assert.Equal(t, "", Vendor(lines))
}

func TestVendorStripsTrailingArtifacts(t *testing.T) {
	lines := []string{
		"Himalayan Java Coffee House ]",
		"Thamel",
	}
	assert.Equal(t, "Himalayan Java Coffee House", Vendor(lines))
}

func TestInvoiceNumberLabeled(t *testing.T) {
	cases := map[string]string{
		"Invoice Number: INV-12345": "INV-12345",
		"Invoice No. > BSB.O111":    "BSB.O111",
		"Bill No: 1":                "1",
		"INVOICE # us-001":          "US-001",
	}
	for in, want := range cases {
		assert.Equal(t, want, InvoiceNumber(in), "input %q", in)
	}
}

func TestInvoiceNumberRejectsDateLike(t *testing.T) {
	// Only the weak trailing-digits pattern can fire here, and the capture
	// looks like a year.
	assert.Equal(t, "", InvoiceNumber("bill for services rendered 2019"))
}

func TestInvoiceNumberRejectsDenylist(t *testing.T) {
	assert.Equal(t, "", InvoiceNumber("Invoice No. : Date"))
}

func TestGSTIN(t *testing.T) {
	assert.Equal(t, "22AAAAA0000A1Z5", GSTIN("GSTIN: 22AAAAA0000A1Z5 dated"))
	assert.Equal(t, "", GSTIN("no tax id here"))
}

func TestLineItemsRegion(t *testing.T) {
	lines := []string{
		"Acme Traders Pvt Ltd",
		"Description Qty Rate Amount",
		"Best Ball Pen 2 10.00 20.00",
		"Notebook A4 3 45.00 135.00",
		"Sub-Total 155.00",
		"Stray Row 1 99.00 99.00",
	}
	items := LineItems(lines)
	require.Len(t, items, 2)

	assert.Equal(t, "Best Ball Pen", items[0].Description)
	assert.Equal(t, "2", items[0].Quantity)
	assert.Equal(t, "10.00", items[0].Rate)
	assert.Equal(t, "20.00", items[0].Amount)

	assert.Equal(t, "Notebook A4", items[1].Description)
	assert.Equal(t, "135.00", items[1].Amount)
}

func TestLineItemsCap(t *testing.T) {
	lines := []string{"Particulars"}
	for i := 0; i < 30; i++ {
		lines = append(lines, "Widget 1 10.00 10.00")
	}
	assert.Len(t, LineItems(lines), maxLineItems)
}

func TestDetectCurrency(t *testing.T) {
	cases := map[string]string{
		"Total NPR 1,500.00":           "NPR",
		"Rs. 500 Ps. 00":               "NPR",
		"Kathmandu Mart, Rs. 120":      "NPR",
		"GSTIN: 22AAAAA0000A1Z5":       "INR",
		"Total ₹ 38,026.00":       "INR",
		"Amount Rs. 250":               "INR",
		"TOTAL $154.06":                "USD",
		"Gesamtbetrag €99,00":     "EUR",
		"Total £42.00":            "GBP",
		"no currency markers anywhere": "",
	}
	for in, want := range cases {
		assert.Equal(t, want, DetectCurrency(in), "input %q", in)
	}
}

func TestExtractAssemblesFields(t *testing.T) {
	text := `TAX INVOICE
Acme Traders Pvt Ltd
GSTIN: 22AAAAA0000A1Z5
Invoice Number: INV-12345
Invoice Date : 11/02/2019
Description Qty Rate Amount
Best Ball Pen 2 10.00 20.00
Sub-Total: 20.00
CGST Amt: 1.80
SGST Amt: 1.80
Grand Total: 23.60`

	f := Extract(text)

	assert.Equal(t, "Acme Traders Pvt Ltd", f.Vendor)
	assert.Equal(t, "INV-12345", f.InvoiceNumber)
	assert.Equal(t, "22AAAAA0000A1Z5", f.GSTIN)
	assert.Equal(t, "INR", f.Currency)

	require.NotNil(t, f.Amount)
	assert.Equal(t, "23.6", f.Amount.String())
	require.NotNil(t, f.TaxAmount)
	assert.Equal(t, "3.6", f.TaxAmount.String())
	require.NotNil(t, f.Subtotal)
	assert.Equal(t, "20", f.Subtotal.String())

	require.NotNil(t, f.BillDate)
	assert.Equal(t, "2019-02-11", f.BillDate.Format("2006-01-02"))

	require.Len(t, f.LineItems, 1)
	assert.Equal(t, "Best Ball Pen", f.LineItems[0].Description)
}
