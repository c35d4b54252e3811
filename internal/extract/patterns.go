package extract

import "regexp"

// The extractor is pattern-list driven: each field has an ordered list of
// matchers and the first (or, for the amount fallback, the best) match wins.
// Order is the contract; append-only within a list unless the priority is
// meant to change.

var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)total\s*amount\s*:?\s*[$₹]?\s*(\d+(?:,\d{3})*\.?\d*)`), // Total Amount : 38026.00
	regexp.MustCompile(`(?i)grand\s*total\s*:?\s*[$₹]?\s*(\d+(?:,\d{3})*\.?\d*)`),  // Grand Total
	regexp.MustCompile(`(?i)total\s*:?\s*[$₹]\s*(\d+(?:,\d{3})*\.?\d*)`),           // TOTAL $154.06
	regexp.MustCompile(`(?i)\$\s*(\d+(?:,\d{3})*\.?\d*)`),                          // $1,234.56
	regexp.MustCompile(`(?i)total\s*:?\s*₹?\$?(\d+(?:,\d{3})*\.?\d*)`),             // Total: $123.45
	regexp.MustCompile(`(?i)amount\s*:?\s*₹?\$?(\d+(?:,\d{3})*\.?\d*)`),            // Amount: 123.45
	regexp.MustCompile(`(?i)₹\s*(\d+(?:,\d{3})*\.?\d*)`),                           // ₹38026.00
}

var taxPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)vat\s*(?:\d+\.?\d*%)\s*[$₹]?\s*(\d+(?:,\d{3})*\.?\d*)`),              // VAT 13% 59,696.00
	regexp.MustCompile(`(?i)(?:sales\s*tax|tax)\s*(?:\d+\.?\d*%)\s*[$₹]?\s*(\d+(?:,\d{3})*\.?\d*)`), // Sales Tax 6.25% 9.06
	regexp.MustCompile(`(?i)(?:cgst|sgst)\s*amt?\s*:?\s*₹?\s*(\d+(?:,\d{3})*\.?\d*)`),            // CGST Amt: 2563.92
	regexp.MustCompile(`(?i)(?:total\s*)?(?:gst|tax)\s*:?\s*[$₹]?\s*(\d+(?:,\d{3})*\.?\d*)`),     // GST: 5127.84
	regexp.MustCompile(`(?i)tax\s*:?\s*\$?(\d+(?:,\d{3})*\.?\d*)`),
	regexp.MustCompile(`(?i)vat\s*:?\s*\$?(\d+(?:,\d{3})*\.?\d*)`),
}

var datePatterns = []*regexp.Regexp{
	// INVOICE DATE 11102019 or 1110212019 (no separators)
	regexp.MustCompile(`(?i)(?:invoice\s+date|inv\.?\s*date|bill\s*date|date\s*of\s*invoice)\s*:?\s*(\d{8,10})`),
	// Invoice Date : 11/02/2019
	regexp.MustCompile(`(?i)(?:invoice\s+date|inv\.?\s*date|bill\s*date|date\s*of\s*invoice)\s*:?\s*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
	// Inv. Date : 10-01-25
	regexp.MustCompile(`(?i)(?:inv\.?\s*date|bill\s*date|date)\s*:?\s*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
	regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
	regexp.MustCompile(`(\d{2,4}[-/]\d{1,2}[-/]\d{1,2})`),
	regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{2,4})`),
}

var invoicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)invoice\s+no\.?\s*[>:]\s*([a-zA-Z0-9\-_/.]+)`),                  // Invoice No. > BSB.O111
	regexp.MustCompile(`(?i)invoice\s+number\s*:?\s*([a-zA-Z0-9\-_/.]+)`),                   // Invoice Number: INV-12345
	regexp.MustCompile(`(?i)bill\s*no\.?\s*[>:]?\s*([a-zA-Z0-9\-_/.]+)`),                    // Bill No: 1
	regexp.MustCompile(`(?i)invoice\s*#\s*:?\s*([a-zA-Z0-9\-_/.]+)`),                        // INVOICE # us-001
	regexp.MustCompile(`(?i)inv\.?\s*no\.?\s*[>:]?\s*([a-zA-Z0-9\-_/.]+)`),                  // Inv. No. : Inv-5
	regexp.MustCompile(`(?i)invoice\s*(?:no|num)\.?\s*:?\s*([a-zA-Z0-9\-_/.]+)`),            // Invoice Num: ABC123
	regexp.MustCompile(`(?i)bill\s*(?:number|#)\.?\s*:?\s*([a-zA-Z0-9\-_/.]+)`),             // Bill Number: 12345
	regexp.MustCompile(`(?i)#\s*:?\s*([a-zA-Z]{2,}-?\d+)`),                                  // # US-001
	regexp.MustCompile(`(?i)invoice\s*:?\s*([a-zA-Z0-9]{3,}(?:[\-_/.][a-zA-Z0-9]+)?)`),      // Invoice: INV001
	// weakest: "Bill ... 123" on the same line; rejected later if date-like
	regexp.MustCompile(`(?i)bill[^\n]{0,30}?(\d{1,6})`),
}

// GSTIN: 2 digits + 5 letters + 4 digits + letter + alnum + Z + alnum.
var gstinStrict = regexp.MustCompile(`\b\d{2}[A-Z]{5}\d{4}[A-Z][A-Z0-9]Z[A-Z0-9]\b`)

// Looser 15-char shape for OCR-damaged GSTINs.
var gstinLoose = regexp.MustCompile(`\b\d{2}[A-Z0-9]{13}\b`)

var subtotalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)sub-total\s*:?\s*₹?\s*(\d+(?:,\d{3})*\.?\d*)`),
	regexp.MustCompile(`(?i)subtotal\s*:?\s*₹?\s*(\d+(?:,\d{3})*\.?\d*)`),
	regexp.MustCompile(`(?i)taxable\s*:?\s*₹?\s*(\d+(?:,\d{3})*\.?\d*)`),
}

var cgstPattern = regexp.MustCompile(`(?i)cgst\s*amt?\s*:?\s*₹?\s*(\d+(?:,\d{3})*\.?\d*)`)
var sgstPattern = regexp.MustCompile(`(?i)sgst\s*amt?\s*:?\s*₹?\s*(\d+(?:,\d{3})*\.?\d*)`)

var grandTotalPattern = regexp.MustCompile(`(?i)grand\s*total\s*:?\s*[$₹]?\s*(\d+(?:,\d{3})*\.?\d*)`)
var totalAmountPattern = regexp.MustCompile(`(?i)total\s*amount\s*:?\s*₹?\s*(\d+(?:,\d{3})*\.?\d*)`)
var inWordsPattern = regexp.MustCompile(`(?i)in\s+words?:?\s*([a-z\s]+)`)
var totalWithAmountPattern = regexp.MustCompile(`(?i)total\s*[|\s]+(\d+(?:,\d{3})*\.?\d*)`)

// vendorIndicators are business-type words that boost a vendor candidate.
var vendorIndicators = []string{
	"store", "market", "shop", "restaurant", "cafe", "gas", "pharmacy",
	"hospital", "clinic", "hotel", "airline", "taxi", "uber", "lyft",
}

// firstMatch runs the ordered pattern list and returns the first capture.
func firstMatch(patterns []*regexp.Regexp, text string) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}
