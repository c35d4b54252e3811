package extract

import (
	"regexp"
	"strings"
)

// Words a labeled pattern sometimes captures that are never invoice numbers.
var invoiceDenylist = map[string]struct{}{
	"date": {}, "ltd": {}, "limited": {}, "inc": {}, "corp": {}, "pvt": {},
	"llc": {}, "company": {}, "co": {},
}

var whitespace = regexp.MustCompile(`\s+`)

// InvoiceNumber extracts the invoice/bill number, upper-cased for canonical
// comparison, or "" when nothing credible matches.
func InvoiceNumber(text string) string {
	for i, re := range invoicePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		num := whitespace.ReplaceAllString(strings.TrimSpace(m[1]), "")

		if _, deny := invoiceDenylist[strings.ToLower(num)]; deny {
			continue
		}

		// The final "Bill ... <digits>" pattern is deliberately the weakest;
		// reject matches that look like a printed date.
		if i == len(invoicePatterns)-1 {
			if len(num) >= 4 || strings.Contains(num, "-") || strings.Contains(num, "/") {
				continue
			}
		}

		if len(num) >= 1 && len(num) <= 30 && hasDigit(num) {
			return strings.ToUpper(num)
		}
	}
	return ""
}

// GSTIN extracts the Indian GST identification number, preferring the
// strict 15-character format over the loose OCR-tolerant shape.
func GSTIN(text string) string {
	if m := gstinStrict.FindString(text); m != "" {
		return m
	}
	return gstinLoose.FindString(text)
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
