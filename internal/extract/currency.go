package extract

import (
	"strings"

	"github.com/hisabkitab/bills-tracker/constants"
)

// DetectCurrency infers the bill currency from OCR text. NPR markers are
// checked first because the generic rupee indicators ("rs.") are shared
// with INR; a bare rupee reference defaults to INR.
func DetectCurrency(ocrText string) string {
	t := strings.ToLower(ocrText)

	switch {
	case strings.Contains(t, "npr"),
		strings.Contains(t, "nepali"),
		strings.Contains(t, "rs.") && strings.Contains(t, "ps."),
		strings.Contains(t, "chitwan"),
		strings.Contains(t, "kathmandu"):
		return constants.CurrencyNPR
	case strings.Contains(t, "₹"),
		strings.Contains(t, "inr"),
		strings.Contains(t, "gstin"),
		strings.Contains(t, "gst"):
		return constants.CurrencyINR
	case strings.Contains(t, "rupee"), strings.Contains(t, "rs."):
		return constants.CurrencyINR
	case strings.Contains(t, "$"), strings.Contains(t, "usd"):
		return constants.CurrencyUSD
	case strings.Contains(t, "€"), strings.Contains(t, "eur"):
		return constants.CurrencyEUR
	case strings.Contains(t, "£"), strings.Contains(t, "gbp"):
		return constants.CurrencyGBP
	}
	return ""
}
