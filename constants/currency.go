package constants

import "github.com/shopspring/decimal"

// Currency codes the extractor can detect from OCR text.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
	CurrencyINR = "INR"
	CurrencyNPR = "NPR"
	CurrencyCAD = "CAD"
	CurrencyAUD = "AUD"
)

// exchangeRatesNPR are static rates to NPR. Live rate fetching is out of
// scope; these are snapshot values refreshed manually.
var exchangeRatesNPR = map[string]decimal.Decimal{
	CurrencyNPR: decimal.RequireFromString("1.0000"),
	CurrencyUSD: decimal.RequireFromString("132.50"),
	CurrencyEUR: decimal.RequireFromString("145.00"),
	CurrencyGBP: decimal.RequireFromString("168.00"),
	CurrencyCAD: decimal.RequireFromString("95.00"),
	CurrencyAUD: decimal.RequireFromString("85.00"),
	CurrencyINR: decimal.RequireFromString("1.60"),
}

// ExchangeRateNPR returns the conversion rate from code to NPR. Unknown
// currencies convert at 1:1 rather than failing the pipeline.
func ExchangeRateNPR(code string) decimal.Decimal {
	if r, ok := exchangeRatesNPR[code]; ok {
		return r
	}
	return decimal.RequireFromString("1.0000")
}
