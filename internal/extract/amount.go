package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Money parsing is exact-decimal throughout: binary floats drift on
// currency values, so every numeric capture goes through shopspring/decimal.

func parseMoney(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "." {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Amount returns the bill's grand total, or nil when no candidate matches.
// Priority: labeled "Grand Total", labeled "Total Amount", the "In Words"
// spelled-out amount, a bare "Total <n>", then the largest of all generic
// pattern hits (the grand total is usually the biggest number on the page).
func Amount(text string) *decimal.Decimal {
	if m := grandTotalPattern.FindStringSubmatch(text); m != nil {
		if d, ok := parseMoney(m[1]); ok {
			return &d
		}
	}

	if m := totalAmountPattern.FindStringSubmatch(text); m != nil {
		if d, ok := parseMoney(m[1]); ok {
			return &d
		}
	}

	if m := inWordsPattern.FindStringSubmatch(text); m != nil {
		if d, ok := wordsToNumber(m[1]); ok {
			return &d
		}
	}

	if m := totalWithAmountPattern.FindStringSubmatch(text); m != nil {
		if d, ok := parseMoney(m[1]); ok {
			return &d
		}
	}

	var best *decimal.Decimal
	for _, re := range amountPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			d, ok := parseMoney(m[1])
			if !ok {
				continue
			}
			if best == nil || d.GreaterThan(*best) {
				dd := d
				best = &dd
			}
		}
	}
	return best
}

// Tax sums CGST+SGST when both are present (Indian GST convention) and
// otherwise takes the first generic tax pattern hit.
func Tax(text string) *decimal.Decimal {
	cgst := CGST(text)
	sgst := SGST(text)
	if cgst != nil && sgst != nil {
		sum := cgst.Add(*sgst)
		return &sum
	}

	for _, re := range taxPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if d, ok := parseMoney(m[1]); ok {
				return &d
			}
		}
	}
	return nil
}

// Subtotal extracts the pre-tax subtotal.
func Subtotal(text string) *decimal.Decimal {
	for _, re := range subtotalPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if d, ok := parseMoney(m[1]); ok {
				return &d
			}
		}
	}
	return nil
}

// CGST extracts the central GST component.
func CGST(text string) *decimal.Decimal {
	if m := cgstPattern.FindStringSubmatch(text); m != nil {
		if d, ok := parseMoney(m[1]); ok {
			return &d
		}
	}
	return nil
}

// SGST extracts the state GST component.
func SGST(text string) *decimal.Decimal {
	if m := sgstPattern.FindStringSubmatch(text); m != nil {
		if d, ok := parseMoney(m[1]); ok {
			return &d
		}
	}
	return nil
}

var numberWords = map[string]int64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"thirty": 30, "forty": 40, "fifty": 50, "sixty": 60, "seventy": 70,
	"eighty": 80, "ninety": 90, "hundred": 100, "thousand": 1000,
	"lakh": 100000, "lakhs": 100000, "million": 1000000,
}

var fillerWords = regexp.MustCompile(`(?i)\b(rupees?|only|and)\b`)

// wordsToNumber converts a spelled-out amount ("six thousand nine hundred")
// to a decimal. Supports the South-Asian lakh scale; filler words like
// "rupees", "only" and "and" are stripped first.
func wordsToNumber(text string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(fillerWords.ReplaceAllString(text, ""))

	var total, current int64
	for _, word := range strings.Fields(text) {
		n, ok := numberWords[strings.ToLower(strings.TrimSpace(word))]
		if !ok {
			continue
		}
		switch {
		case n >= 1000:
			if current == 0 {
				current = 1
			}
			total += current * n
			current = 0
		case n == 100:
			if current == 0 {
				current = 1
			}
			current *= n
		default:
			current += n
		}
	}
	total += current
	if total <= 0 {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromInt(total), true
}
