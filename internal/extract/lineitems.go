package extract

import (
	"regexp"
	"strings"
)

// LineItem is one row from a bill's goods/services table. Numeric fields
// keep their original OCR formatting for audit; RawLine is the source line.
type LineItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity,omitempty"`
	Rate        string `json:"rate,omitempty"`
	Amount      string `json:"amount,omitempty"`
	RawLine     string `json:"raw_line"`
}

const maxLineItems = 20

var itemsStartKeywords = []string{"goods & service", "description", "item name", "particulars", "sr"}
var itemsEndKeywords = []string{"sub-total", "subtotal", "summery", "summary", "bank details"}

var decimalInLine = regexp.MustCompile(`\d+\.\d{2}`)
var itemNumber = regexp.MustCompile(`^\d+(?:\.\d{2})?$`)

// LineItems scans for the items region (table header to summary footer) and
// parses each line holding a decimal-formatted number. Capped at the first
// 20 matches.
func LineItems(lines []string) []LineItem {
	var items []LineItem
	inItems := false

	for _, line := range lines {
		lower := strings.ToLower(line)

		if containsAny(lower, itemsStartKeywords) {
			inItems = true
			continue
		}
		if containsAny(lower, itemsEndKeywords) {
			break
		}

		if inItems && strings.TrimSpace(line) != "" && decimalInLine.MatchString(line) {
			if item, ok := parseItemLine(line); ok {
				items = append(items, item)
				if len(items) == maxLineItems {
					break
				}
			}
		}
	}
	return items
}

// parseItemLine splits a row into description and numeric columns.
// Column semantics are a heuristic: first number is taken as quantity, last
// as the row total. Rows like "Best Ball Pen 2 Nos 10.00 20.00 22.40" fit;
// anything stranger still round-trips through RawLine.
func parseItemLine(line string) (LineItem, bool) {
	parts := strings.Fields(line)

	var numbers []string
	for _, p := range parts {
		if itemNumber.MatchString(strings.ReplaceAll(p, ",", "")) {
			numbers = append(numbers, strings.ReplaceAll(p, ",", ""))
		}
	}
	if len(numbers) < 3 {
		return LineItem{}, false
	}

	// Description = contiguous leading non-numeric tokens.
	var desc []string
	for _, p := range parts {
		if itemNumber.MatchString(strings.ReplaceAll(p, ",", "")) {
			break
		}
		desc = append(desc, p)
	}

	return LineItem{
		Description: strings.TrimSpace(strings.Join(desc, " ")),
		Quantity:    numbers[0],
		Rate:        numbers[1],
		Amount:      numbers[len(numbers)-1],
		RawLine:     line,
	}, true
}
