package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Vendor lines are scored, not pattern-matched: invoices put the issuer's
// name near the top but surround it with boilerplate, addresses and the
// recipient's details, so each candidate line earns a signal score and the
// best one wins.

// Whole-line boilerplate that is never a vendor name.
var vendorSkipExact = map[string]struct{}{
	"tax invoice": {}, "invoice": {}, "bill": {}, "original": {}, "duplicate": {},
	"original / duplicate": {}, "original /duplicate": {}, "tax invoice original": {},
	"tax invoice duplicate": {}, "original /duplicate bill": {},
	"tax invoice original /duplicate bill": {}, "receipt": {}, "estimate": {},
	"quotation": {}, "challan": {}, "proforma invoice": {},
}

// Substrings that mark a line as metadata, contact info or the invoice
// recipient ("bill to" names the customer, not the issuer).
var vendorSkipKeywords = []string{
	"gstin", "gst no", "pan no", "cin no", "bill to", "ship to", "contact no",
	"due date", "invoice date", "invoice #", "invoice no", "p.o.#", "terms",
	"buyer name", "buyer", "customer name", "vat/pan no", "address :",
	"issued to", "date issued", "billed to", "sold to", "issued by",
	"attention", "attn:", "client", "customer",
	"@", "email", "mail", ".com", ".net", ".org",
	"|",
}

var (
	vendorNumericLine  = regexp.MustCompile(`^[\d\s\-/:,.#()]+$`)
	vendorAddressStart = regexp.MustCompile(`^[#\d]`)
	vendorAddressWords = regexp.MustCompile(`(?i)(?:plot|building|bldg|floor|street|road|cross|lane|avenue|drive)`)
	vendorContactWords = regexp.MustCompile(`(?i)(?:contact|phone|mobile|email|fax|tel)`)
	legalSuffix        = regexp.MustCompile(`(?i)\b(?:inc\.?|llc|ltd\.?|corp\.?|pvt\.?|limited|corporation|company)\b`)
	trailingBrackets   = regexp.MustCompile(`[\[\]{}()]+$`)
	trailingArtifacts  = regexp.MustCompile(`\s*[\d\]|]+$`)
)

type vendorCandidate struct {
	score int
	line  string
}

// Vendor picks the issuer's name from the first 15 lines of OCR text, or
// returns "" when nothing scores.
func Vendor(lines []string) string {
	var candidates []vendorCandidate

	limit := len(lines)
	if limit > 15 {
		limit = 15
	}
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if len(line) < 3 {
			continue
		}
		lower := strings.ToLower(line)

		if _, skip := vendorSkipExact[lower]; skip {
			continue
		}
		if containsAny(lower, vendorSkipKeywords) {
			continue
		}
		if vendorNumericLine.MatchString(line) {
			continue
		}
		if vendorAddressStart.MatchString(line) || vendorAddressWords.MatchString(lower) {
			continue
		}
		if vendorContactWords.MatchString(lower) {
			continue
		}

		words := strings.Fields(line)
		hasIndicator := containsAny(lower, vendorIndicators)

		switch {
		case legalSuffix.MatchString(lower):
			// Legal-entity suffix is the strongest issuer signal.
			score := 15
			if i >= 1 && i < 5 {
				score += 5
			}
			candidates = append(candidates, vendorCandidate{score, line})

		case isUpperLine(line) && len(line) > 5:
			if len(words) >= 2 || hasIndicator {
				score := 10
				if i >= 2 && i < 8 {
					score += 5
				}
				if hasIndicator {
					score += 3
				}
				candidates = append(candidates, vendorCandidate{score, line})
			} else if len(words) == 1 && len(line) >= 5 {
				// Single-word all-caps brand name very early in the text.
				score := 12
				if i < 5 {
					score += 8
				}
				candidates = append(candidates, vendorCandidate{score, line})
			}

		case startsUpper(line) && !isUpperLine(line) && len(line) > 5:
			capitalized := 0
			for _, w := range words {
				if startsUpper(w) {
					capitalized++
				}
			}
			if capitalized >= 2 || hasIndicator {
				score := 8
				if i >= 1 && i < 5 {
					score += 4
				}
				if hasIndicator {
					score += 3
				}
				candidates = append(candidates, vendorCandidate{score, line})
			}

		case hasIndicator && len(words) >= 2:
			score := 7
			if i >= 2 && i < 8 {
				score += 3
			}
			candidates = append(candidates, vendorCandidate{score, line})
		}
	}

	if len(candidates) == 0 {
		return ""
	}

	// Highest score wins; earlier line wins ties.
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}

	name := trailingBrackets.ReplaceAllString(best.line, "")
	name = trailingArtifacts.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// isUpperLine reports whether the line has letters and none lower-case.
func isUpperLine(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
