// Package classify decides which side of the ledger a bill lands on and
// guards against duplicate uploads. Bills default to expenses; a bill the
// user's own company issued is income instead.
package classify

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/internal/entity"
)

// Role is the classification outcome for one bill.
type Role struct {
	TransactionType constants.TransactionType
	AccountType     constants.AccountType
	IsDebit         bool
	SelfIssued      bool
	MatchedBy       string // "vendor_name", "tax_id" or ""
}

var legalSuffixes = regexp.MustCompile(`(?i)\b(?:pvt\.?|ltd\.?|inc\.?|llc|corp\.?|co\.?|limited|corporation|company|private)\b\.?`)

var nonAlnum = regexp.MustCompile(`[^a-z0-9 ]+`)

// recipientContexts mark lines that name the bill's recipient. A company
// name found only on such a line means the user RECEIVED the bill, it does
// not mean they issued it.
var recipientContexts = []string{
	"bill to", "billed to", "ship to", "sold to", "issued to",
	"customer", "buyer", "client", "attn", "attention",
}

// taxIDLabel anchors a tax-registration number to its label on the page.
// Hyphenated groups ("301-234-567") are captured whole.
var taxIDLabel = regexp.MustCompile(`(?i)(?:pan|vat|tin|gstin)\s*(?:no\.?|number)?\s*[:\-]?\s*([A-Za-z0-9][A-Za-z0-9\-]*)`)

var taxIDSeparators = regexp.MustCompile(`[\s\-]+`)

const minBareTaxIDLen = 9

// Classify determines the transaction role of a bill for the given user
// profile. Default is a debit expense; a self-issued bill (the user's own
// company is the vendor) flips to a credit revenue entry.
func Classify(user *entity.User, vendor, ocrText string) Role {
	role := Role{
		TransactionType: constants.Debit,
		AccountType:     constants.AccountExpense,
		IsDebit:         true,
	}
	if user == nil {
		return role
	}

	if matchesCompanyName(user.CompanyName, vendor, ocrText) {
		role.TransactionType = constants.Credit
		role.AccountType = constants.AccountRevenue
		role.IsDebit = false
		role.SelfIssued = true
		role.MatchedBy = "vendor_name"
	} else if matchesTaxID(user.PANVATNumber, ocrText) {
		role.TransactionType = constants.Credit
		role.AccountType = constants.AccountRevenue
		role.IsDebit = false
		role.SelfIssued = true
		role.MatchedBy = "tax_id"
	}

	if role.SelfIssued {
		slog.Debug("classify.self_issued", "user_id", user.ID, "matched_by", role.MatchedBy)
	}
	return role
}

// normalizeCompany lower-cases a company name and strips punctuation.
func normalizeCompany(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// stripLegalSuffix additionally removes legal-entity suffixes.
func stripLegalSuffix(name string) string {
	return normalizeCompany(legalSuffixes.ReplaceAllString(name, " "))
}

// matchesCompanyName reports whether the user's company appears as the
// bill's issuer. Tried in order: exact normalized match against the
// extracted vendor, suffix-stripped match, then prefix containment of at
// least 5 characters in either direction. Finally the OCR text itself is
// scanned, skipping recipient-context lines.
func matchesCompanyName(companyName, vendor, ocrText string) bool {
	company := normalizeCompany(companyName)
	if company == "" {
		return false
	}
	companyStripped := stripLegalSuffix(companyName)

	if v := normalizeCompany(vendor); v != "" {
		if companyMatches(company, companyStripped, v) {
			return true
		}
	}

	for _, line := range strings.Split(ocrText, "\n") {
		lower := strings.ToLower(line)
		if isRecipientLine(lower) {
			continue
		}
		norm := normalizeCompany(line)
		if norm == "" {
			continue
		}
		if companyMatches(company, companyStripped, norm) {
			return true
		}
	}
	return false
}

func companyMatches(company, companyStripped, candidate string) bool {
	candidateStripped := stripLegalSuffix(candidate)

	if candidate == company {
		return true
	}
	if companyStripped != "" && candidateStripped == companyStripped {
		return true
	}

	// Prefix containment either way, 5 characters minimum so short names
	// like "co" cannot match half the page.
	if len(companyStripped) >= 5 && strings.HasPrefix(candidateStripped, companyStripped) {
		return true
	}
	if len(candidateStripped) >= 5 && strings.HasPrefix(companyStripped, candidateStripped) {
		return true
	}
	return false
}

func isRecipientLine(lower string) bool {
	for _, ctx := range recipientContexts {
		if strings.Contains(lower, ctx) {
			return true
		}
	}
	return false
}

// normalizeTaxID upper-cases a registration number and strips the spaces
// and hyphens people write inside digit groups.
func normalizeTaxID(s string) string {
	return taxIDSeparators.ReplaceAllString(strings.ToUpper(strings.TrimSpace(s)), "")
}

// matchesTaxID reports whether the user's PAN/VAT registration number
// appears on the bill. Both sides are compared separator-free, so
// "301-234-567" and "301234567" are the same number. Label-anchored
// occurrences are checked first; a bare occurrence counts only when the
// number is long enough that a coincidental hit is implausible.
func matchesTaxID(panVAT, ocrText string) bool {
	id := normalizeTaxID(panVAT)
	if id == "" {
		return false
	}
	upper := strings.ToUpper(ocrText)

	for _, m := range taxIDLabel.FindAllStringSubmatch(upper, -1) {
		if normalizeTaxID(m[1]) == id {
			return true
		}
	}

	if len(id) >= minBareTaxIDLen {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(id) + `\b`)
		if err == nil && re.MatchString(upper) {
			return true
		}
	}
	return false
}
