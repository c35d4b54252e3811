package classify

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/internal/entity"
)

func testUser(company, panVAT string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "ram",
		CompanyName:  company,
		PANVATNumber: panVAT,
	}
}

func TestClassifyDefaultsToExpense(t *testing.T) {
	role := Classify(testUser("Himalayan Traders Pvt Ltd", ""), "Starbucks", "TOTAL $12.50")

	assert.Equal(t, constants.Debit, role.TransactionType)
	assert.Equal(t, constants.AccountExpense, role.AccountType)
	assert.True(t, role.IsDebit)
	assert.False(t, role.SelfIssued)
}

func TestClassifyNilUser(t *testing.T) {
	role := Classify(nil, "Starbucks", "")
	assert.True(t, role.IsDebit)
}

func TestClassifySelfIssuedByVendorName(t *testing.T) {
	user := testUser("Himalayan Traders Pvt Ltd", "")

	role := Classify(user, "Himalayan Traders Pvt. Ltd.", "")
	assert.True(t, role.SelfIssued)
	assert.Equal(t, constants.Credit, role.TransactionType)
	assert.Equal(t, constants.AccountRevenue, role.AccountType)
	assert.False(t, role.IsDebit)
	assert.Equal(t, "vendor_name", role.MatchedBy)
}

func TestClassifySelfIssuedSuffixStripped(t *testing.T) {
	user := testUser("Himalayan Traders Pvt Ltd", "")

	// Vendor extracted without the legal suffix.
	role := Classify(user, "Himalayan Traders", "")
	assert.True(t, role.SelfIssued)
}

func TestClassifySelfIssuedPrefixContainment(t *testing.T) {
	user := testUser("Himalayan Traders Pvt Ltd", "")

	// OCR truncated the vendor line.
	role := Classify(user, "Himalayan Traders and Suppliers", "")
	assert.True(t, role.SelfIssued)
}

func TestClassifyRecipientLinesDoNotCount(t *testing.T) {
	user := testUser("Himalayan Traders Pvt Ltd", "")

	// The user's company appears only as the RECIPIENT of the bill.
	ocr := `ACME SUPPLIES INC
Bill To: Himalayan Traders Pvt Ltd
TOTAL 5,000.00`

	role := Classify(user, "ACME SUPPLIES INC", ocr)
	assert.False(t, role.SelfIssued)
	assert.True(t, role.IsDebit)
}

func TestClassifyIssuerLineInBodyCounts(t *testing.T) {
	user := testUser("Himalayan Traders Pvt Ltd", "")

	// Vendor extraction failed but the issuer line is in the text.
	ocr := `TAX INVOICE
Himalayan Traders Pvt Ltd
Bill To: Some Customer`

	role := Classify(user, "", ocr)
	assert.True(t, role.SelfIssued)
	assert.Equal(t, "vendor_name", role.MatchedBy)
}

func TestClassifySelfIssuedByLabeledTaxID(t *testing.T) {
	user := testUser("", "301234567")

	role := Classify(user, "Unknown Vendor", "PAN No: 301234567\nTOTAL 1,200.00")
	assert.True(t, role.SelfIssued)
	assert.Equal(t, "tax_id", role.MatchedBy)
}

func TestClassifyTaxIDIgnoresSeparators(t *testing.T) {
	// Hyphenated registered ID, plain on the page.
	user := testUser("", "301-234-567")
	role := Classify(user, "Unknown Vendor", "PAN No: 301234567\nTOTAL 1,200.00")
	assert.True(t, role.SelfIssued)
	assert.Equal(t, "tax_id", role.MatchedBy)

	// Plain registered ID, hyphenated on the page.
	user = testUser("", "301234567")
	role = Classify(user, "Unknown Vendor", "PAN No: 301-234-567\nTOTAL 1,200.00")
	assert.True(t, role.SelfIssued)
	assert.Equal(t, "tax_id", role.MatchedBy)

	// Different numbers still do not match.
	role = Classify(user, "Unknown Vendor", "PAN No: 301-234-568")
	assert.False(t, role.SelfIssued)
}

func TestClassifyBareTaxIDNeedsLength(t *testing.T) {
	// Nine or more characters may match bare; shorter ones need a label.
	long := testUser("", "301234567")
	role := Classify(long, "", "reg 301234567 listed")
	assert.True(t, role.SelfIssued)

	short := testUser("", "30123")
	role = Classify(short, "", "order 30123 of 2024")
	assert.False(t, role.SelfIssued)
}

func TestClassifyShortCompanyNameNoContainment(t *testing.T) {
	user := testUser("Co", "")

	role := Classify(user, "Coca Cola Company", "")
	assert.False(t, role.SelfIssued)
}
