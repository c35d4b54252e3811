package constants

// TransactionType says which side of the ledger a bill lands on.
type TransactionType string

// Stable values (store these exact strings in DB).
const (
	Debit  TransactionType = "DEBIT"  // expense / asset purchase
	Credit TransactionType = "CREDIT" // income / revenue
)

// AccountType classifies a bill for financial statements.
type AccountType string

const (
	AccountExpense   AccountType = "EXPENSE"
	AccountRevenue   AccountType = "REVENUE"
	AccountAsset     AccountType = "ASSET"
	AccountLiability AccountType = "LIABILITY"
	AccountEquity    AccountType = "EQUITY"
)

// CategorizationMethod records which tier of the cascade produced an
// assignment.
type CategorizationMethod string

const (
	MethodCSVMapping      CategorizationMethod = "csv_mapping"
	MethodCSVMLAgreement  CategorizationMethod = "csv_ml_agreement"
	MethodMLModel         CategorizationMethod = "ml_model"
	MethodCSVFallback     CategorizationMethod = "csv_fallback"
	MethodKeywordFallback CategorizationMethod = "keyword_fallback"
)

// MinConfidence is the acceptance threshold applied by the pipeline: an
// assignment at or below it leaves the bill uncategorized.
const MinConfidence = 0.3
