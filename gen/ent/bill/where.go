// Code generated by ent, DO NOT EDIT.

package bill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hisabkitab/bills-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldUserID, v))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldInvoiceNumber, v))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldVendor, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAmount, v))
}

// TaxAmount applies equality check predicate on the "tax_amount" field. It's identical to TaxAmountEQ.
func TaxAmount(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldTaxAmount, v))
}

// AmountNpr applies equality check predicate on the "amount_npr" field. It's identical to AmountNprEQ.
func AmountNpr(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAmountNpr, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCurrency, v))
}

// ExchangeRate applies equality check predicate on the "exchange_rate" field. It's identical to ExchangeRateEQ.
func ExchangeRate(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldExchangeRate, v))
}

// BillDate applies equality check predicate on the "bill_date" field. It's identical to BillDateEQ.
func BillDate(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldBillDate, v))
}

// IsAutoCategorized applies equality check predicate on the "is_auto_categorized" field. It's identical to IsAutoCategorizedEQ.
func IsAutoCategorized(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldIsAutoCategorized, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldConfidenceScore, v))
}

// CategorizationMethod applies equality check predicate on the "categorization_method" field. It's identical to CategorizationMethodEQ.
func CategorizationMethod(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCategorizationMethod, v))
}

// TransactionType applies equality check predicate on the "transaction_type" field. It's identical to TransactionTypeEQ.
func TransactionType(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldTransactionType, v))
}

// AccountType applies equality check predicate on the "account_type" field. It's identical to AccountTypeEQ.
func AccountType(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAccountType, v))
}

// IsDebit applies equality check predicate on the "is_debit" field. It's identical to IsDebitEQ.
func IsDebit(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldIsDebit, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v int) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCategoryID, v))
}

// OcrText applies equality check predicate on the "ocr_text" field. It's identical to OcrTextEQ.
func OcrText(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldOcrText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldUserID, vs...))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberIsNil applies the IsNil predicate on the "invoice_number" field.
func InvoiceNumberIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldInvoiceNumber))
}

// InvoiceNumberNotNil applies the NotNil predicate on the "invoice_number" field.
func InvoiceNumberNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldInvoiceNumber))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldVendor, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldAmount, v))
}

// AmountIsNil applies the IsNil predicate on the "amount" field.
func AmountIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldAmount))
}

// AmountNotNil applies the NotNil predicate on the "amount" field.
func AmountNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldAmount))
}

// TaxAmountEQ applies the EQ predicate on the "tax_amount" field.
func TaxAmountEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldTaxAmount, v))
}

// TaxAmountNEQ applies the NEQ predicate on the "tax_amount" field.
func TaxAmountNEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldTaxAmount, v))
}

// TaxAmountIn applies the In predicate on the "tax_amount" field.
func TaxAmountIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldTaxAmount, vs...))
}

// TaxAmountNotIn applies the NotIn predicate on the "tax_amount" field.
func TaxAmountNotIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldTaxAmount, vs...))
}

// TaxAmountGT applies the GT predicate on the "tax_amount" field.
func TaxAmountGT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldTaxAmount, v))
}

// TaxAmountGTE applies the GTE predicate on the "tax_amount" field.
func TaxAmountGTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldTaxAmount, v))
}

// TaxAmountLT applies the LT predicate on the "tax_amount" field.
func TaxAmountLT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldTaxAmount, v))
}

// TaxAmountLTE applies the LTE predicate on the "tax_amount" field.
func TaxAmountLTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldTaxAmount, v))
}

// TaxAmountIsNil applies the IsNil predicate on the "tax_amount" field.
func TaxAmountIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldTaxAmount))
}

// TaxAmountNotNil applies the NotNil predicate on the "tax_amount" field.
func TaxAmountNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldTaxAmount))
}

// AmountNprEQ applies the EQ predicate on the "amount_npr" field.
func AmountNprEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAmountNpr, v))
}

// AmountNprNEQ applies the NEQ predicate on the "amount_npr" field.
func AmountNprNEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldAmountNpr, v))
}

// AmountNprIn applies the In predicate on the "amount_npr" field.
func AmountNprIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldAmountNpr, vs...))
}

// AmountNprNotIn applies the NotIn predicate on the "amount_npr" field.
func AmountNprNotIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldAmountNpr, vs...))
}

// AmountNprGT applies the GT predicate on the "amount_npr" field.
func AmountNprGT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldAmountNpr, v))
}

// AmountNprGTE applies the GTE predicate on the "amount_npr" field.
func AmountNprGTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldAmountNpr, v))
}

// AmountNprLT applies the LT predicate on the "amount_npr" field.
func AmountNprLT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldAmountNpr, v))
}

// AmountNprLTE applies the LTE predicate on the "amount_npr" field.
func AmountNprLTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldAmountNpr, v))
}

// AmountNprIsNil applies the IsNil predicate on the "amount_npr" field.
func AmountNprIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldAmountNpr))
}

// AmountNprNotNil applies the NotNil predicate on the "amount_npr" field.
func AmountNprNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldAmountNpr))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldCurrency, v))
}

// ExchangeRateEQ applies the EQ predicate on the "exchange_rate" field.
func ExchangeRateEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldExchangeRate, v))
}

// ExchangeRateNEQ applies the NEQ predicate on the "exchange_rate" field.
func ExchangeRateNEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldExchangeRate, v))
}

// ExchangeRateIn applies the In predicate on the "exchange_rate" field.
func ExchangeRateIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldExchangeRate, vs...))
}

// ExchangeRateNotIn applies the NotIn predicate on the "exchange_rate" field.
func ExchangeRateNotIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldExchangeRate, vs...))
}

// ExchangeRateGT applies the GT predicate on the "exchange_rate" field.
func ExchangeRateGT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldExchangeRate, v))
}

// ExchangeRateGTE applies the GTE predicate on the "exchange_rate" field.
func ExchangeRateGTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldExchangeRate, v))
}

// ExchangeRateLT applies the LT predicate on the "exchange_rate" field.
func ExchangeRateLT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldExchangeRate, v))
}

// ExchangeRateLTE applies the LTE predicate on the "exchange_rate" field.
func ExchangeRateLTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldExchangeRate, v))
}

// BillDateEQ applies the EQ predicate on the "bill_date" field.
func BillDateEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldBillDate, v))
}

// BillDateNEQ applies the NEQ predicate on the "bill_date" field.
func BillDateNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldBillDate, v))
}

// BillDateIn applies the In predicate on the "bill_date" field.
func BillDateIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldBillDate, vs...))
}

// BillDateNotIn applies the NotIn predicate on the "bill_date" field.
func BillDateNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldBillDate, vs...))
}

// BillDateGT applies the GT predicate on the "bill_date" field.
func BillDateGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldBillDate, v))
}

// BillDateGTE applies the GTE predicate on the "bill_date" field.
func BillDateGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldBillDate, v))
}

// BillDateLT applies the LT predicate on the "bill_date" field.
func BillDateLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldBillDate, v))
}

// BillDateLTE applies the LTE predicate on the "bill_date" field.
func BillDateLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldBillDate, v))
}

// BillDateIsNil applies the IsNil predicate on the "bill_date" field.
func BillDateIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldBillDate))
}

// BillDateNotNil applies the NotNil predicate on the "bill_date" field.
func BillDateNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldBillDate))
}

// IsAutoCategorizedEQ applies the EQ predicate on the "is_auto_categorized" field.
func IsAutoCategorizedEQ(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldIsAutoCategorized, v))
}

// IsAutoCategorizedNEQ applies the NEQ predicate on the "is_auto_categorized" field.
func IsAutoCategorizedNEQ(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldIsAutoCategorized, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldConfidenceScore))
}

// CategorizationMethodEQ applies the EQ predicate on the "categorization_method" field.
func CategorizationMethodEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCategorizationMethod, v))
}

// CategorizationMethodNEQ applies the NEQ predicate on the "categorization_method" field.
func CategorizationMethodNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCategorizationMethod, v))
}

// CategorizationMethodIn applies the In predicate on the "categorization_method" field.
func CategorizationMethodIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCategorizationMethod, vs...))
}

// CategorizationMethodNotIn applies the NotIn predicate on the "categorization_method" field.
func CategorizationMethodNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCategorizationMethod, vs...))
}

// CategorizationMethodGT applies the GT predicate on the "categorization_method" field.
func CategorizationMethodGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCategorizationMethod, v))
}

// CategorizationMethodGTE applies the GTE predicate on the "categorization_method" field.
func CategorizationMethodGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCategorizationMethod, v))
}

// CategorizationMethodLT applies the LT predicate on the "categorization_method" field.
func CategorizationMethodLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCategorizationMethod, v))
}

// CategorizationMethodLTE applies the LTE predicate on the "categorization_method" field.
func CategorizationMethodLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCategorizationMethod, v))
}

// CategorizationMethodContains applies the Contains predicate on the "categorization_method" field.
func CategorizationMethodContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldCategorizationMethod, v))
}

// CategorizationMethodHasPrefix applies the HasPrefix predicate on the "categorization_method" field.
func CategorizationMethodHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldCategorizationMethod, v))
}

// CategorizationMethodHasSuffix applies the HasSuffix predicate on the "categorization_method" field.
func CategorizationMethodHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldCategorizationMethod, v))
}

// CategorizationMethodIsNil applies the IsNil predicate on the "categorization_method" field.
func CategorizationMethodIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldCategorizationMethod))
}

// CategorizationMethodNotNil applies the NotNil predicate on the "categorization_method" field.
func CategorizationMethodNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldCategorizationMethod))
}

// CategorizationMethodEqualFold applies the EqualFold predicate on the "categorization_method" field.
func CategorizationMethodEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldCategorizationMethod, v))
}

// CategorizationMethodContainsFold applies the ContainsFold predicate on the "categorization_method" field.
func CategorizationMethodContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldCategorizationMethod, v))
}

// TransactionTypeEQ applies the EQ predicate on the "transaction_type" field.
func TransactionTypeEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldTransactionType, v))
}

// TransactionTypeNEQ applies the NEQ predicate on the "transaction_type" field.
func TransactionTypeNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldTransactionType, v))
}

// TransactionTypeIn applies the In predicate on the "transaction_type" field.
func TransactionTypeIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldTransactionType, vs...))
}

// TransactionTypeNotIn applies the NotIn predicate on the "transaction_type" field.
func TransactionTypeNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldTransactionType, vs...))
}

// TransactionTypeGT applies the GT predicate on the "transaction_type" field.
func TransactionTypeGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldTransactionType, v))
}

// TransactionTypeGTE applies the GTE predicate on the "transaction_type" field.
func TransactionTypeGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldTransactionType, v))
}

// TransactionTypeLT applies the LT predicate on the "transaction_type" field.
func TransactionTypeLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldTransactionType, v))
}

// TransactionTypeLTE applies the LTE predicate on the "transaction_type" field.
func TransactionTypeLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldTransactionType, v))
}

// TransactionTypeContains applies the Contains predicate on the "transaction_type" field.
func TransactionTypeContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldTransactionType, v))
}

// TransactionTypeHasPrefix applies the HasPrefix predicate on the "transaction_type" field.
func TransactionTypeHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldTransactionType, v))
}

// TransactionTypeHasSuffix applies the HasSuffix predicate on the "transaction_type" field.
func TransactionTypeHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldTransactionType, v))
}

// TransactionTypeEqualFold applies the EqualFold predicate on the "transaction_type" field.
func TransactionTypeEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldTransactionType, v))
}

// TransactionTypeContainsFold applies the ContainsFold predicate on the "transaction_type" field.
func TransactionTypeContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldTransactionType, v))
}

// AccountTypeEQ applies the EQ predicate on the "account_type" field.
func AccountTypeEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAccountType, v))
}

// AccountTypeNEQ applies the NEQ predicate on the "account_type" field.
func AccountTypeNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldAccountType, v))
}

// AccountTypeIn applies the In predicate on the "account_type" field.
func AccountTypeIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldAccountType, vs...))
}

// AccountTypeNotIn applies the NotIn predicate on the "account_type" field.
func AccountTypeNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldAccountType, vs...))
}

// AccountTypeGT applies the GT predicate on the "account_type" field.
func AccountTypeGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldAccountType, v))
}

// AccountTypeGTE applies the GTE predicate on the "account_type" field.
func AccountTypeGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldAccountType, v))
}

// AccountTypeLT applies the LT predicate on the "account_type" field.
func AccountTypeLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldAccountType, v))
}

// AccountTypeLTE applies the LTE predicate on the "account_type" field.
func AccountTypeLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldAccountType, v))
}

// AccountTypeContains applies the Contains predicate on the "account_type" field.
func AccountTypeContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldAccountType, v))
}

// AccountTypeHasPrefix applies the HasPrefix predicate on the "account_type" field.
func AccountTypeHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldAccountType, v))
}

// AccountTypeHasSuffix applies the HasSuffix predicate on the "account_type" field.
func AccountTypeHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldAccountType, v))
}

// AccountTypeEqualFold applies the EqualFold predicate on the "account_type" field.
func AccountTypeEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldAccountType, v))
}

// AccountTypeContainsFold applies the ContainsFold predicate on the "account_type" field.
func AccountTypeContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldAccountType, v))
}

// IsDebitEQ applies the EQ predicate on the "is_debit" field.
func IsDebitEQ(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldIsDebit, v))
}

// IsDebitNEQ applies the NEQ predicate on the "is_debit" field.
func IsDebitNEQ(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldIsDebit, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v int) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v int) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...int) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...int) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDIsNil applies the IsNil predicate on the "category_id" field.
func CategoryIDIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldCategoryID))
}

// CategoryIDNotNil applies the NotNil predicate on the "category_id" field.
func CategoryIDNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldCategoryID))
}

// OcrTextEQ applies the EQ predicate on the "ocr_text" field.
func OcrTextEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldOcrText, v))
}

// OcrTextNEQ applies the NEQ predicate on the "ocr_text" field.
func OcrTextNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldOcrText, v))
}

// OcrTextIn applies the In predicate on the "ocr_text" field.
func OcrTextIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldOcrText, vs...))
}

// OcrTextNotIn applies the NotIn predicate on the "ocr_text" field.
func OcrTextNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldOcrText, vs...))
}

// OcrTextGT applies the GT predicate on the "ocr_text" field.
func OcrTextGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldOcrText, v))
}

// OcrTextGTE applies the GTE predicate on the "ocr_text" field.
func OcrTextGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldOcrText, v))
}

// OcrTextLT applies the LT predicate on the "ocr_text" field.
func OcrTextLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldOcrText, v))
}

// OcrTextLTE applies the LTE predicate on the "ocr_text" field.
func OcrTextLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldOcrText, v))
}

// OcrTextContains applies the Contains predicate on the "ocr_text" field.
func OcrTextContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldOcrText, v))
}

// OcrTextHasPrefix applies the HasPrefix predicate on the "ocr_text" field.
func OcrTextHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldOcrText, v))
}

// OcrTextHasSuffix applies the HasSuffix predicate on the "ocr_text" field.
func OcrTextHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldOcrText, v))
}

// OcrTextIsNil applies the IsNil predicate on the "ocr_text" field.
func OcrTextIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldOcrText))
}

// OcrTextNotNil applies the NotNil predicate on the "ocr_text" field.
func OcrTextNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldOcrText))
}

// OcrTextEqualFold applies the EqualFold predicate on the "ocr_text" field.
func OcrTextEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldOcrText, v))
}

// OcrTextContainsFold applies the ContainsFold predicate on the "ocr_text" field.
func OcrTextContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldOcrText, v))
}

// LineItemsIsNil applies the IsNil predicate on the "line_items" field.
func LineItemsIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldLineItems))
}

// LineItemsNotNil applies the NotNil predicate on the "line_items" field.
func LineItemsNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldLineItems))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Bill {
	return predicate.Bill(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Bill {
	return predicate.Bill(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCategory applies the HasEdge predicate on the "category" edge.
func HasCategory() predicate.Bill {
	return predicate.Bill(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryWith applies the HasEdge predicate on the "category" edge with a given conditions (other predicates).
func HasCategoryWith(preds ...predicate.Category) predicate.Bill {
	return predicate.Bill(func(s *sql.Selector) {
		step := newCategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.NotPredicates(p))
}
