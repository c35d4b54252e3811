// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/hisabkitab/bills-tracker/db/ent/schema"
	"github.com/hisabkitab/bills-tracker/gen/ent/bill"
	"github.com/hisabkitab/bills-tracker/gen/ent/category"
	"github.com/hisabkitab/bills-tracker/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billFields := schema.Bill{}.Fields()
	_ = billFields
	// billDescVendor is the schema descriptor for vendor field.
	billDescVendor := billFields[3].Descriptor()
	// bill.DefaultVendor holds the default value on creation for the vendor field.
	bill.DefaultVendor = billDescVendor.Default.(string)
	// billDescCurrency is the schema descriptor for currency field.
	billDescCurrency := billFields[7].Descriptor()
	// bill.DefaultCurrency holds the default value on creation for the currency field.
	bill.DefaultCurrency = billDescCurrency.Default.(string)
	// bill.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	bill.CurrencyValidator = func() func(string) error {
		validators := billDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// billDescExchangeRate is the schema descriptor for exchange_rate field.
	billDescExchangeRate := billFields[8].Descriptor()
	// bill.DefaultExchangeRate holds the default value on creation for the exchange_rate field.
	bill.DefaultExchangeRate = billDescExchangeRate.Default.(float64)
	// billDescIsAutoCategorized is the schema descriptor for is_auto_categorized field.
	billDescIsAutoCategorized := billFields[10].Descriptor()
	// bill.DefaultIsAutoCategorized holds the default value on creation for the is_auto_categorized field.
	bill.DefaultIsAutoCategorized = billDescIsAutoCategorized.Default.(bool)
	// billDescCategorizationMethod is the schema descriptor for categorization_method field.
	billDescCategorizationMethod := billFields[12].Descriptor()
	// bill.DefaultCategorizationMethod holds the default value on creation for the categorization_method field.
	bill.DefaultCategorizationMethod = billDescCategorizationMethod.Default.(string)
	// billDescTransactionType is the schema descriptor for transaction_type field.
	billDescTransactionType := billFields[13].Descriptor()
	// bill.DefaultTransactionType holds the default value on creation for the transaction_type field.
	bill.DefaultTransactionType = billDescTransactionType.Default.(string)
	// bill.TransactionTypeValidator is a validator for the "transaction_type" field. It is called by the builders before save.
	bill.TransactionTypeValidator = billDescTransactionType.Validators[0].(func(string) error)
	// billDescAccountType is the schema descriptor for account_type field.
	billDescAccountType := billFields[14].Descriptor()
	// bill.DefaultAccountType holds the default value on creation for the account_type field.
	bill.DefaultAccountType = billDescAccountType.Default.(string)
	// bill.AccountTypeValidator is a validator for the "account_type" field. It is called by the builders before save.
	bill.AccountTypeValidator = billDescAccountType.Validators[0].(func(string) error)
	// billDescIsDebit is the schema descriptor for is_debit field.
	billDescIsDebit := billFields[15].Descriptor()
	// bill.DefaultIsDebit holds the default value on creation for the is_debit field.
	bill.DefaultIsDebit = billDescIsDebit.Default.(bool)
	// billDescOcrText is the schema descriptor for ocr_text field.
	billDescOcrText := billFields[17].Descriptor()
	// bill.DefaultOcrText holds the default value on creation for the ocr_text field.
	bill.DefaultOcrText = billDescOcrText.Default.(string)
	// billDescCreatedAt is the schema descriptor for created_at field.
	billDescCreatedAt := billFields[19].Descriptor()
	// bill.DefaultCreatedAt holds the default value on creation for the created_at field.
	bill.DefaultCreatedAt = billDescCreatedAt.Default.(func() time.Time)
	// billDescUpdatedAt is the schema descriptor for updated_at field.
	billDescUpdatedAt := billFields[20].Descriptor()
	// bill.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bill.DefaultUpdatedAt = billDescUpdatedAt.Default.(func() time.Time)
	// bill.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bill.UpdateDefaultUpdatedAt = billDescUpdatedAt.UpdateDefault.(func() time.Time)
	// billDescID is the schema descriptor for id field.
	billDescID := billFields[0].Descriptor()
	// bill.DefaultID holds the default value on creation for the id field.
	bill.DefaultID = billDescID.Default.(func() uuid.UUID)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[0].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescCategoryType is the schema descriptor for category_type field.
	categoryDescCategoryType := categoryFields[1].Descriptor()
	// category.DefaultCategoryType holds the default value on creation for the category_type field.
	category.DefaultCategoryType = categoryDescCategoryType.Default.(string)
	// category.CategoryTypeValidator is a validator for the "category_type" field. It is called by the builders before save.
	category.CategoryTypeValidator = categoryDescCategoryType.Validators[0].(func(string) error)
	// categoryDescKeywords is the schema descriptor for keywords field.
	categoryDescKeywords := categoryFields[2].Descriptor()
	// category.DefaultKeywords holds the default value on creation for the keywords field.
	category.DefaultKeywords = categoryDescKeywords.Default.(string)
	// categoryDescColor is the schema descriptor for color field.
	categoryDescColor := categoryFields[3].Descriptor()
	// category.DefaultColor holds the default value on creation for the color field.
	category.DefaultColor = categoryDescColor.Default.(string)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
