// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hisabkitab/bills-tracker/gen/ent/bill"
	"github.com/hisabkitab/bills-tracker/gen/ent/category"
	"github.com/hisabkitab/bills-tracker/gen/ent/predicate"
	"github.com/hisabkitab/bills-tracker/gen/ent/user"
)

// BillUpdate is the builder for updating Bill entities.
type BillUpdate struct {
	config
	hooks    []Hook
	mutation *BillMutation
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdate) Where(ps ...predicate.Bill) *BillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BillUpdate) SetUserID(v uuid.UUID) *BillUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableUserID(v *uuid.UUID) *BillUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *BillUpdate) SetInvoiceNumber(v string) *BillUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *BillUpdate) SetNillableInvoiceNumber(v *string) *BillUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *BillUpdate) ClearInvoiceNumber() *BillUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *BillUpdate) SetVendor(v string) *BillUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *BillUpdate) SetNillableVendor(v *string) *BillUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillUpdate) SetAmount(v float64) *BillUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillUpdate) SetNillableAmount(v *float64) *BillUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillUpdate) AddAmount(v float64) *BillUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *BillUpdate) ClearAmount() *BillUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *BillUpdate) SetTaxAmount(v float64) *BillUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *BillUpdate) SetNillableTaxAmount(v *float64) *BillUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *BillUpdate) AddTaxAmount(v float64) *BillUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *BillUpdate) ClearTaxAmount() *BillUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetAmountNpr sets the "amount_npr" field.
func (_u *BillUpdate) SetAmountNpr(v float64) *BillUpdate {
	_u.mutation.ResetAmountNpr()
	_u.mutation.SetAmountNpr(v)
	return _u
}

// SetNillableAmountNpr sets the "amount_npr" field if the given value is not nil.
func (_u *BillUpdate) SetNillableAmountNpr(v *float64) *BillUpdate {
	if v != nil {
		_u.SetAmountNpr(*v)
	}
	return _u
}

// AddAmountNpr adds value to the "amount_npr" field.
func (_u *BillUpdate) AddAmountNpr(v float64) *BillUpdate {
	_u.mutation.AddAmountNpr(v)
	return _u
}

// ClearAmountNpr clears the value of the "amount_npr" field.
func (_u *BillUpdate) ClearAmountNpr() *BillUpdate {
	_u.mutation.ClearAmountNpr()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *BillUpdate) SetCurrency(v string) *BillUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCurrency(v *string) *BillUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetExchangeRate sets the "exchange_rate" field.
func (_u *BillUpdate) SetExchangeRate(v float64) *BillUpdate {
	_u.mutation.ResetExchangeRate()
	_u.mutation.SetExchangeRate(v)
	return _u
}

// SetNillableExchangeRate sets the "exchange_rate" field if the given value is not nil.
func (_u *BillUpdate) SetNillableExchangeRate(v *float64) *BillUpdate {
	if v != nil {
		_u.SetExchangeRate(*v)
	}
	return _u
}

// AddExchangeRate adds value to the "exchange_rate" field.
func (_u *BillUpdate) AddExchangeRate(v float64) *BillUpdate {
	_u.mutation.AddExchangeRate(v)
	return _u
}

// SetBillDate sets the "bill_date" field.
func (_u *BillUpdate) SetBillDate(v time.Time) *BillUpdate {
	_u.mutation.SetBillDate(v)
	return _u
}

// SetNillableBillDate sets the "bill_date" field if the given value is not nil.
func (_u *BillUpdate) SetNillableBillDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetBillDate(*v)
	}
	return _u
}

// ClearBillDate clears the value of the "bill_date" field.
func (_u *BillUpdate) ClearBillDate() *BillUpdate {
	_u.mutation.ClearBillDate()
	return _u
}

// SetIsAutoCategorized sets the "is_auto_categorized" field.
func (_u *BillUpdate) SetIsAutoCategorized(v bool) *BillUpdate {
	_u.mutation.SetIsAutoCategorized(v)
	return _u
}

// SetNillableIsAutoCategorized sets the "is_auto_categorized" field if the given value is not nil.
func (_u *BillUpdate) SetNillableIsAutoCategorized(v *bool) *BillUpdate {
	if v != nil {
		_u.SetIsAutoCategorized(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *BillUpdate) SetConfidenceScore(v float64) *BillUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *BillUpdate) SetNillableConfidenceScore(v *float64) *BillUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *BillUpdate) AddConfidenceScore(v float64) *BillUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *BillUpdate) ClearConfidenceScore() *BillUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetCategorizationMethod sets the "categorization_method" field.
func (_u *BillUpdate) SetCategorizationMethod(v string) *BillUpdate {
	_u.mutation.SetCategorizationMethod(v)
	return _u
}

// SetNillableCategorizationMethod sets the "categorization_method" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCategorizationMethod(v *string) *BillUpdate {
	if v != nil {
		_u.SetCategorizationMethod(*v)
	}
	return _u
}

// ClearCategorizationMethod clears the value of the "categorization_method" field.
func (_u *BillUpdate) ClearCategorizationMethod() *BillUpdate {
	_u.mutation.ClearCategorizationMethod()
	return _u
}

// SetTransactionType sets the "transaction_type" field.
func (_u *BillUpdate) SetTransactionType(v string) *BillUpdate {
	_u.mutation.SetTransactionType(v)
	return _u
}

// SetNillableTransactionType sets the "transaction_type" field if the given value is not nil.
func (_u *BillUpdate) SetNillableTransactionType(v *string) *BillUpdate {
	if v != nil {
		_u.SetTransactionType(*v)
	}
	return _u
}

// SetAccountType sets the "account_type" field.
func (_u *BillUpdate) SetAccountType(v string) *BillUpdate {
	_u.mutation.SetAccountType(v)
	return _u
}

// SetNillableAccountType sets the "account_type" field if the given value is not nil.
func (_u *BillUpdate) SetNillableAccountType(v *string) *BillUpdate {
	if v != nil {
		_u.SetAccountType(*v)
	}
	return _u
}

// SetIsDebit sets the "is_debit" field.
func (_u *BillUpdate) SetIsDebit(v bool) *BillUpdate {
	_u.mutation.SetIsDebit(v)
	return _u
}

// SetNillableIsDebit sets the "is_debit" field if the given value is not nil.
func (_u *BillUpdate) SetNillableIsDebit(v *bool) *BillUpdate {
	if v != nil {
		_u.SetIsDebit(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *BillUpdate) SetCategoryID(v int) *BillUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCategoryID(v *int) *BillUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// ClearCategoryID clears the value of the "category_id" field.
func (_u *BillUpdate) ClearCategoryID() *BillUpdate {
	_u.mutation.ClearCategoryID()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *BillUpdate) SetOcrText(v string) *BillUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *BillUpdate) SetNillableOcrText(v *string) *BillUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *BillUpdate) ClearOcrText() *BillUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *BillUpdate) SetLineItems(v json.RawMessage) *BillUpdate {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *BillUpdate) AppendLineItems(v json.RawMessage) *BillUpdate {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *BillUpdate) ClearLineItems() *BillUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillUpdate) SetCreatedAt(v time.Time) *BillUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCreatedAt(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillUpdate) SetUpdatedAt(v time.Time) *BillUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *BillUpdate) SetUser(v *User) *BillUpdate {
	return _u.SetUserID(v.ID)
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *BillUpdate) SetCategory(v *Category) *BillUpdate {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdate) Mutation() *BillMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *BillUpdate) ClearUser() *BillUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *BillUpdate) ClearCategory() *BillUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdate) check() error {
	if v, ok := _u.mutation.Currency(); ok {
		if err := bill.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Bill.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TransactionType(); ok {
		if err := bill.TransactionTypeValidator(v); err != nil {
			return &ValidationError{Name: "transaction_type", err: fmt.Errorf(`ent: validator failed for field "Bill.transaction_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountType(); ok {
		if err := bill.AccountTypeValidator(v); err != nil {
			return &ValidationError{Name: "account_type", err: fmt.Errorf(`ent: validator failed for field "Bill.account_type": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bill.user"`)
	}
	return nil
}

func (_u *BillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(bill.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(bill.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(bill.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(bill.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(bill.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(bill.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(bill.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AmountNpr(); ok {
		_spec.SetField(bill.FieldAmountNpr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountNpr(); ok {
		_spec.AddField(bill.FieldAmountNpr, field.TypeFloat64, value)
	}
	if _u.mutation.AmountNprCleared() {
		_spec.ClearField(bill.FieldAmountNpr, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(bill.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExchangeRate(); ok {
		_spec.SetField(bill.FieldExchangeRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExchangeRate(); ok {
		_spec.AddField(bill.FieldExchangeRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BillDate(); ok {
		_spec.SetField(bill.FieldBillDate, field.TypeTime, value)
	}
	if _u.mutation.BillDateCleared() {
		_spec.ClearField(bill.FieldBillDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IsAutoCategorized(); ok {
		_spec.SetField(bill.FieldIsAutoCategorized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(bill.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(bill.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(bill.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CategorizationMethod(); ok {
		_spec.SetField(bill.FieldCategorizationMethod, field.TypeString, value)
	}
	if _u.mutation.CategorizationMethodCleared() {
		_spec.ClearField(bill.FieldCategorizationMethod, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionType(); ok {
		_spec.SetField(bill.FieldTransactionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountType(); ok {
		_spec.SetField(bill.FieldAccountType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDebit(); ok {
		_spec.SetField(bill.FieldIsDebit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(bill.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(bill.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(bill.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bill.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(bill.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.UserTable,
			Columns: []string{bill.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.UserTable,
			Columns: []string{bill.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.CategoryTable,
			Columns: []string{bill.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.CategoryTable,
			Columns: []string{bill.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillUpdateOne is the builder for updating a single Bill entity.
type BillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillMutation
}

// SetUserID sets the "user_id" field.
func (_u *BillUpdateOne) SetUserID(v uuid.UUID) *BillUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableUserID(v *uuid.UUID) *BillUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *BillUpdateOne) SetInvoiceNumber(v string) *BillUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableInvoiceNumber(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *BillUpdateOne) ClearInvoiceNumber() *BillUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *BillUpdateOne) SetVendor(v string) *BillUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableVendor(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillUpdateOne) SetAmount(v float64) *BillUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableAmount(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillUpdateOne) AddAmount(v float64) *BillUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *BillUpdateOne) ClearAmount() *BillUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *BillUpdateOne) SetTaxAmount(v float64) *BillUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableTaxAmount(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *BillUpdateOne) AddTaxAmount(v float64) *BillUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *BillUpdateOne) ClearTaxAmount() *BillUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetAmountNpr sets the "amount_npr" field.
func (_u *BillUpdateOne) SetAmountNpr(v float64) *BillUpdateOne {
	_u.mutation.ResetAmountNpr()
	_u.mutation.SetAmountNpr(v)
	return _u
}

// SetNillableAmountNpr sets the "amount_npr" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableAmountNpr(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetAmountNpr(*v)
	}
	return _u
}

// AddAmountNpr adds value to the "amount_npr" field.
func (_u *BillUpdateOne) AddAmountNpr(v float64) *BillUpdateOne {
	_u.mutation.AddAmountNpr(v)
	return _u
}

// ClearAmountNpr clears the value of the "amount_npr" field.
func (_u *BillUpdateOne) ClearAmountNpr() *BillUpdateOne {
	_u.mutation.ClearAmountNpr()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *BillUpdateOne) SetCurrency(v string) *BillUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCurrency(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetExchangeRate sets the "exchange_rate" field.
func (_u *BillUpdateOne) SetExchangeRate(v float64) *BillUpdateOne {
	_u.mutation.ResetExchangeRate()
	_u.mutation.SetExchangeRate(v)
	return _u
}

// SetNillableExchangeRate sets the "exchange_rate" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableExchangeRate(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetExchangeRate(*v)
	}
	return _u
}

// AddExchangeRate adds value to the "exchange_rate" field.
func (_u *BillUpdateOne) AddExchangeRate(v float64) *BillUpdateOne {
	_u.mutation.AddExchangeRate(v)
	return _u
}

// SetBillDate sets the "bill_date" field.
func (_u *BillUpdateOne) SetBillDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetBillDate(v)
	return _u
}

// SetNillableBillDate sets the "bill_date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableBillDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetBillDate(*v)
	}
	return _u
}

// ClearBillDate clears the value of the "bill_date" field.
func (_u *BillUpdateOne) ClearBillDate() *BillUpdateOne {
	_u.mutation.ClearBillDate()
	return _u
}

// SetIsAutoCategorized sets the "is_auto_categorized" field.
func (_u *BillUpdateOne) SetIsAutoCategorized(v bool) *BillUpdateOne {
	_u.mutation.SetIsAutoCategorized(v)
	return _u
}

// SetNillableIsAutoCategorized sets the "is_auto_categorized" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableIsAutoCategorized(v *bool) *BillUpdateOne {
	if v != nil {
		_u.SetIsAutoCategorized(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *BillUpdateOne) SetConfidenceScore(v float64) *BillUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableConfidenceScore(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *BillUpdateOne) AddConfidenceScore(v float64) *BillUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *BillUpdateOne) ClearConfidenceScore() *BillUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetCategorizationMethod sets the "categorization_method" field.
func (_u *BillUpdateOne) SetCategorizationMethod(v string) *BillUpdateOne {
	_u.mutation.SetCategorizationMethod(v)
	return _u
}

// SetNillableCategorizationMethod sets the "categorization_method" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCategorizationMethod(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetCategorizationMethod(*v)
	}
	return _u
}

// ClearCategorizationMethod clears the value of the "categorization_method" field.
func (_u *BillUpdateOne) ClearCategorizationMethod() *BillUpdateOne {
	_u.mutation.ClearCategorizationMethod()
	return _u
}

// SetTransactionType sets the "transaction_type" field.
func (_u *BillUpdateOne) SetTransactionType(v string) *BillUpdateOne {
	_u.mutation.SetTransactionType(v)
	return _u
}

// SetNillableTransactionType sets the "transaction_type" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableTransactionType(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetTransactionType(*v)
	}
	return _u
}

// SetAccountType sets the "account_type" field.
func (_u *BillUpdateOne) SetAccountType(v string) *BillUpdateOne {
	_u.mutation.SetAccountType(v)
	return _u
}

// SetNillableAccountType sets the "account_type" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableAccountType(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetAccountType(*v)
	}
	return _u
}

// SetIsDebit sets the "is_debit" field.
func (_u *BillUpdateOne) SetIsDebit(v bool) *BillUpdateOne {
	_u.mutation.SetIsDebit(v)
	return _u
}

// SetNillableIsDebit sets the "is_debit" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableIsDebit(v *bool) *BillUpdateOne {
	if v != nil {
		_u.SetIsDebit(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *BillUpdateOne) SetCategoryID(v int) *BillUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCategoryID(v *int) *BillUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// ClearCategoryID clears the value of the "category_id" field.
func (_u *BillUpdateOne) ClearCategoryID() *BillUpdateOne {
	_u.mutation.ClearCategoryID()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *BillUpdateOne) SetOcrText(v string) *BillUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableOcrText(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *BillUpdateOne) ClearOcrText() *BillUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *BillUpdateOne) SetLineItems(v json.RawMessage) *BillUpdateOne {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *BillUpdateOne) AppendLineItems(v json.RawMessage) *BillUpdateOne {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *BillUpdateOne) ClearLineItems() *BillUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillUpdateOne) SetCreatedAt(v time.Time) *BillUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCreatedAt(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillUpdateOne) SetUpdatedAt(v time.Time) *BillUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *BillUpdateOne) SetUser(v *User) *BillUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *BillUpdateOne) SetCategory(v *Category) *BillUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdateOne) Mutation() *BillMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *BillUpdateOne) ClearUser() *BillUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *BillUpdateOne) ClearCategory() *BillUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdateOne) Where(ps ...predicate.Bill) *BillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillUpdateOne) Select(field string, fields ...string) *BillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bill entity.
func (_u *BillUpdateOne) Save(ctx context.Context) (*Bill, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdateOne) SaveX(ctx context.Context) *Bill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdateOne) check() error {
	if v, ok := _u.mutation.Currency(); ok {
		if err := bill.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Bill.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TransactionType(); ok {
		if err := bill.TransactionTypeValidator(v); err != nil {
			return &ValidationError{Name: "transaction_type", err: fmt.Errorf(`ent: validator failed for field "Bill.transaction_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountType(); ok {
		if err := bill.AccountTypeValidator(v); err != nil {
			return &ValidationError{Name: "account_type", err: fmt.Errorf(`ent: validator failed for field "Bill.account_type": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bill.user"`)
	}
	return nil
}

func (_u *BillUpdateOne) sqlSave(ctx context.Context) (_node *Bill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bill.FieldID)
		for _, f := range fields {
			if !bill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bill.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(bill.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(bill.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(bill.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(bill.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(bill.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(bill.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(bill.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AmountNpr(); ok {
		_spec.SetField(bill.FieldAmountNpr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountNpr(); ok {
		_spec.AddField(bill.FieldAmountNpr, field.TypeFloat64, value)
	}
	if _u.mutation.AmountNprCleared() {
		_spec.ClearField(bill.FieldAmountNpr, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(bill.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExchangeRate(); ok {
		_spec.SetField(bill.FieldExchangeRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExchangeRate(); ok {
		_spec.AddField(bill.FieldExchangeRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BillDate(); ok {
		_spec.SetField(bill.FieldBillDate, field.TypeTime, value)
	}
	if _u.mutation.BillDateCleared() {
		_spec.ClearField(bill.FieldBillDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IsAutoCategorized(); ok {
		_spec.SetField(bill.FieldIsAutoCategorized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(bill.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(bill.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(bill.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CategorizationMethod(); ok {
		_spec.SetField(bill.FieldCategorizationMethod, field.TypeString, value)
	}
	if _u.mutation.CategorizationMethodCleared() {
		_spec.ClearField(bill.FieldCategorizationMethod, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionType(); ok {
		_spec.SetField(bill.FieldTransactionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountType(); ok {
		_spec.SetField(bill.FieldAccountType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDebit(); ok {
		_spec.SetField(bill.FieldIsDebit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(bill.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(bill.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(bill.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bill.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(bill.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.UserTable,
			Columns: []string{bill.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.UserTable,
			Columns: []string{bill.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.CategoryTable,
			Columns: []string{bill.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.CategoryTable,
			Columns: []string{bill.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Bill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
