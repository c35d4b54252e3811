// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hisabkitab/bills-tracker/gen/ent/bill"
	"github.com/hisabkitab/bills-tracker/gen/ent/category"
	"github.com/hisabkitab/bills-tracker/gen/ent/user"
)

// BillCreate is the builder for creating a Bill entity.
type BillCreate struct {
	config
	mutation *BillMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BillCreate) SetUserID(v uuid.UUID) *BillCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *BillCreate) SetInvoiceNumber(v string) *BillCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *BillCreate) SetNillableInvoiceNumber(v *string) *BillCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetVendor sets the "vendor" field.
func (_c *BillCreate) SetVendor(v string) *BillCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_c *BillCreate) SetNillableVendor(v *string) *BillCreate {
	if v != nil {
		_c.SetVendor(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *BillCreate) SetAmount(v float64) *BillCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *BillCreate) SetNillableAmount(v *float64) *BillCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *BillCreate) SetTaxAmount(v float64) *BillCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_c *BillCreate) SetNillableTaxAmount(v *float64) *BillCreate {
	if v != nil {
		_c.SetTaxAmount(*v)
	}
	return _c
}

// SetAmountNpr sets the "amount_npr" field.
func (_c *BillCreate) SetAmountNpr(v float64) *BillCreate {
	_c.mutation.SetAmountNpr(v)
	return _c
}

// SetNillableAmountNpr sets the "amount_npr" field if the given value is not nil.
func (_c *BillCreate) SetNillableAmountNpr(v *float64) *BillCreate {
	if v != nil {
		_c.SetAmountNpr(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *BillCreate) SetCurrency(v string) *BillCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *BillCreate) SetNillableCurrency(v *string) *BillCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetExchangeRate sets the "exchange_rate" field.
func (_c *BillCreate) SetExchangeRate(v float64) *BillCreate {
	_c.mutation.SetExchangeRate(v)
	return _c
}

// SetNillableExchangeRate sets the "exchange_rate" field if the given value is not nil.
func (_c *BillCreate) SetNillableExchangeRate(v *float64) *BillCreate {
	if v != nil {
		_c.SetExchangeRate(*v)
	}
	return _c
}

// SetBillDate sets the "bill_date" field.
func (_c *BillCreate) SetBillDate(v time.Time) *BillCreate {
	_c.mutation.SetBillDate(v)
	return _c
}

// SetNillableBillDate sets the "bill_date" field if the given value is not nil.
func (_c *BillCreate) SetNillableBillDate(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetBillDate(*v)
	}
	return _c
}

// SetIsAutoCategorized sets the "is_auto_categorized" field.
func (_c *BillCreate) SetIsAutoCategorized(v bool) *BillCreate {
	_c.mutation.SetIsAutoCategorized(v)
	return _c
}

// SetNillableIsAutoCategorized sets the "is_auto_categorized" field if the given value is not nil.
func (_c *BillCreate) SetNillableIsAutoCategorized(v *bool) *BillCreate {
	if v != nil {
		_c.SetIsAutoCategorized(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *BillCreate) SetConfidenceScore(v float64) *BillCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *BillCreate) SetNillableConfidenceScore(v *float64) *BillCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetCategorizationMethod sets the "categorization_method" field.
func (_c *BillCreate) SetCategorizationMethod(v string) *BillCreate {
	_c.mutation.SetCategorizationMethod(v)
	return _c
}

// SetNillableCategorizationMethod sets the "categorization_method" field if the given value is not nil.
func (_c *BillCreate) SetNillableCategorizationMethod(v *string) *BillCreate {
	if v != nil {
		_c.SetCategorizationMethod(*v)
	}
	return _c
}

// SetTransactionType sets the "transaction_type" field.
func (_c *BillCreate) SetTransactionType(v string) *BillCreate {
	_c.mutation.SetTransactionType(v)
	return _c
}

// SetNillableTransactionType sets the "transaction_type" field if the given value is not nil.
func (_c *BillCreate) SetNillableTransactionType(v *string) *BillCreate {
	if v != nil {
		_c.SetTransactionType(*v)
	}
	return _c
}

// SetAccountType sets the "account_type" field.
func (_c *BillCreate) SetAccountType(v string) *BillCreate {
	_c.mutation.SetAccountType(v)
	return _c
}

// SetNillableAccountType sets the "account_type" field if the given value is not nil.
func (_c *BillCreate) SetNillableAccountType(v *string) *BillCreate {
	if v != nil {
		_c.SetAccountType(*v)
	}
	return _c
}

// SetIsDebit sets the "is_debit" field.
func (_c *BillCreate) SetIsDebit(v bool) *BillCreate {
	_c.mutation.SetIsDebit(v)
	return _c
}

// SetNillableIsDebit sets the "is_debit" field if the given value is not nil.
func (_c *BillCreate) SetNillableIsDebit(v *bool) *BillCreate {
	if v != nil {
		_c.SetIsDebit(*v)
	}
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *BillCreate) SetCategoryID(v int) *BillCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_c *BillCreate) SetNillableCategoryID(v *int) *BillCreate {
	if v != nil {
		_c.SetCategoryID(*v)
	}
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *BillCreate) SetOcrText(v string) *BillCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *BillCreate) SetNillableOcrText(v *string) *BillCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetLineItems sets the "line_items" field.
func (_c *BillCreate) SetLineItems(v json.RawMessage) *BillCreate {
	_c.mutation.SetLineItems(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillCreate) SetCreatedAt(v time.Time) *BillCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillCreate) SetNillableCreatedAt(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BillCreate) SetUpdatedAt(v time.Time) *BillCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BillCreate) SetNillableUpdatedAt(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillCreate) SetID(v uuid.UUID) *BillCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillCreate) SetNillableID(v *uuid.UUID) *BillCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *BillCreate) SetUser(v *User) *BillCreate {
	return _c.SetUserID(v.ID)
}

// SetCategory sets the "category" edge to the Category entity.
func (_c *BillCreate) SetCategory(v *Category) *BillCreate {
	return _c.SetCategoryID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_c *BillCreate) Mutation() *BillMutation {
	return _c.mutation
}

// Save creates the Bill in the database.
func (_c *BillCreate) Save(ctx context.Context) (*Bill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillCreate) SaveX(ctx context.Context) *Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillCreate) defaults() {
	if _, ok := _c.mutation.Vendor(); !ok {
		v := bill.DefaultVendor
		_c.mutation.SetVendor(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := bill.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.ExchangeRate(); !ok {
		v := bill.DefaultExchangeRate
		_c.mutation.SetExchangeRate(v)
	}
	if _, ok := _c.mutation.IsAutoCategorized(); !ok {
		v := bill.DefaultIsAutoCategorized
		_c.mutation.SetIsAutoCategorized(v)
	}
	if _, ok := _c.mutation.CategorizationMethod(); !ok {
		v := bill.DefaultCategorizationMethod
		_c.mutation.SetCategorizationMethod(v)
	}
	if _, ok := _c.mutation.TransactionType(); !ok {
		v := bill.DefaultTransactionType
		_c.mutation.SetTransactionType(v)
	}
	if _, ok := _c.mutation.AccountType(); !ok {
		v := bill.DefaultAccountType
		_c.mutation.SetAccountType(v)
	}
	if _, ok := _c.mutation.IsDebit(); !ok {
		v := bill.DefaultIsDebit
		_c.mutation.SetIsDebit(v)
	}
	if _, ok := _c.mutation.OcrText(); !ok {
		v := bill.DefaultOcrText
		_c.mutation.SetOcrText(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bill.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bill.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bill.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Bill.user_id"`)}
	}
	if _, ok := _c.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "Bill.vendor"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Bill.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := bill.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Bill.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExchangeRate(); !ok {
		return &ValidationError{Name: "exchange_rate", err: errors.New(`ent: missing required field "Bill.exchange_rate"`)}
	}
	if _, ok := _c.mutation.IsAutoCategorized(); !ok {
		return &ValidationError{Name: "is_auto_categorized", err: errors.New(`ent: missing required field "Bill.is_auto_categorized"`)}
	}
	if _, ok := _c.mutation.TransactionType(); !ok {
		return &ValidationError{Name: "transaction_type", err: errors.New(`ent: missing required field "Bill.transaction_type"`)}
	}
	if v, ok := _c.mutation.TransactionType(); ok {
		if err := bill.TransactionTypeValidator(v); err != nil {
			return &ValidationError{Name: "transaction_type", err: fmt.Errorf(`ent: validator failed for field "Bill.transaction_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccountType(); !ok {
		return &ValidationError{Name: "account_type", err: errors.New(`ent: missing required field "Bill.account_type"`)}
	}
	if v, ok := _c.mutation.AccountType(); ok {
		if err := bill.AccountTypeValidator(v); err != nil {
			return &ValidationError{Name: "account_type", err: fmt.Errorf(`ent: validator failed for field "Bill.account_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDebit(); !ok {
		return &ValidationError{Name: "is_debit", err: errors.New(`ent: missing required field "Bill.is_debit"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bill.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Bill.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Bill.user"`)}
	}
	return nil
}

func (_c *BillCreate) sqlSave(ctx context.Context) (*Bill, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillCreate) createSpec() (*Bill, *sqlgraph.CreateSpec) {
	var (
		_node = &Bill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bill.Table, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(bill.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = &value
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(bill.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(bill.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = &value
	}
	if value, ok := _c.mutation.AmountNpr(); ok {
		_spec.SetField(bill.FieldAmountNpr, field.TypeFloat64, value)
		_node.AmountNpr = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(bill.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.ExchangeRate(); ok {
		_spec.SetField(bill.FieldExchangeRate, field.TypeFloat64, value)
		_node.ExchangeRate = value
	}
	if value, ok := _c.mutation.BillDate(); ok {
		_spec.SetField(bill.FieldBillDate, field.TypeTime, value)
		_node.BillDate = &value
	}
	if value, ok := _c.mutation.IsAutoCategorized(); ok {
		_spec.SetField(bill.FieldIsAutoCategorized, field.TypeBool, value)
		_node.IsAutoCategorized = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(bill.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = &value
	}
	if value, ok := _c.mutation.CategorizationMethod(); ok {
		_spec.SetField(bill.FieldCategorizationMethod, field.TypeString, value)
		_node.CategorizationMethod = value
	}
	if value, ok := _c.mutation.TransactionType(); ok {
		_spec.SetField(bill.FieldTransactionType, field.TypeString, value)
		_node.TransactionType = value
	}
	if value, ok := _c.mutation.AccountType(); ok {
		_spec.SetField(bill.FieldAccountType, field.TypeString, value)
		_node.AccountType = value
	}
	if value, ok := _c.mutation.IsDebit(); ok {
		_spec.SetField(bill.FieldIsDebit, field.TypeBool, value)
		_node.IsDebit = value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(bill.FieldOcrText, field.TypeString, value)
		_node.OcrText = value
	}
	if value, ok := _c.mutation.LineItems(); ok {
		_spec.SetField(bill.FieldLineItems, field.TypeJSON, value)
		_node.LineItems = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_node.CategoryID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BillCreateBulk is the builder for creating many Bill entities in bulk.
type BillCreateBulk struct {
	config
	err      error
	builders []*BillCreate
}

// Save creates the Bill entities in the database.
func (_c *BillCreateBulk) Save(ctx context.Context) ([]*Bill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BillCreateBulk) SaveX(ctx context.Context) []*Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
