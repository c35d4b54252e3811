// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hisabkitab/bills-tracker/gen/ent/bill"
	"github.com/hisabkitab/bills-tracker/gen/ent/predicate"
	"github.com/hisabkitab/bills-tracker/gen/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUsername sets the "username" field.
func (_u *UserUpdate) SetUsername(v string) *UserUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UserUpdate) SetNillableUsername(v *string) *UserUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *UserUpdate) SetCompanyName(v string) *UserUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCompanyName(v *string) *UserUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *UserUpdate) ClearCompanyName() *UserUpdate {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetPanVatNumber sets the "pan_vat_number" field.
func (_u *UserUpdate) SetPanVatNumber(v string) *UserUpdate {
	_u.mutation.SetPanVatNumber(v)
	return _u
}

// SetNillablePanVatNumber sets the "pan_vat_number" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePanVatNumber(v *string) *UserUpdate {
	if v != nil {
		_u.SetPanVatNumber(*v)
	}
	return _u
}

// ClearPanVatNumber clears the value of the "pan_vat_number" field.
func (_u *UserUpdate) ClearPanVatNumber() *UserUpdate {
	_u.mutation.ClearPanVatNumber()
	return _u
}

// SetBusinessType sets the "business_type" field.
func (_u *UserUpdate) SetBusinessType(v string) *UserUpdate {
	_u.mutation.SetBusinessType(v)
	return _u
}

// SetNillableBusinessType sets the "business_type" field if the given value is not nil.
func (_u *UserUpdate) SetNillableBusinessType(v *string) *UserUpdate {
	if v != nil {
		_u.SetBusinessType(*v)
	}
	return _u
}

// ClearBusinessType clears the value of the "business_type" field.
func (_u *UserUpdate) ClearBusinessType() *UserUpdate {
	_u.mutation.ClearBusinessType()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UserUpdate) SetCreatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCreatedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddBillIDs adds the "bills" edge to the Bill entity by IDs.
func (_u *UserUpdate) AddBillIDs(ids ...uuid.UUID) *UserUpdate {
	_u.mutation.AddBillIDs(ids...)
	return _u
}

// AddBills adds the "bills" edges to the Bill entity.
func (_u *UserUpdate) AddBills(v ...*Bill) *UserUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBillIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearBills clears all "bills" edges to the Bill entity.
func (_u *UserUpdate) ClearBills() *UserUpdate {
	_u.mutation.ClearBills()
	return _u
}

// RemoveBillIDs removes the "bills" edge to Bill entities by IDs.
func (_u *UserUpdate) RemoveBillIDs(ids ...uuid.UUID) *UserUpdate {
	_u.mutation.RemoveBillIDs(ids...)
	return _u
}

// RemoveBills removes "bills" edges to Bill entities.
func (_u *UserUpdate) RemoveBills(v ...*Bill) *UserUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBillIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := user.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "User.username": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(user.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(user.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(user.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.PanVatNumber(); ok {
		_spec.SetField(user.FieldPanVatNumber, field.TypeString, value)
	}
	if _u.mutation.PanVatNumberCleared() {
		_spec.ClearField(user.FieldPanVatNumber, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessType(); ok {
		_spec.SetField(user.FieldBusinessType, field.TypeString, value)
	}
	if _u.mutation.BusinessTypeCleared() {
		_spec.ClearField(user.FieldBusinessType, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.BillsTable,
			Columns: []string{user.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBillsIDs(); len(nodes) > 0 && !_u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.BillsTable,
			Columns: []string{user.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.BillsTable,
			Columns: []string{user.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetUsername sets the "username" field.
func (_u *UserUpdateOne) SetUsername(v string) *UserUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableUsername(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *UserUpdateOne) SetCompanyName(v string) *UserUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCompanyName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *UserUpdateOne) ClearCompanyName() *UserUpdateOne {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetPanVatNumber sets the "pan_vat_number" field.
func (_u *UserUpdateOne) SetPanVatNumber(v string) *UserUpdateOne {
	_u.mutation.SetPanVatNumber(v)
	return _u
}

// SetNillablePanVatNumber sets the "pan_vat_number" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePanVatNumber(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPanVatNumber(*v)
	}
	return _u
}

// ClearPanVatNumber clears the value of the "pan_vat_number" field.
func (_u *UserUpdateOne) ClearPanVatNumber() *UserUpdateOne {
	_u.mutation.ClearPanVatNumber()
	return _u
}

// SetBusinessType sets the "business_type" field.
func (_u *UserUpdateOne) SetBusinessType(v string) *UserUpdateOne {
	_u.mutation.SetBusinessType(v)
	return _u
}

// SetNillableBusinessType sets the "business_type" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableBusinessType(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetBusinessType(*v)
	}
	return _u
}

// ClearBusinessType clears the value of the "business_type" field.
func (_u *UserUpdateOne) ClearBusinessType() *UserUpdateOne {
	_u.mutation.ClearBusinessType()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UserUpdateOne) SetCreatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCreatedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddBillIDs adds the "bills" edge to the Bill entity by IDs.
func (_u *UserUpdateOne) AddBillIDs(ids ...uuid.UUID) *UserUpdateOne {
	_u.mutation.AddBillIDs(ids...)
	return _u
}

// AddBills adds the "bills" edges to the Bill entity.
func (_u *UserUpdateOne) AddBills(v ...*Bill) *UserUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBillIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearBills clears all "bills" edges to the Bill entity.
func (_u *UserUpdateOne) ClearBills() *UserUpdateOne {
	_u.mutation.ClearBills()
	return _u
}

// RemoveBillIDs removes the "bills" edge to Bill entities by IDs.
func (_u *UserUpdateOne) RemoveBillIDs(ids ...uuid.UUID) *UserUpdateOne {
	_u.mutation.RemoveBillIDs(ids...)
	return _u
}

// RemoveBills removes "bills" edges to Bill entities.
func (_u *UserUpdateOne) RemoveBills(v ...*Bill) *UserUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBillIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := user.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "User.username": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(user.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(user.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(user.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.PanVatNumber(); ok {
		_spec.SetField(user.FieldPanVatNumber, field.TypeString, value)
	}
	if _u.mutation.PanVatNumberCleared() {
		_spec.ClearField(user.FieldPanVatNumber, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessType(); ok {
		_spec.SetField(user.FieldBusinessType, field.TypeString, value)
	}
	if _u.mutation.BusinessTypeCleared() {
		_spec.ClearField(user.FieldBusinessType, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.BillsTable,
			Columns: []string{user.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBillsIDs(); len(nodes) > 0 && !_u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.BillsTable,
			Columns: []string{user.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.BillsTable,
			Columns: []string{user.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
