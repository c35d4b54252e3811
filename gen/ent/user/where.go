// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hisabkitab/bills-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUsername, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCompanyName, v))
}

// PanVatNumber applies equality check predicate on the "pan_vat_number" field. It's identical to PanVatNumberEQ.
func PanVatNumber(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPanVatNumber, v))
}

// BusinessType applies equality check predicate on the "business_type" field. It's identical to BusinessTypeEQ.
func BusinessType(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldBusinessType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldUsername, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameIsNil applies the IsNil predicate on the "company_name" field.
func CompanyNameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldCompanyName))
}

// CompanyNameNotNil applies the NotNil predicate on the "company_name" field.
func CompanyNameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldCompanyName))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldCompanyName, v))
}

// PanVatNumberEQ applies the EQ predicate on the "pan_vat_number" field.
func PanVatNumberEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPanVatNumber, v))
}

// PanVatNumberNEQ applies the NEQ predicate on the "pan_vat_number" field.
func PanVatNumberNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPanVatNumber, v))
}

// PanVatNumberIn applies the In predicate on the "pan_vat_number" field.
func PanVatNumberIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPanVatNumber, vs...))
}

// PanVatNumberNotIn applies the NotIn predicate on the "pan_vat_number" field.
func PanVatNumberNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPanVatNumber, vs...))
}

// PanVatNumberGT applies the GT predicate on the "pan_vat_number" field.
func PanVatNumberGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPanVatNumber, v))
}

// PanVatNumberGTE applies the GTE predicate on the "pan_vat_number" field.
func PanVatNumberGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPanVatNumber, v))
}

// PanVatNumberLT applies the LT predicate on the "pan_vat_number" field.
func PanVatNumberLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPanVatNumber, v))
}

// PanVatNumberLTE applies the LTE predicate on the "pan_vat_number" field.
func PanVatNumberLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPanVatNumber, v))
}

// PanVatNumberContains applies the Contains predicate on the "pan_vat_number" field.
func PanVatNumberContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPanVatNumber, v))
}

// PanVatNumberHasPrefix applies the HasPrefix predicate on the "pan_vat_number" field.
func PanVatNumberHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPanVatNumber, v))
}

// PanVatNumberHasSuffix applies the HasSuffix predicate on the "pan_vat_number" field.
func PanVatNumberHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPanVatNumber, v))
}

// PanVatNumberIsNil applies the IsNil predicate on the "pan_vat_number" field.
func PanVatNumberIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldPanVatNumber))
}

// PanVatNumberNotNil applies the NotNil predicate on the "pan_vat_number" field.
func PanVatNumberNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldPanVatNumber))
}

// PanVatNumberEqualFold applies the EqualFold predicate on the "pan_vat_number" field.
func PanVatNumberEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPanVatNumber, v))
}

// PanVatNumberContainsFold applies the ContainsFold predicate on the "pan_vat_number" field.
func PanVatNumberContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPanVatNumber, v))
}

// BusinessTypeEQ applies the EQ predicate on the "business_type" field.
func BusinessTypeEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldBusinessType, v))
}

// BusinessTypeNEQ applies the NEQ predicate on the "business_type" field.
func BusinessTypeNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldBusinessType, v))
}

// BusinessTypeIn applies the In predicate on the "business_type" field.
func BusinessTypeIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldBusinessType, vs...))
}

// BusinessTypeNotIn applies the NotIn predicate on the "business_type" field.
func BusinessTypeNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldBusinessType, vs...))
}

// BusinessTypeGT applies the GT predicate on the "business_type" field.
func BusinessTypeGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldBusinessType, v))
}

// BusinessTypeGTE applies the GTE predicate on the "business_type" field.
func BusinessTypeGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldBusinessType, v))
}

// BusinessTypeLT applies the LT predicate on the "business_type" field.
func BusinessTypeLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldBusinessType, v))
}

// BusinessTypeLTE applies the LTE predicate on the "business_type" field.
func BusinessTypeLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldBusinessType, v))
}

// BusinessTypeContains applies the Contains predicate on the "business_type" field.
func BusinessTypeContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldBusinessType, v))
}

// BusinessTypeHasPrefix applies the HasPrefix predicate on the "business_type" field.
func BusinessTypeHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldBusinessType, v))
}

// BusinessTypeHasSuffix applies the HasSuffix predicate on the "business_type" field.
func BusinessTypeHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldBusinessType, v))
}

// BusinessTypeIsNil applies the IsNil predicate on the "business_type" field.
func BusinessTypeIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldBusinessType))
}

// BusinessTypeNotNil applies the NotNil predicate on the "business_type" field.
func BusinessTypeNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldBusinessType))
}

// BusinessTypeEqualFold applies the EqualFold predicate on the "business_type" field.
func BusinessTypeEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldBusinessType, v))
}

// BusinessTypeContainsFold applies the ContainsFold predicate on the "business_type" field.
func BusinessTypeContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldBusinessType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBills applies the HasEdge predicate on the "bills" edge.
func HasBills() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BillsTable, BillsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBillsWith applies the HasEdge predicate on the "bills" edge with a given conditions (other predicates).
func HasBillsWith(preds ...predicate.Bill) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newBillsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
