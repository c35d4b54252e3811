// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BillsColumns holds the columns for the "bills" table.
	BillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "vendor", Type: field.TypeString, Default: ""},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "amount_npr", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "NPR", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "exchange_rate", Type: field.TypeFloat64, Default: 1, SchemaType: map[string]string{"postgres": "numeric(12,4)"}},
		{Name: "bill_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "is_auto_categorized", Type: field.TypeBool, Default: false},
		{Name: "confidence_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "categorization_method", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "transaction_type", Type: field.TypeString, Default: "DEBIT"},
		{Name: "account_type", Type: field.TypeString, Default: "EXPENSE"},
		{Name: "is_debit", Type: field.TypeBool, Default: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "line_items", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeInt, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// BillsTable holds the schema information for the "bills" table.
	BillsTable = &schema.Table{
		Name:       "bills",
		Columns:    BillsColumns,
		PrimaryKey: []*schema.Column{BillsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bills_categories_bills",
				Columns:    []*schema.Column{BillsColumns[19]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "bills_users_bills",
				Columns:    []*schema.Column{BillsColumns[20]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bill_user_id_invoice_number_vendor",
				Unique:  true,
				Columns: []*schema.Column{BillsColumns[20], BillsColumns[1], BillsColumns[2]},
			},
			{
				Name:    "bill_user_id_bill_date",
				Unique:  false,
				Columns: []*schema.Column{BillsColumns[20], BillsColumns[8]},
			},
		},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "category_type", Type: field.TypeString, Default: "OTHER"},
		{Name: "keywords", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "color", Type: field.TypeString, Nullable: true, Default: "#BDC3C7"},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "pan_vat_number", Type: field.TypeString, Nullable: true},
		{Name: "business_type", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BillsTable,
		CategoriesTable,
		UsersTable,
	}
)

func init() {
	BillsTable.ForeignKeys[0].RefTable = CategoriesTable
	BillsTable.ForeignKeys[1].RefTable = UsersTable
	BillsTable.Annotation = &entsql.Annotation{
		Table: "bills",
	}
	CategoriesTable.Annotation = &entsql.Annotation{
		Table: "categories",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
