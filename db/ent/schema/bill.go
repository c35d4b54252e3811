package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/hisabkitab/bills-tracker/db/ent/schema/utils"
)

type Bill struct{ ent.Schema }

func (Bill) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bills"},
	}
}

func (Bill) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		// Nillable so bills without a recoverable invoice number never
		// collide on the uniqueness index below.
		field.String("invoice_number").Optional().Nillable(),
		field.String("vendor").Default(""),
		field.Float("amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("amount_npr").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("currency").Default("NPR").MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Float("exchange_rate").
			Default(1).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,4)"}),
		field.Time("bill_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Bool("is_auto_categorized").Default(false),
		field.Float("confidence_score").Optional().Nillable(),
		field.String("categorization_method").Optional().Default(""),
		field.String("transaction_type").
			Default("DEBIT").
			Validate(utils.EnumValidator("DEBIT", "CREDIT")),
		field.String("account_type").
			Default("EXPENSE").
			Validate(utils.EnumValidator("EXPENSE", "REVENUE", "ASSET", "LIABILITY", "EQUITY")),
		field.Bool("is_debit").Default(true),
		field.Int("category_id").Optional().Nillable(),
		field.Text("ocr_text").Optional().Default(""),
		field.JSON("line_items", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Bill) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY bills -> ONE user (FK: bills.user_id)
		edge.From("user", User.Type).
			Ref("bills").
			Field("user_id").
			Required().
			Unique(),
		// OPTIONAL: MANY bills -> ONE category (FK: bills.category_id)
		edge.From("category", Category.Type).
			Ref("bills").
			Field("category_id").
			Unique(),
	}
}

func (Bill) Indexes() []ent.Index {
	return []ent.Index{
		// Backstop for the application-level duplicate check.
		index.Fields("user_id", "invoice_number", "vendor").Unique(),
		index.Fields("user_id", "bill_date"),
	}
}
