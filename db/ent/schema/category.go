package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/hisabkitab/bills-tracker/db/ent/schema/utils"
)

// Category maps to the public.categories taxonomy table.
type Category struct{ ent.Schema }

func (Category) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "categories"},
	}
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("category_type").
			Default("OTHER").
			Validate(utils.EnumValidator(
				"FOOD", "TRANSPORT", "UTILITIES", "ENTERTAINMENT", "HEALTHCARE",
				"SHOPPING", "EDUCATION", "BUSINESS", "TRAVEL", "OTHER",
			)),
		// Comma-separated terms for the keyword-fallback tier.
		field.Text("keywords").Optional().Default(""),
		field.String("color").Optional().Default("#BDC3C7"),
	}
}

func (Category) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("bills", Bill.Type),
	}
}
