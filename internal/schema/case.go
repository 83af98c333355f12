package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alijeyrad/crm_backend/internal/model"
)

// SupportCase is a customer support case, stored in the cases table.
type SupportCase struct {
	ent.Schema
}

func (SupportCase) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cases"},
	}
}

func (SupportCase) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		OrgScopedMixin{},
		TimeStampedMixin{},
	}
}

func (SupportCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.Text("description").
			Default(""),

		field.Enum("status").
			Values(model.Statuses...).
			Default(model.StatusNew),

		field.Enum("priority").
			Values(model.Priorities...).
			Default(model.PriorityNormal),

		field.Enum("case_type").
			Values(model.CaseTypes...).
			Default(model.CaseTypeQuestion),

		field.UUID("account_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("stage_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → case_stages.id, null for status board cases"),

		field.Other("kanban_order", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric",
			}).
			Default(decimal.Zero).
			Comment("Sort key inside the case's column"),

		field.UUID("created_by", uuid.UUID{}),
	}
}

func (SupportCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "status", "kanban_order"),
		index.Fields("stage_id", "kanban_order"),
		index.Fields("created_by"),
	}
}

func (SupportCase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stage", CaseStage.Type).
			Ref("cases").
			Unique().
			Field("stage_id"),

		edge.To("assignees", User.Type).
			StorageKey(edge.Table("case_assignees"), edge.Columns("case_id", "user_id")),

		edge.To("tags", Tag.Type).
			StorageKey(edge.Table("case_tags"), edge.Columns("case_id", "tag_id")),
	}
}
